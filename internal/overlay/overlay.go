// Package overlay draws the per-tile comparison timer onto the shared
// canvas: a black plaque anchored near the tile's bottom edge with the
// formatted time difference centered on it.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Scale is the timer point size. At 72 dpi one point is one pixel.
const Scale = 64.0

// Timer colors. Ahead marks a tile running faster than the pace
// setter, Behind one that trails it.
var (
	Neutral = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ahead   = color.RGBA{G: 192, A: 255}
	Behind  = color.RGBA{R: 192, A: 255}
)

// Renderer stamps timer text onto canvas frames. It keeps one shared
// glyph face, so a Renderer must not be used from multiple goroutines;
// the compositor is its only caller.
type Renderer struct {
	face font.Face
}

// New parses the embedded monospace face at the overlay scale. The
// font ships in the binary, so rendering needs nothing from the host
// system.
func New() (*Renderer, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse overlay font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: Scale})
	return &Renderer{face: face}, nil
}

// Measure returns the ink bounding box of text at the overlay scale.
func (r *Renderer) Measure(text string) (w, h int) {
	bounds, _ := font.BoundString(r.face, text)
	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// Stamp draws text over the tile rectangle: an opaque black plaque
// with a border of half the text height, centered horizontally and
// anchored near the tile's bottom edge. Oversized plaques clip at the
// canvas bounds instead of wrapping or shifting.
func (r *Renderer) Stamp(dst draw.Image, tile image.Rectangle, text string, col color.Color) {
	bounds, _ := font.BoundString(r.face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	border := h / 2

	x := tile.Min.X + tile.Dx()/2 - w/2
	y := tile.Min.Y + tile.Dy() - 2*border - h

	plaque := image.Rect(x-border, y-border, x+w+border, y+h+border)
	draw.Draw(dst, plaque, image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	d.DrawString(text)
}
