package overlay

import (
	"image"
	"image/color"
	"testing"
)

func TestMeasure(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	w, h := r.Measure("00.000")
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure(00.000) = %dx%d, want positive", w, h)
	}

	longer, _ := r.Measure("00:00:00.000")
	if longer <= w {
		t.Errorf("longer text measured %dpx, short text %dpx; want wider", longer, w)
	}
}

func TestStamp_PaintsPlaqueAndText(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	dst := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for yy := 0; yy < 480; yy++ {
		for xx := 0; xx < 640; xx++ {
			dst.SetRGBA(xx, yy, bg)
		}
	}

	tile := image.Rect(0, 0, 640, 480)
	r.Stamp(dst, tile, "0", Ahead)

	w, h := r.Measure("0")
	border := h / 2
	x := tile.Dx()/2 - w/2
	y := tile.Dy() - 2*border - h

	// Plaque corners are opaque black.
	for _, p := range []image.Point{
		{x - border, y - border},
		{x + w + border - 1, y - border},
		{x - border, y + h + border - 1},
	} {
		if got := dst.RGBAAt(p.X, p.Y); got != (color.RGBA{A: 255}) {
			t.Errorf("plaque pixel (%d,%d) = %v, want black", p.X, p.Y, got)
		}
	}

	// Just outside the plaque the background survives.
	if got := dst.RGBAAt(x-border-2, y-border-2); got != bg {
		t.Errorf("pixel outside plaque = %v, want background %v", got, bg)
	}

	// Some glyph core pixels carry the full timer color.
	var lit int
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if dst.RGBAAt(xx, yy) == Ahead {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no pixel inside the ink box carries the timer color")
	}
}

func TestStamp_ClipsOversizedText(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// A 64px canvas cannot hold an hour-long timer string; the stamp
	// must clip at the edges rather than panic or wrap.
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	r.Stamp(dst, dst.Bounds(), "12:34:56.789", Neutral)

	var painted int
	for yy := 0; yy < 64; yy++ {
		for xx := 0; xx < 64; xx++ {
			if dst.RGBAAt(xx, yy).A != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("clipped stamp painted nothing")
	}
}
