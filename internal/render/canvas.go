package render

import (
	"image"
	"image/color"
)

// Canvas is a packed 24-bit RGB frame buffer. It implements draw.Image
// so the overlay can paint on it, and its Pix slice is handed to sinks
// as-is: row-major, three bytes per pixel, the exact layout of the raw
// decode and encode streams. The buffer persists across frames, which
// is what keeps finished tiles frozen on their last picture.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// NewCanvas allocates a black canvas of the output geometry.
func NewCanvas(w, h uint32) *Canvas {
	return &Canvas{
		Pix:    make([]byte, int(w)*int(h)*3),
		Width:  int(w),
		Height: int(h),
	}
}

func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.Width, c.Height) }

func (c *Canvas) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(c.Bounds()) {
		return color.RGBA{}
	}
	i := c.offset(x, y)
	return color.RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: 255}
}

// Set implements draw.Image. Pixels outside the canvas are dropped.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.Bounds()) {
		return
	}
	r, g, b, _ := col.RGBA()
	i := c.offset(x, y)
	c.Pix[i] = uint8(r >> 8)
	c.Pix[i+1] = uint8(g >> 8)
	c.Pix[i+2] = uint8(b >> 8)
}

// Blit copies a raw w x h RGB frame to (x, y). The frame must hold
// w*h*3 bytes and the target rectangle must lie inside the canvas;
// the planner guarantees both for tile frames.
func (c *Canvas) Blit(frame []byte, x, y, w, h uint32) {
	stride := int(w) * 3
	for row := 0; row < int(h); row++ {
		dst := c.offset(int(x), int(y)+row)
		copy(c.Pix[dst:dst+stride], frame[row*stride:(row+1)*stride])
	}
}

// FillRect paints a solid color over the rectangle.
func (c *Canvas) FillRect(x, y, w, h uint32, col color.RGBA) {
	for row := 0; row < int(h); row++ {
		i := c.offset(int(x), int(y)+row)
		for px := 0; px < int(w); px++ {
			c.Pix[i] = col.R
			c.Pix[i+1] = col.G
			c.Pix[i+2] = col.B
			i += 3
		}
	}
}

// Desaturate converts the rectangle to grayscale in place using the
// BT.601 luma weights.
func (c *Canvas) Desaturate(x, y, w, h uint32) {
	for row := 0; row < int(h); row++ {
		i := c.offset(int(x), int(y)+row)
		for px := 0; px < int(w); px++ {
			lum := uint8(0.2989*float64(c.Pix[i]) +
				0.5870*float64(c.Pix[i+1]) +
				0.1140*float64(c.Pix[i+2]))
			c.Pix[i] = lum
			c.Pix[i+1] = lum
			c.Pix[i+2] = lum
			i += 3
		}
	}
}

func (c *Canvas) offset(x, y int) int { return (y*c.Width + x) * 3 }
