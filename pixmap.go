package resvg

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a decoded rectangular pixel buffer.
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, matching
// the format the rasterization backend composites in.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Returns nil if either dimension is not positive.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewPixmapFromImage converts any decoded image into a pixmap.
// Arbitrary source formats (NRGBA, YCbCr from JPEG decoding, paletted
// GIF frames) are normalized into premultiplied RGBA in one pass.
func NewPixmapFromImage(img image.Image) *Pixmap {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy())
	if p == nil {
		return nil
	}
	dst := &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the pixel at (x, y).
// Out-of-bounds reads return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}
