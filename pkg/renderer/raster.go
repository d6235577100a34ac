package renderer

import (
	"image"

	"github.com/df07/go-raytracer/pkg/core"
)

// Raster is a preallocated row-major pixel buffer. Distinct cells may be
// written concurrently without synchronization.
type Raster struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewRaster allocates a black raster
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// Bounds returns the raster rectangle
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// ColorAt returns the pixel at (x, y)
func (r *Raster) ColorAt(x, y int) core.Color {
	return r.Pixels[y*r.Width+x]
}

// SetColor writes the pixel at (x, y)
func (r *Raster) SetColor(x, y int, c core.Color) {
	r.Pixels[y*r.Width+x] = c
}

// ToRGBA converts the raster to an opaque image for encoding
func (r *Raster) ToRGBA() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetRGBA(x, y, r.ColorAt(x, y).ToRGBA())
		}
	}
	return img
}
