package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Determine which check we're in
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewTexture(NewPixelGrid(width, height, pixels))
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			v := float64(y) / float64(max(1, height-1))
			pixels[y*width+x] = core.ColorFromFloats(u*255, v*255, 0)
		}
	}

	return NewTexture(NewPixelGrid(width, height, pixels))
}
