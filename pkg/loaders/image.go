package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// ImageData contains a decoded image as a row-major Color array
type ImageData struct {
	Width  int
	Height int
	Format string // Decoder that recognized the file, e.g. "png"
	Pixels []core.Color
}

// LoadImage loads a PNG, JPEG, GIF, BMP, TIFF or WebP image into a Color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	data := FromImage(img)
	data.Format = format
	return data, nil
}

// FromImage copies an in-memory image into a Color array
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = core.ColorFromModel(img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Texture wraps the decoded pixels as a tiling texture
func (d *ImageData) Texture() *material.Texture {
	return material.NewTexture(material.NewPixelGrid(d.Width, d.Height, d.Pixels))
}

// LoadTexture loads an image file as a texture
func LoadTexture(filename string) (*material.Texture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	texture := data.Texture()
	if err := texture.Validate(); err != nil {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}
	return texture, nil
}

// TextureFromImage builds a texture from an already-decoded image
func TextureFromImage(img image.Image) *material.Texture {
	return FromImage(img).Texture()
}
