package material

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// PixelSource is a decoded 2D pixel grid. Callers guarantee 0 <= x < Width()
// and 0 <= y < Height() when calling PixelAt.
type PixelSource interface {
	Width() int
	Height() int
	PixelAt(x, y int) core.Color
}

// PixelGrid is a row-major PixelSource: Pixels[y*Cols + x]
type PixelGrid struct {
	Cols   int
	Rows   int
	Pixels []core.Color
}

// NewPixelGrid creates a new pixel grid
func NewPixelGrid(width, height int, pixels []core.Color) *PixelGrid {
	return &PixelGrid{
		Cols:   width,
		Rows:   height,
		Pixels: pixels,
	}
}

func (g *PixelGrid) Width() int  { return g.Cols }
func (g *PixelGrid) Height() int { return g.Rows }

func (g *PixelGrid) PixelAt(x, y int) core.Color {
	return g.Pixels[y*g.Cols+x]
}

// Texture samples a pixel source with repeat (tiling) wrapping
type Texture struct {
	source PixelSource
}

// NewTexture creates a new texture over the given pixel source
func NewTexture(source PixelSource) *Texture {
	return &Texture{source: source}
}

// Width returns the texture width in pixels
func (t *Texture) Width() int {
	return t.source.Width()
}

// Height returns the texture height in pixels
func (t *Texture) Height() int {
	return t.source.Height()
}

// ColorAt samples the texture at uv using nearest-neighbor lookup.
// Both coordinates tile, so (1.25, -0.25) samples the same texel as (0.25, 0.75).
func (t *Texture) ColorAt(uv core.Vec2) core.Color {
	x := wrap(uv.X, t.source.Width())
	y := wrap(uv.Y, t.source.Height())
	return t.source.PixelAt(x, y)
}

// Validate reports textures that cannot be sampled
func (t *Texture) Validate() error {
	if t == nil || t.source == nil {
		return fmt.Errorf("texture has no pixel source")
	}
	if t.source.Width() <= 0 || t.source.Height() <= 0 {
		return fmt.Errorf("texture is empty (%dx%d)", t.source.Width(), t.source.Height())
	}
	if grid, ok := t.source.(*PixelGrid); ok && len(grid.Pixels) < grid.Cols*grid.Rows {
		return fmt.Errorf("texture has %d pixels, expected %d", len(grid.Pixels), grid.Cols*grid.Rows)
	}
	return nil
}

// wrap maps a texture coordinate to a pixel index in [0, size)
func wrap(value float64, size int) int {
	limit := float64(size)
	coord := math.Mod(value*limit, limit)
	if coord < 0 {
		coord += limit
	}
	// coord + limit rounds up to limit for tiny negative coords
	return min(int(coord), size-1)
}
