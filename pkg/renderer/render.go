package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}

// Config contains configuration for parallel rendering
type Config struct {
	TileSize   int // Size of each tile (64x64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Render validates the scene and renders it across a pool of workers.
// Each tile owns a disjoint region of the shared raster. Cancelling ctx
// stops the render between tiles and returns ctx.Err().
func Render(ctx context.Context, s *scene.Scene, config Config, logger core.Logger) (*Raster, RenderStats, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}

	raytracer := NewRaytracer(s)
	raster := NewRaster(s.Width, s.Height)
	tiles := NewTileGrid(s.Width, s.Height, config.TileSize)
	pool := NewWorkerPool(config.NumWorkers)

	logger.Printf("Rendering %dx%d (%d objects, %d lights, depth %d) with %d workers...\n",
		s.Width, s.Height, s.GetPrimitiveCount(), len(s.Lights), s.MaxRecursionDepth, pool.GetNumWorkers())

	startTime := time.Now()
	err := pool.Run(ctx, tiles, func(tile *Tile) error {
		raytracer.RenderBounds(tile.Bounds, raster)
		return nil
	})
	if err != nil {
		logger.Printf("Rendering cancelled: %v\n", err)
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: s.Width * s.Height,
		TotalTiles:  len(tiles),
		NumWorkers:  pool.GetNumWorkers(),
		Elapsed:     time.Since(startTime),
	}
	stats.AverageLuminance = CalculateAverageLuminance(raster.ToRGBA())

	logger.Printf("Render completed in %v (%d tiles)\n", stats.Elapsed, stats.TotalTiles)
	return raster, stats, nil
}
