package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
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

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	MaxBounces int // Reflection budget per primary ray
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxBounces: world.DefaultMaxBounces,
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// RenderParallel renders the world by splitting the canvas into tiles traced by a
// worker pool. Cancelling ctx stops the render between tiles and returns ctx.Err().
func (c *Camera) RenderParallel(ctx context.Context, w *world.World, config RenderConfig, logger core.Logger) (*Canvas, RenderStats, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if config.MaxBounces < 0 {
		config.MaxBounces = 0
	}

	start := time.Now()
	canvas := NewCanvas(c.HSize, c.VSize)
	tiles := NewTileGrid(c.HSize, c.VSize, config.TileSize)

	pool := NewWorkerPool(c, w, config.MaxBounces, len(tiles), config.NumWorkers)
	logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		c.HSize, c.VSize, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Canvas: canvas,
		})
	}

	stats := RenderStats{
		TotalTiles: len(tiles),
		NumWorkers: pool.GetNumWorkers(),
		MaxBounces: config.MaxBounces,
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.TotalPixels += result.Pixels
	}
	pool.Stop()

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render: %w", renderErr)
	}

	stats.Duration = time.Since(start)
	stats.Luminance = CalculateAverageLuminance(canvas.ToImage())
	logger.Printf("Rendered %d pixels in %v (%.0f px/s, avg luminance %.3f)\n",
		stats.TotalPixels, stats.Duration, stats.PixelsPerSecond(), stats.Luminance)

	return canvas, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
