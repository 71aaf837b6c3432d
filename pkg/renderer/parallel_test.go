package renderer

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"partial edge tiles", 70, 33, 32, 6},
		{"single tile", 10, 10, 32, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Tiles must cover every pixel exactly once
			covered := make(map[image.Point]int)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Tile %d has ID %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[image.Pt(x, y)]++
					}
				}
			}
			if len(covered) != tt.width*tt.height {
				t.Errorf("Expected %d covered pixels, got %d", tt.width*tt.height, len(covered))
			}
			for p, n := range covered {
				if n != 1 {
					t.Errorf("Pixel %v covered %d times", p, n)
				}
			}
		})
	}
}

func TestCamera_RenderParallelMatchesSerial(t *testing.T) {
	w := world.DefaultWorld()
	c := defaultWorldCamera(t)

	serial := c.Render(w)

	config := DefaultRenderConfig()
	config.TileSize = 4
	config.NumWorkers = 3
	parallel, stats, err := c.RenderParallel(context.Background(), w, config, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats.TotalPixels != c.NumPixels() {
		t.Errorf("Expected %d pixels, got %d", c.NumPixels(), stats.TotalPixels)
	}
	if stats.TotalTiles != 9 {
		t.Errorf("Expected 9 tiles, got %d", stats.TotalTiles)
	}
	if stats.NumWorkers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.NumWorkers)
	}

	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			a, _ := serial.PixelAt(x, y)
			b, _ := parallel.PixelAt(x, y)
			if !a.Equal(b) {
				t.Errorf("Pixel (%d,%d): serial %v, parallel %v", x, y, a, b)
			}
		}
	}
}

func TestCamera_RenderParallelCancelled(t *testing.T) {
	w := world.DefaultWorld()
	c := defaultWorldCamera(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.RenderParallel(ctx, w, DefaultRenderConfig(), core.NopLogger{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

type recordingLogger struct {
	lines int
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines++
}

func TestCamera_RenderParallelLogs(t *testing.T) {
	logger := &recordingLogger{}
	c := NewCamera(8, 8, 1)
	if _, _, err := c.RenderParallel(context.Background(), world.DefaultWorld(), DefaultRenderConfig(), logger); err != nil {
		t.Fatal(err)
	}
	if logger.lines != 2 {
		t.Errorf("Expected start and finish log lines, got %d", logger.lines)
	}
}

func TestDefaultRenderConfig(t *testing.T) {
	config := DefaultRenderConfig()
	if config.MaxBounces != world.DefaultMaxBounces {
		t.Errorf("Expected %d bounces, got %d", world.DefaultMaxBounces, config.MaxBounces)
	}
	if config.TileSize <= 0 {
		t.Errorf("Tile size must be positive, got %d", config.TileSize)
	}
}
