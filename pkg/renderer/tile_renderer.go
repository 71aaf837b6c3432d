package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/world"
)

// TileRenderer traces the pixels of one tile against a read-only world
type TileRenderer struct {
	camera     *Camera
	world      *world.World
	maxBounces int
}

// NewTileRenderer creates a tile renderer for the given camera and world
func NewTileRenderer(camera *Camera, w *world.World, maxBounces int) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      w,
		maxBounces: maxBounces,
	}
}

// RenderTile renders pixels within bounds into canvas and returns the pixel count
func (tr *TileRenderer) RenderTile(bounds image.Rectangle, canvas *Canvas) int {
	pixels := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			canvas.WritePixel(x, y, tr.world.ColorAt(ray, tr.maxBounces))
			pixels++
		}
	}
	return pixels
}
