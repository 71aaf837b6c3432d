package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a width x height grid of linear colors, row-major from the top left
type Canvas struct {
	Width  int
	Height int
	pixels []core.Tuple
}

// NewCanvas creates a canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Tuple, width*height),
	}
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Tuple) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y); ok is false outside the canvas
func (c *Canvas) PixelAt(x, y int) (core.Tuple, bool) {
	if !c.inBounds(x, y) {
		return core.Tuple{}, false
	}
	return c.pixels[y*c.Width+x], true
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// ToImage converts the canvas to 8-bit RGBA with each channel clamped to [0,1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(ScaleChannel(p.Red())),
				G: uint8(ScaleChannel(p.Green())),
				B: uint8(ScaleChannel(p.Blue())),
				A: 255,
			})
		}
	}
	return img
}

// ScaleChannel clamps v to [0,1] and scales it to 0..255, rounding half up
func ScaleChannel(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int(math.Floor(v*255 + 0.5))
}
