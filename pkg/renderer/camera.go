package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// Camera maps canvas pixels to world-space rays.
// The canvas sits one unit in front of the eye along -z in camera space.
type Camera struct {
	HSize       int     // Horizontal size in pixels
	VSize       int     // Vertical size in pixels
	FieldOfView float64 // Horizontal or vertical angle (radians) of the longer side

	transform core.Matrix4
	inverse   core.Matrix4

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity,
		inverse:     core.Identity,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix4 {
	return c.transform
}

// SetTransform installs a view transform, typically built by core.ViewTransform
func (c *Camera) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// PixelSize returns the world-space width of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// NumPixels returns the total number of pixels the camera renders
func (c *Camera) NumPixels() int {
	return c.HSize * c.VSize
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel serially with the default bounce budget
func (c *Camera) Render(w *world.World) *Canvas {
	return c.RenderWithBounces(w, world.DefaultMaxBounces)
}

// RenderWithBounces traces every pixel serially with the given bounce budget
func (c *Camera) RenderWithBounces(w *world.World, maxBounces int) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			ray := c.RayForPixel(x, y)
			canvas.WritePixel(x, y, w.ColorAt(ray, maxBounces))
		}
	}
	return canvas
}
