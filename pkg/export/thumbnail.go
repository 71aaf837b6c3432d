package export

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail downscales img to width pixels wide, preserving aspect ratio.
// Images already narrower than width are returned unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Bilinear)
}
