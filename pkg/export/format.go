package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Format is an output image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat accepts "ppm" or "png" in any case
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unknown output format %q (want ppm or png)", name)
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for HTTP responses and uploads
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/x-portable-pixmap"
}

// Encode writes canvas to w in format f
func Encode(w io.Writer, canvas *renderer.Canvas, f Format) error {
	switch f {
	case FormatPPM:
		return EncodePPM(w, canvas)
	case FormatPNG:
		if err := imaging.Encode(w, canvas.ToImage(), imaging.PNG); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", f)
}

// SavePNG writes canvas to path as a PNG image
func SavePNG(path string, canvas *renderer.Canvas) error {
	return SaveImage(path, canvas.ToImage())
}

// SaveImage writes img to path, choosing the encoding from the file extension
func SaveImage(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteFile encodes canvas into dir/name.<ext>, creating dir if needed,
// and returns the written path
func WriteFile(dir, name string, canvas *renderer.Canvas, f Format) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, name+f.Extension())

	if f == FormatPNG {
		return path, SavePNG(path, canvas)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := EncodePPM(file, canvas); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
