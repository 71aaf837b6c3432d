package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// MaxPPMLineLength is the longest line the PPM encoder will emit
const MaxPPMLineLength = 70

// EncodePPM writes canvas as a plain (P3) PPM image.
// Channels are clamped to [0,1] and scaled to 0..255. Pixel data lines never
// exceed MaxPPMLineLength characters and numbers are never split across lines.
func EncodePPM(w io.Writer, canvas *renderer.Canvas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", canvas.Width, canvas.Height); err != nil {
		return fmt.Errorf("ppm header: %w", err)
	}

	var line strings.Builder
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		line.WriteByte('\n')
		_, err := bw.WriteString(line.String())
		line.Reset()
		return err
	}

	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			p, _ := canvas.PixelAt(x, y)
			for _, v := range [3]float64{p.Red(), p.Green(), p.Blue()} {
				token := strconv.Itoa(renderer.ScaleChannel(v))
				if line.Len() > 0 && line.Len()+1+len(token) > MaxPPMLineLength {
					if err := flush(); err != nil {
						return fmt.Errorf("ppm data: %w", err)
					}
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(token)
			}
		}
		// Each row starts on a fresh line
		if err := flush(); err != nil {
			return fmt.Errorf("ppm data: %w", err)
		}
	}

	return bw.Flush()
}

// CanvasToPPM returns the PPM encoding of canvas as a string
func CanvasToPPM(canvas *renderer.Canvas) string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	_ = EncodePPM(&sb, canvas)
	return sb.String()
}
