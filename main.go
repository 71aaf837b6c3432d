package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/export"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Options are the command line settings for a single render
type Options struct {
	Scene          string
	Width          int
	Height         int
	Format         export.Format
	OutputDir      string
	Workers        int
	MaxBounces     int
	ThumbnailWidth int
	Upload         bool
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: "+strings.Join(scene.BuiltinNames(), ", ")+" or a .json scene file")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	format := flag.String("format", "ppm", "Output format: ppm or png")
	outputDir := flag.String("out", cfg.OutputDir, "Output directory")
	workers := flag.Int("workers", cfg.Workers, "Parallel workers (0 = CPU count, 1 = serial render)")
	bounces := flag.Int("bounces", renderer.DefaultRenderConfig().MaxBounces, "Maximum reflection bounces")
	thumbnail := flag.Int("thumbnail", cfg.ThumbnailWidth, "Also write a PNG thumbnail this many pixels wide (0 = none)")
	upload := flag.Bool("upload", false, "Upload the render to the configured S3 bucket")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListBuiltinScenes() {
			fmt.Printf("  %-9s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
		return
	}

	outputFormat, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	opts := Options{
		Scene:          *sceneType,
		Width:          *width,
		Height:         *height,
		Format:         outputFormat,
		OutputDir:      *outputDir,
		Workers:        *workers,
		MaxBounces:     *bounces,
		ThumbnailWidth: *thumbnail,
		Upload:         *upload,
	}

	var publisher *export.S3Publisher
	if opts.Upload {
		if publisher, err = export.NewS3Publisher(cfg.S3); err != nil {
			fmt.Printf("Error configuring upload: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Starting Phong Raytracer...")
	if _, err := run(context.Background(), opts, publisher, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene resolves a built-in scene name or a scene document path
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}
	return scene.New(sceneType, width, height)
}

// run renders the selected scene and writes it (plus optional thumbnail and
// upload), returning the path of the main output file
func run(ctx context.Context, opts Options, publisher *export.S3Publisher, logger core.Logger) (string, error) {
	s, err := createScene(opts.Scene, opts.Width, opts.Height)
	if err != nil {
		return "", err
	}
	logger.Printf("Rendering scene %q with %d pixels\n", s.Name, s.Camera.NumPixels())

	startTime := time.Now()
	var canvas *renderer.Canvas
	if opts.Workers == 1 {
		canvas = s.Camera.RenderWithBounces(s.World, opts.MaxBounces)
	} else {
		renderConfig := renderer.DefaultRenderConfig()
		renderConfig.NumWorkers = opts.Workers
		renderConfig.MaxBounces = opts.MaxBounces
		if canvas, _, err = s.Camera.RenderParallel(ctx, s.World, renderConfig, logger); err != nil {
			return "", err
		}
	}
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	// Create timestamped filename under a directory per scene
	outputDir := filepath.Join(opts.OutputDir, s.Name)
	name := fmt.Sprintf("render_%s", time.Now().Format("20060102_150405"))
	path, err := export.WriteFile(outputDir, name, canvas, opts.Format)
	if err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s\n", path)

	if opts.ThumbnailWidth > 0 {
		thumbPath := filepath.Join(outputDir, name+"_thumb.png")
		if err := export.SaveImage(thumbPath, export.Thumbnail(canvas.ToImage(), opts.ThumbnailWidth)); err != nil {
			return path, err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if opts.Upload && publisher != nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return path, fmt.Errorf("read render for upload: %w", err)
		}
		key, err := publisher.Publish(ctx, data, opts.Format)
		if err != nil {
			return path, err
		}
		logger.Printf("Uploaded %s (%d bytes)\n", key, len(data))
	}

	return path, nil
}
