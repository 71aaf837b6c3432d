package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-phong-raytracer/pkg/export"
)

// Config holds settings shared by the CLI and the web server
type Config struct {
	OutputDir      string // Directory renders are written to
	Workers        int    // Parallel render workers (0 = use CPU count)
	ThumbnailWidth int    // Width of preview thumbnails (0 = none)
	Port           string // Web server listen port

	S3 export.S3Config
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		OutputDir: "output",
		Port:      "8080",
		S3: export.S3Config{
			Region: "us-east-1",
			Prefix: "renders",
		},
	}
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables already set, then builds a Config from RT_* variables
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from RT_* environment variables over Default
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.OutputDir = getEnv("RT_OUTPUT_DIR", cfg.OutputDir)
	cfg.Port = getEnv("RT_PORT", cfg.Port)

	var err error
	if cfg.Workers, err = getEnvInt("RT_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.ThumbnailWidth, err = getEnvInt("RT_THUMBNAIL_WIDTH", cfg.ThumbnailWidth); err != nil {
		return Config{}, err
	}

	cfg.S3.AccessKey = os.Getenv("RT_S3_ACCESS_KEY")
	cfg.S3.SecretKey = os.Getenv("RT_S3_SECRET_KEY")
	cfg.S3.Endpoint = os.Getenv("RT_S3_ENDPOINT")
	cfg.S3.Region = getEnv("RT_S3_REGION", cfg.S3.Region)
	cfg.S3.Bucket = os.Getenv("RT_S3_BUCKET")

	return cfg, nil
}

// UploadEnabled reports whether a bucket is configured
func (c Config) UploadEnabled() bool {
	return c.S3.Bucket != ""
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, n)
	}
	return n, nil
}
