package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RT_OUTPUT_DIR", "RT_WORKERS", "RT_THUMBNAIL_WIDTH", "RT_PORT",
		"RT_S3_ACCESS_KEY", "RT_S3_SECRET_KEY", "RT_S3_ENDPOINT", "RT_S3_REGION", "RT_S3_BUCKET",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.UploadEnabled() {
		t.Errorf("Upload should be disabled without a bucket")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RT_OUTPUT_DIR", "/tmp/renders")
	t.Setenv("RT_WORKERS", "4")
	t.Setenv("RT_THUMBNAIL_WIDTH", "128")
	t.Setenv("RT_PORT", "9000")
	t.Setenv("RT_S3_BUCKET", "images")
	t.Setenv("RT_S3_REGION", "eu-west-1")
	t.Setenv("RT_S3_ENDPOINT", "http://localhost:9000")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.OutputDir != "/tmp/renders" || cfg.Workers != 4 || cfg.ThumbnailWidth != 128 || cfg.Port != "9000" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.S3.Bucket != "images" || cfg.S3.Region != "eu-west-1" || cfg.S3.Endpoint != "http://localhost:9000" {
		t.Errorf("Unexpected S3 config %+v", cfg.S3)
	}
	if !cfg.UploadEnabled() {
		t.Errorf("Upload should be enabled with a bucket")
	}
}

func TestFromEnv_InvalidNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"RT_WORKERS", "many"},
		{"RT_WORKERS", "-1"},
		{"RT_THUMBNAIL_WIDTH", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("RT_WORKERS")
	os.Unsetenv("RT_S3_BUCKET")
	t.Cleanup(func() {
		os.Unsetenv("RT_WORKERS")
		os.Unsetenv("RT_S3_BUCKET")
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("RT_WORKERS=2\nRT_S3_BUCKET=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Workers != 2 || cfg.S3.Bucket != "from-file" {
		t.Errorf("Expected values from env file, got %+v", cfg)
	}
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Missing env file should not be an error, got %v", err)
	}
}
