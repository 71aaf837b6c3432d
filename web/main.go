package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/export"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	// Parse command line flags
	port := flag.String("port", cfg.Port, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of JSON scene documents")
	flag.Parse()
	cfg.Port = *port

	var publisher *export.S3Publisher
	if cfg.UploadEnabled() {
		if publisher, err = export.NewS3Publisher(cfg.S3); err != nil {
			log.Printf("Error configuring upload: %v", err)
			os.Exit(1)
		}
	}

	// Create and start web server
	webServer := server.NewServer(cfg, *scenesDir, publisher)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Visit http://localhost:%s/api/render?scene=default to render", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
