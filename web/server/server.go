package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/export"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Size limits accepted by the render endpoint
const (
	minImageSize  = 1
	maxImageSize  = 2000
	maxBounces    = 20
	consoleBuffer = 64
)

// Server handles web requests for the raytracer
type Server struct {
	config    config.Config
	scenesDir string
	publisher *export.S3Publisher
	consoles  *consoleStore
}

// NewServer creates a new web server. Scene documents are served from
// scenesDir; publisher may be nil when uploads are not configured.
func NewServer(cfg config.Config, scenesDir string, publisher *export.S3Publisher) *Server {
	return &Server{
		config:    cfg,
		scenesDir: scenesDir,
		publisher: publisher,
		consoles:  newConsoleStore(32),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string        `json:"scene"`      // Built-in name or document file name
	Width      int           `json:"width"`      // Image width
	Height     int           `json:"height"`     // Image height
	MaxBounces int           `json:"maxBounces"` // Reflection recursion budget
	Format     export.Format `json:"format"`     // ppm or png
	Upload     bool          `json:"upload"`     // Publish the result to S3
}

// Handler returns the routing table for the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := ":" + s.config.Port
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and the documents in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	sceneObj, err := scene.New(s.resolveScene(req.Scene), req.Width, req.Height)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	renderID := uuid.NewString()
	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	logger := NewWebLogger(renderID, consoleChan)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.MaxBounces = req.MaxBounces
	renderConfig.NumWorkers = s.config.Workers

	// Use request context to stop workers when the client disconnects
	startTime := time.Now()
	canvas, stats, err := sceneObj.Camera.RenderParallel(r.Context(), sceneObj.World, renderConfig, logger)
	s.consoles.collect(renderID, consoleChan)
	if err != nil {
		log.Printf("[%s] render failed: %v", renderID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, canvas, req.Format); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if req.Upload {
		if s.publisher == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "uploads are not configured"})
			return
		}
		key, err := s.publisher.Publish(r.Context(), buf.Bytes(), req.Format)
		if err != nil {
			log.Printf("[%s] upload failed: %v", renderID, err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("X-Object-Key", key)
	}

	log.Printf("[%s] %s %dx%d rendered in %v (%.0f pixels/s)", renderID, sceneObj.Name,
		req.Width, req.Height, time.Since(startTime), stats.PixelsPerSecond())

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Time", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleConsole returns the log lines captured for a finished render
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	messages, ok := s.consoles.get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown render: " + id})
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: export.FormatPNG}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxBounces, err = parseIntParam(query, "bounces", renderer.DefaultRenderConfig().MaxBounces, 0, maxBounces); err != nil {
		return nil, err
	}
	if format := query.Get("format"); format != "" {
		if req.Format, err = export.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	if upload := query.Get("upload"); upload != "" {
		if req.Upload, err = strconv.ParseBool(upload); err != nil {
			return nil, fmt.Errorf("invalid upload: %s", upload)
		}
	}

	// Performance warning
	if req.Width*req.Height > 1000*1000 && req.MaxBounces > 10 {
		log.Printf("Render warning: Large image with deep reflections may render slowly")
	}

	return req, nil
}

// resolveScene maps a document name onto the scenes directory so requests
// cannot read files elsewhere on disk
func (s *Server) resolveScene(name string) string {
	if strings.HasSuffix(name, ".json") {
		return filepath.Join(s.scenesDir, filepath.Base(name))
	}
	return name
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
