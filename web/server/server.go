package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Request limits shared by parsing and the scene-config endpoint
const (
	minDimension = 16
	maxDimension = 2048
	minDepth     = 0
	maxDepth     = 8
	maxWorkers   = 256

	// maxRayBudget bounds width*height*2^(maxDepth+1), the worst case number
	// of scene rays when every surface both reflects and refracts
	maxRayBudget = 1 << 28
)

// Server serves rendered images over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene name ("default" or "single")
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	MaxDepth int    `json:"maxDepth"` // Deepest reflection/refraction level
	Workers  int    `json:"workers"`  // Render workers, 0 = one per CPU
	Format   string `json:"format"`   // "png" for the raw image, "json" for image plus stats
}

// RenderResponse is returned for format=json
type RenderResponse struct {
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels  int     `json:"totalPixels"`
	Rays         int     `json:"rays"`
	ShadowRays   int     `json:"shadowRays"`
	RaysPerPixel float64 `json:"raysPerPixel"`
	MaxDepth     int     `json:"maxDepth"`
	Workers      int     `json:"workers"`
}

// Handler returns the HTTP routes served by s
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders one frame and returns it as PNG, or as JSON with stats
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj := s.createScene(req.Scene)
	if sceneObj == nil {
		s.sendError(w, http.StatusBadRequest, "Unknown scene: "+req.Scene)
		return
	}

	config := renderer.MergeConfig(renderer.DefaultConfig(), renderer.Config{
		Width:      req.Width,
		Height:     req.Height,
		NumWorkers: req.Workers,
	})
	// Zero is a valid depth, so it bypasses MergeConfig
	config.MaxDepth = req.MaxDepth

	consoleChan := make(chan ConsoleMessage, 16)
	logger := NewWebLogger(fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano()), consoleChan)
	if req.Width*req.Height > 1024*768 {
		logger.Printf("Render warning: %dx%d is larger than the default image\n", req.Width, req.Height)
	}

	startTime := time.Now()
	fb, stats := renderer.Render(sceneObj, config, logger)
	close(consoleChan)

	var buf bytes.Buffer
	if err := loaders.EncodePNG(&buf, fb.Width, fb.Height, fb.RGB8()); err != nil {
		s.sendError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		return
	}

	response := RenderResponse{
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			TotalPixels:  stats.TotalPixels,
			Rays:         stats.Rays,
			ShadowRays:   stats.ShadowRays,
			RaysPerPixel: stats.RaysPerPixel(),
			MaxDepth:     stats.MaxDepth,
			Workers:      stats.Workers,
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	}
	for msg := range consoleChan {
		response.Console = append(response.Console, msg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	defaults := renderer.DefaultConfig()
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	switch format := query.Get("format"); format {
	case "", "png":
	case "json":
		req.Format = format
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", defaults.MaxDepth, minDepth, maxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}

	if worstCaseRays(req.Width, req.Height, req.MaxDepth) > maxRayBudget {
		return nil, fmt.Errorf("%dx%d at maxDepth %d exceeds the ray budget; lower the size or depth",
			req.Width, req.Height, req.MaxDepth)
	}

	return req, nil
}

// worstCaseRays returns the number of scene rays a render could cast if every
// hit spawned both a reflected and a refracted child down to maxDepth
func worstCaseRays(width, height, maxDepth int) int {
	return (width * height) << (maxDepth + 1)
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

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	case "single":
		return scene.NewSingleSphereScene()
	default:
		return nil
	}
}

// sendError writes a JSON error body with the given status
func (s *Server) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj := s.createScene(sceneName)
	if sceneObj == nil {
		s.sendError(w, http.StatusBadRequest, "Unknown scene: "+sceneName)
		return
	}

	config := renderer.DefaultConfig()
	response := map[string]interface{}{
		"scene":   sceneName,
		"spheres": len(sceneObj.Spheres),
		"lights":  len(sceneObj.Lights),
		"floor":   sceneObj.Floor != nil,
		"defaults": map[string]interface{}{
			"width":      config.Width,
			"height":     config.Height,
			"fov":        config.FOV,
			"maxDepth":   config.MaxDepth,
			"background": []float32{config.Background.X, config.Background.Y, config.Background.Z},
		},
		"limits": map[string]interface{}{
			"width":     map[string]int{"min": minDimension, "max": maxDimension},
			"height":    map[string]int{"min": minDimension, "max": maxDimension},
			"maxDepth":  map[string]int{"min": minDepth, "max": maxDepth},
			"workers":   map[string]int{"min": 0, "max": maxWorkers},
			"rayBudget": maxRayBudget,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
