package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/ppm"
	"github.com/softglow/goray/pkg/renderer"
	"github.com/softglow/goray/pkg/scene"
)

// Server handles web requests for the renderer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Local rendering tool, no cross-origin concerns
			},
		},
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`           // Scene name (e.g. "default")
	Width           int    `json:"width"`           // Image width
	Height          int    `json:"height"`          // Image height
	SamplesPerPixel int    `json:"samplesPerPixel"` // Samples per pixel (0 = scene default)
	MaxDepth        int    `json:"maxDepth"`        // Maximum bounce depth (0 = scene default)
	Workers         int    `json:"workers"`         // Render workers (0 = one per CPU)
}

// ProgressUpdate represents a single progressive update sent over the socket
type ProgressUpdate struct {
	RowsComplete int    `json:"rowsComplete"`
	TotalRows    int    `json:"totalRows"`
	ImageData    string `json:"imageData,omitempty"` // Base64 encoded PNG
	IsComplete   bool   `json:"isComplete"`
	ElapsedMs    int64  `json:"elapsedMs"`
	Stats        *Stats `json:"stats,omitempty"` // Only on the final update
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	DegenerateRays int     `json:"degenerateRays"`
}

// ErrorMessage is sent when a request cannot be served
type ErrorMessage struct {
	Error string `json:"error"`
}

// Start begins serving on the configured port
func (s *Server) Start() error {
	mux := s.Handler()
	log.Printf("Listening on http://localhost:%d", s.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}

// Handler returns the server's route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/ws/render", s.handleRender)
	return mux
}

// handleScenes lists the scenes available for rendering
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scene.Names()); err != nil {
		log.Printf("Error writing scene list: %v", err)
	}
}

// handleRender streams a render over a websocket: the client sends one
// RenderRequest, the server replies with ProgressUpdate frames until the
// final one carries IsComplete and the stats.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(ErrorMessage{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	if err := s.streamRender(conn, req); err != nil {
		log.Printf("Render stream ended: %v", err)
	}
}

func (s *Server) streamRender(conn *websocket.Conn, req RenderRequest) error {
	if req.Width < 2 || req.Height < 2 || req.Width > 4096 || req.Height > 4096 {
		return conn.WriteJSON(ErrorMessage{Error: "width and height must be in [2, 4096]"})
	}
	selectedScene := scene.ByName(req.Scene, float64(req.Width)/float64(req.Height))
	if selectedScene == nil {
		return conn.WriteJSON(ErrorMessage{Error: fmt.Sprintf("unknown scene %q", req.Scene)})
	}

	config := selectedScene.SamplingConfig
	if req.SamplesPerPixel > 0 {
		config.SamplesPerPixel = req.SamplesPerPixel
	}
	if req.MaxDepth > 0 {
		config.MaxDepth = req.MaxDepth
	}

	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	startTime := time.Now()
	lastUpdate := startTime

	frame := renderer.NewFrame(req.Width, req.Height)
	pool := renderer.NewWorkerPool(selectedScene, req.Width, req.Height, config, req.Workers)
	pool.Start()
	for y := 0; y < req.Height; y++ {
		pool.SubmitTask(renderer.RowTask{Row: y, Seed: int64(y), Frame: frame})
	}

	// Copy finished rows into the preview image as their results arrive.
	// Receiving the result orders this read after the worker's writes, so
	// only completed rows are ever touched here.
	var stats renderer.RenderStats
	rowsComplete := 0
	for rowsComplete < req.Height {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
		renderRowToImage(img, frame[result.Row], result.Row)
		rowsComplete++

		if time.Since(lastUpdate) < 250*time.Millisecond {
			continue
		}
		lastUpdate = time.Now()
		update := ProgressUpdate{
			RowsComplete: rowsComplete,
			TotalRows:    req.Height,
			ImageData:    encodePNG(img),
			ElapsedMs:    time.Since(startTime).Milliseconds(),
		}
		if err := conn.WriteJSON(update); err != nil {
			pool.Stop()
			return fmt.Errorf("writing progress update: %w", err)
		}
	}
	pool.Stop()
	stats.Elapsed = time.Since(startTime)

	return conn.WriteJSON(ProgressUpdate{
		RowsComplete: req.Height,
		TotalRows:    req.Height,
		ImageData:    encodePNG(img),
		IsComplete:   true,
		ElapsedMs:    stats.Elapsed.Milliseconds(),
		Stats: &Stats{
			TotalPixels:    stats.TotalPixels,
			TotalSamples:   stats.TotalSamples,
			AverageSamples: stats.AverageSamples(),
			DegenerateRays: stats.DegenerateRays,
		},
	})
}

// renderRowToImage converts one framebuffer row through the color pipeline
func renderRowToImage(img *image.RGBA, row []core.Vec3, y int) {
	for x, pixelColor := range row {
		r, g, b := ppm.Bytes(pixelColor)
		img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
	}
}

// encodePNG encodes the image as base64 PNG for JSON transport
func encodePNG(img *image.RGBA) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
