// Package server is a small local HTTP server that re-solves the
// configured bicycle files on every request, so edits to the input
// documents show up on refresh.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/cschone/bikefit/pkg/compare"
	"github.com/cschone/bikefit/pkg/geo"
	"github.com/cschone/bikefit/pkg/metrics"
	"github.com/cschone/bikefit/pkg/render"
	"github.com/cschone/bikefit/pkg/solver"
	"github.com/cschone/bikefit/pkg/spec"
	"github.com/cschone/bikefit/pkg/validation"
)

// Config selects the input files served by the server.
type Config struct {
	BikePaths []string
	RiderPath string
	StylePath string
	Port      int
}

// Server serves the comparison chart and solved geometry over HTTP.
type Server struct {
	cfg    Config
	logger *log.Logger
}

// New creates a server for the given inputs.
func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/geometry", s.handleGeometry)
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /chart.svg", s.handleChart)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("bikefit server starting", "url", "http://localhost"+addr, "bikes", len(s.cfg.BikePaths))

	return http.ListenAndServe(addr, mux)
}

// skippedFile is the wire form of a per-file failure.
type skippedFile struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// solveAll re-reads and solves every configured file. Per-file failures
// are collected; only a broken rider file fails the request.
func (s *Server) solveAll() ([]*solver.PointSet, []skippedFile, error) {
	var rider *spec.Rider
	if s.cfg.RiderPath != "" {
		r, err := spec.LoadRider(s.cfg.RiderPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading rider: %w", err)
		}
		rider = r
	}

	var sets []*solver.PointSet
	var skips []skippedFile
	for _, path := range s.cfg.BikePaths {
		bike, err := spec.Load(path)
		if err != nil {
			skips = append(skips, skippedFile{Path: path, Error: err.Error()})
			continue
		}
		set, err := solver.Solve(bike, rider)
		if err != nil {
			skips = append(skips, skippedFile{Path: path, Error: err.Error()})
			continue
		}
		sets = append(sets, set)
	}
	return sets, skips, nil
}

func (s *Server) handleGeometry(w http.ResponseWriter, _ *http.Request) {
	sets, skips, err := s.solveAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	normalized := compare.Normalize(compare.NewFrame(geo.Origin), sets)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"bikes":   normalized,
		"skipped": skips,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	sets, skips, err := s.solveAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	msets := make([]*metrics.Set, len(sets))
	for i, set := range sets {
		msets[i] = metrics.Compute(set)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"bikes":   msets,
		"skipped": skips,
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	reports := make(map[string]*validation.Report, len(s.cfg.BikePaths))
	for _, path := range s.cfg.BikePaths {
		bike, err := spec.Load(path)
		if err != nil {
			r := validation.NewReport()
			r.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Message: err.Error(),
			})
			reports[path] = r
			continue
		}
		reports[path] = validation.ValidateBicycle(bike)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reports)
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	sets, _, err := s.solveAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(sets) == 0 {
		http.Error(w, "no bicycles could be solved", http.StatusUnprocessableEntity)
		return
	}

	style := render.DefaultStyle()
	if s.cfg.StylePath != "" {
		style, err = render.LoadStyle(s.cfg.StylePath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	normalized := compare.Normalize(compare.NewFrame(geo.Origin), sets)
	bikes := make([]render.Bike, len(normalized))
	for i, set := range normalized {
		bikes[i] = render.Bike{Set: set, Metrics: metrics.Compute(set)}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.New(style).WriteChart(bikes, w, "svg"); err != nil {
		s.logger.Error("chart render failed", "err", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>bikefit</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;text-align:center">
<h1>bikefit</h1>
<img src="/chart.svg" style="max-width:95vw;background:#fff" alt="geometry comparison">
<p>Edit the input files and refresh. JSON: <a href="/api/geometry">geometry</a>,
<a href="/api/metrics">metrics</a>, <a href="/api/validation">validation</a>.</p>
</body></html>`)
}
