package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "trustlens/docs" // swagger spec registration
	"trustlens/internal/inspector"
	"trustlens/internal/interfaces"
	"trustlens/internal/logging"
	"trustlens/internal/webclient"
)

// Server is the HTTP + WebSocket API surface for TrustLens. It also
// serves a minimal HTML form mirroring the API for manual use.
type Server struct {
	cfg      Config
	runner   *inspector.Runner
	router   chi.Router
	upgrader websocket.Upgrader
	logger   interfaces.Logger
}

// NewServer builds a Server with its own inspector and web client.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Inspector == nil {
		cfg.Inspector = inspector.DefaultConfig()
	}

	if cfg.Logger == nil {
		cfg.Logger = logging.NewStdoutLogger("Server")
	}
	logger := cfg.Logger

	wc, err := webclient.New(cfg.Client, logger)
	if err != nil {
		return nil, fmt.Errorf("creating web client: %w", err)
	}

	insp := inspector.NewOwned(cfg.Inspector, wc, logger)
	return NewServerWithRunner(cfg, inspector.NewRunner(insp, logger)), nil
}

// NewServerWithRunner wires the HTTP surface around an existing runner.
// The runner is closed along with the server.
func NewServerWithRunner(cfg Config, runner *inspector.Runner) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		router: chi.NewRouter(),
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
	}

	s.routes()
	return s
}

// Runner returns the underlying job runner for advanced use (tests, etc.).
func (s *Server) Runner() *inspector.Runner {
	return s.runner
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/api/inspect", s.optionsHandler("POST"))
	r.Options("/api/jobs", s.optionsHandler("GET, POST"))
	r.Options("/api/jobs/{jobID}", s.optionsHandler("GET, DELETE"))
	r.Options("/ws/jobs/{jobID}", s.optionsHandler("GET"))

	// HTML form
	r.Get("/", s.handleIndex)
	r.Post("/analyze", s.handleAnalyzeForm)

	// Synchronous API
	r.Post("/api/inspect", s.handleInspect)

	// Jobs over REST
	r.Post("/api/jobs", s.handleStartJob)
	r.Get("/api/jobs", s.handleListJobs)
	r.Get("/api/jobs/{jobID}", s.handleGetJob)
	r.Delete("/api/jobs/{jobID}", s.handleCancelJob)

	// WebSocket for job progress
	r.Get("/ws/jobs/{jobID}", s.handleJobWS)

	r.Get("/health", s.handleHealth)
	r.Get("/swagger/*", httpSwagger.Handler())
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []interfaces.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, interfaces.Field{Key: "query", Value: q})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close shuts down the runner and the owned web client.
func (s *Server) Close() {
	if s.runner != nil {
		if err := s.runner.Close(); err != nil {
			s.logger.Warn("closing runner", interfaces.Field{Key: "error", Value: err.Error()})
		}
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// --- HTML form handlers ---

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, nil)
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, "invalid form submission")
		return
	}
	url := r.PostFormValue("url")
	if url == "" {
		s.renderError(w, "missing url field")
		return
	}

	report := s.runner.Inspect(r.Context(), url)
	if !report.Success {
		s.renderError(w, report.Error)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = resultsTemplate.Execute(w, newResultsView(url, report))
}

func (s *Server) renderError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = errorTemplate.Execute(w, msg)
}

// --- API handlers ---

// handleInspect godoc
// @Summary Inspect a URL synchronously
// @Accept json
// @Produce json
// @Param request body InspectRequest true "target URL"
// @Success 200 {object} model.InspectionReport
// @Failure 400 {object} ErrorResponse
// @Router /api/inspect [post]
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	var body InspectRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.URL == "" {
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}

	report := s.runner.Inspect(r.Context(), body.URL)
	s.logger.Info("inspected url",
		interfaces.Field{Key: "url", Value: body.URL},
		interfaces.Field{Key: "success", Value: report.Success})
	writeJSON(w, http.StatusOK, report)
}

// handleStartJob godoc
// @Summary Submit an asynchronous inspection job
// @Accept json
// @Produce json
// @Param request body InspectRequest true "target URL"
// @Success 202 {object} inspector.Job
// @Failure 400 {object} ErrorResponse
// @Router /api/jobs [post]
func (s *Server) handleStartJob(w http.ResponseWriter, r *http.Request) {
	var body InspectRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.URL == "" {
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}

	// Detached from the request context so the job outlives the response.
	job := s.runner.StartJob(context.Background(), body.URL)
	s.logger.Info("started job",
		interfaces.Field{Key: "job_id", Value: job.ID},
		interfaces.Field{Key: "url", Value: body.URL})
	writeJSON(w, http.StatusAccepted, job)
}

// handleListJobs godoc
// @Summary List all jobs, newest first
// @Produce json
// @Success 200 {array} inspector.Job
// @Router /api/jobs [get]
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.runner.ListJobs()
	writeJSON(w, http.StatusOK, jobs)
}

// handleGetJob godoc
// @Summary Get one job by ID
// @Produce json
// @Param jobID path string true "job ID"
// @Success 200 {object} inspector.Job
// @Failure 404 {object} ErrorResponse
// @Router /api/jobs/{jobID} [get]
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.runner.GetJob(jobID)
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleCancelJob godoc
// @Summary Cancel a running job
// @Param jobID path string true "job ID"
// @Success 204
// @Router /api/jobs/{jobID} [delete]
func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	s.runner.CancelJob(jobID)
	s.logger.Info("canceled job", interfaces.Field{Key: "job_id", Value: jobID})
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- WebSocket ---

func (s *Server) handleJobWS(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.runner.GetJob(jobID)
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", interfaces.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	_ = conn.WriteJSON(job)

	for ev := range job.Events {
		if err := conn.WriteJSON(ev); err != nil {
			// Assume client disconnected; cancel job
			s.runner.CancelJob(job.ID)
			return
		}
	}

	// Terminal state after the events channel closes.
	if final := s.runner.GetJob(jobID); final != nil {
		_ = conn.WriteJSON(final)
	}
}
