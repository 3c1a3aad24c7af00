package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"daily_question_bot/bot"
)

// RunFunc performs one bot invocation.
type RunFunc func(ctx context.Context) bot.Result

// Server exposes the invocation over HTTP so an external scheduler can trigger it.
type Server struct {
	run    RunFunc
	logger *log.Logger
}

func New(run RunFunc, logger *log.Logger) (*Server, error) {
	if run == nil {
		return nil, errors.New("run func required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{run: run, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/run", s.handleRun)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s.logMiddleware(mux)
}

// --- Handlers ---

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// a caller hanging up must not abort a half-finished post
	res := s.run(context.WithoutCancel(r.Context()))
	writeText(w, res.StatusCode, res.Body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeText(w, http.StatusOK, "ok")
}

// --- Helpers ---

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		s.logger.Printf("[server] %s %s %d %s", r.Method, path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
