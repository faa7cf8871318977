// Package server provides the HTTP REST API for the contest board.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/moyeonlab/contest-board/internal/source"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	contests   source.Accessor
	cache      *source.Cached
	refresher  *cron.Cron
}

// Config holds server configuration.
type Config struct {
	Port        int
	Accessor    source.Accessor // contest data source, required
	RefreshCron string          // optional background cache refresh schedule
}

// New creates a new server instance. When the accessor is a *source.Cached
// and a refresh schedule is configured, the cache is refreshed in the
// background so requests rarely pay the feed round-trip.
func New(cfg Config) (*Server, error) {
	if cfg.Accessor == nil {
		return nil, fmt.Errorf("accessor is required")
	}

	s := &Server{contests: cfg.Accessor}
	if cached, ok := cfg.Accessor.(*source.Cached); ok {
		s.cache = cached
	}

	if cfg.RefreshCron != "" && s.cache != nil {
		s.refresher = cron.New()
		_, err := s.refresher.AddFunc(cfg.RefreshCron, func() {
			if _, err := s.cache.Refresh(context.Background()); err != nil {
				log.Printf("background contest refresh failed: %v", err)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("invalid refresh schedule %q: %w", cfg.RefreshCron, err)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Listing endpoints
	mux.HandleFunc("GET /contests", s.handleListContests)
	mux.HandleFunc("GET /home", s.handleHome)

	// Calendar endpoints
	mux.HandleFunc("GET /calendar/{year}/{month}", s.handleCalendarMonth)
	mux.HandleFunc("GET /calendar/today", s.handleTodaysDeadlines)
	mux.HandleFunc("GET /calendar.ics", s.handleCalendarICS)

	// Cache management
	mux.HandleFunc("POST /refresh", s.handleRefresh)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if s.refresher != nil {
		s.refresher.Start()
	}

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.refresher != nil {
		s.refresher.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRefresh invalidates and refreshes the contest cache on demand.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		s.errorResponse(w, http.StatusConflict, "Server has no refreshable cache")
		return
	}

	s.cache.Invalidate()
	contests, err := s.cache.Refresh(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Refresh failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{"count": len(contests)})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
