package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/audit"
	"github.com/takumif/aiact-explorer/internal/slides"
	"github.com/takumif/aiact-explorer/internal/ws"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the article explorer HTTP server. It owns the transport only;
// all document state lives in the articles store.
type Server struct {
	cfg        Config
	store      *articles.Store
	history    *audit.Store
	hub        *ws.Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server wired to the given store. The history store may be
// nil, in which case no edit-history endpoints are mounted.
func New(cfg Config, store *articles.Store, history *audit.Store) *Server {
	s := &Server{
		cfg:     cfg,
		store:   store,
		history: history,
		hub:     ws.NewHub(),
	}
	store.Subscribe(s.hub.Broadcast)

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	articles.RegisterRoutes(r, s.store)
	slides.RegisterRoutes(r, s.store)
	if s.history != nil {
		audit.RegisterRoutes(r, s.history)
	}
	r.Get("/ws", s.hub.HandleWebSocket)

	return r
}

// Router returns the chi router, used by tests and embedders.
func (s *Server) Router() chi.Router { return s.router }

// Store returns the document store.
func (s *Server) Store() *articles.Store { return s.store }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("aiact server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
