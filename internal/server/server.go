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

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/completion"
	"github.com/ziadkadry99/studydeck/internal/db"
	"github.com/ziadkadry99/studydeck/internal/events"
	"github.com/ziadkadry99/studydeck/internal/pages"
	"github.com/ziadkadry99/studydeck/internal/shell"
)

// Config holds server configuration.
type Config struct {
	Port         int
	MaterialsDir string        // directory the /materials/ paths resolve against
	AllowAll     bool          // allow all CORS origins (dev mode)
	OpenDelay    time.Duration // deferral for cross-page open_module events
	SessionIdle  time.Duration // idle sessions older than this are swept
}

// Server is the studydeck HTTP server.
type Server struct {
	cfg        Config
	catalog    *catalog.Catalog
	completion *completion.Store
	sessions   *shell.Sessions
	hub        *events.Hub
	pages      *pages.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server backed by database and serving c.
func New(cfg Config, database *db.DB, c *catalog.Catalog) (*Server, error) {
	renderer, err := pages.New()
	if err != nil {
		return nil, err
	}

	hub := events.NewHub()
	s := &Server{
		cfg:        cfg,
		catalog:    c,
		completion: completion.NewStore(db.NewKV(database)),
		sessions:   shell.NewSessions(c, shell.Options{OpenDelay: cfg.OpenDelay, Publisher: hub}),
		hub:        hub,
		pages:      renderer,
	}

	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Static documents.
	materials := http.StripPrefix(catalog.MaterialsPrefix, http.FileServer(http.Dir(s.cfg.MaterialsDir)))
	r.Handle(catalog.MaterialsPrefix+"*", materials)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		// The event stream is long-lived and stays outside the request timeout.
		r.Get("/ws/events", func(w http.ResponseWriter, r *http.Request) {
			s.hub.ServeWS(w, r, sessionID(r))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			s.registerRoutes(r)
		})
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the live session table.
func (s *Server) Sessions() *shell.Sessions { return s.sessions }

// Hub returns the event hub.
func (s *Server) Hub() *events.Hub { return s.hub }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("studydeck server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// SweepSessions drops idle sessions every interval until ctx is done.
func (s *Server) SweepSessions(ctx context.Context, interval time.Duration) {
	if s.cfg.SessionIdle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Sweep(s.cfg.SessionIdle); n > 0 {
				log.Printf("server: swept %d idle sessions", n)
			}
		}
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
