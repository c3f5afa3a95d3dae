package rest

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"portfolio/infrastructure/di"
	"portfolio/interfaces/http/rest/handlers"
	"portfolio/interfaces/http/rest/middleware"
	pkgerrors "portfolio/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	errors    *pkgerrors.ErrorHandler
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		errors:    pkgerrors.NewErrorHandler(container.Logger, container.Config.IsDevelopment()),
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	c := rt.container
	cfg := c.Config
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.errors.Middleware)
	if cfg.EnableTracing {
		router.Use(c.Tracer.Middleware)
	}
	if cfg.EnableMetrics {
		router.Use(c.Metrics.Middleware)
	}
	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	router.Use(middleware.Session(c.Sessions))

	health := handlers.NewHealthHandler(c.Store)
	router.Get("/health", health.Health)
	router.Get("/ready", health.Ready)
	if cfg.EnableMetrics {
		router.Handle("/metrics", c.Metrics.Handler())
	}

	rt.mountUploads(router, cfg.UploadURLPrefix, c.Images.Dir())

	requireAdmin := middleware.RequireAdmin(rt.errors)
	content := handlers.NewContentHandler(c.CommandBus, c.QueryBus, rt.errors, cfg.MaxBodyBytes, rt.logger)
	canvas := handlers.NewCanvasHandler(c.CommandBus, c.QueryBus, rt.errors, cfg.MaxBodyBytes, rt.logger)
	upload := handlers.NewUploadHandler(c.Uploads, c.CommandBus, rt.errors, cfg.MaxUploadBytes, rt.logger)
	auth := handlers.NewAuthHandler(c.Sessions, rt.errors, rt.logger)

	router.Route("/api", func(r chi.Router) {
		r.Route("/content", func(r chi.Router) {
			r.Get("/", content.GetContent)
			r.With(requireAdmin).Put("/", content.SaveContent)
		})

		r.With(requireAdmin).Post("/upload", upload.Upload)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/session", auth.Session)
		})

		r.Route("/timeline", func(r chi.Router) {
			r.Get("/layout", canvas.TimelineLayout)
			r.Get("/road.svg", canvas.TimelineRoad)
			r.With(requireAdmin).Put("/positions", canvas.UpdateTimelinePositions)
		})

		r.Route("/strategy", func(r chi.Router) {
			r.Get("/layout", canvas.StrategyLayout)
			r.With(requireAdmin).Put("/positions", canvas.UpdateStrategyPositions)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errors.HandleStatus(w, r, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rt.errors.HandleStatus(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return router
}

// mountUploads serves stored images. Directory listings are not exposed.
func (rt *Router) mountUploads(router chi.Router, prefix, dir string) {
	if prefix == "" {
		prefix = "/uploads"
	}
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	router.Get(prefix+"/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			rt.errors.HandleStatus(w, r, http.StatusNotFound, "Not found")
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		files.ServeHTTP(w, r)
	})
}
