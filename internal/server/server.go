// Package server wires the portfolio's HTTP surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HSL-2003/portfolio/internal/analytics"
	"github.com/HSL-2003/portfolio/internal/assets"
	"github.com/HSL-2003/portfolio/internal/metrics"
	"github.com/HSL-2003/portfolio/internal/portfolio"
	"github.com/HSL-2003/portfolio/internal/scene"
)

// Config is what the server needs beyond its collaborators.
type Config struct {
	Addr            string
	SceneSeed       uint64
	ShutdownTimeout time.Duration
	AdminUsername   string
	AdminPassword   string
	// Retention bounds how long visits are kept by the admin privacy cleanup.
	Retention time.Duration
}

// Deps are the collaborators. Metrics and Visits are optional.
type Deps struct {
	Site    portfolio.Site
	Catalog *assets.Catalog
	Metrics *metrics.Metrics
	Visits  *analytics.Store
	Logger  *slog.Logger
}

type Server struct {
	cfg    Config
	deps   Deps
	engine *gin.Engine
	scenes *sceneCache
	admin  *adminAuth
}

// New validates the site content and builds the route table.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Catalog == nil {
		return nil, errors.New("server: catalog is required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if err := deps.Site.Validate(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 365 * 24 * time.Hour
	}

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		scenes: newSceneCache(scene.DefaultConfig()),
	}

	if deps.Visits != nil {
		if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
			deps.Logger.Warn("admin endpoints disabled: ADMIN_USERNAME and ADMIN_PASSWORD are not set")
		} else {
			admin, err := newAdminAuth(cfg.AdminUsername, cfg.AdminPassword)
			if err != nil {
				return nil, fmt.Errorf("server: %w", err)
			}
			s.admin = admin
		}
	}

	s.engine = s.routes()
	return s, nil
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), recovery(s.deps.Logger), accessLog(s.deps.Logger))
	if s.deps.Metrics != nil {
		r.Use(s.deps.Metrics.Middleware())
	}
	if s.deps.Visits != nil {
		r.Use(analytics.Middleware(s.deps.Visits, s.deps.Logger))
	}

	r.StaticFS("/static", staticFS())
	r.GET("/assets/*filepath", s.handleAsset)
	r.GET("/api/scene", s.handleScene)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if s.deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))
	}

	pages := r.Group("/", securityHeaders())
	pages.GET("/", s.handleIndex)
	pages.GET("/privacy", s.handlePrivacy)
	if s.admin != nil {
		s.adminRoutes(pages)
	}
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("portfolio listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.deps.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
