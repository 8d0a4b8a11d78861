package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/HSL-2003/portfolio/internal/analytics"
	"github.com/HSL-2003/portfolio/internal/assets"
	"github.com/HSL-2003/portfolio/internal/metrics"
	"github.com/HSL-2003/portfolio/internal/portfolio"
	"github.com/HSL-2003/portfolio/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var port, assetsDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.applyServeFlags(port, assetsDir); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory holding images and the CV (overrides PORTFOLIO_ASSETS_DIR)")
	return cmd
}

// applyServeFlags overrides the environment with command line flags and then
// validates the server settings.
func (a *app) applyServeFlags(port, assetsDir string) error {
	if port != "" {
		a.cfg.Port = port
	}
	if assetsDir != "" {
		a.cfg.AssetsDir = assetsDir
	}
	return a.cfg.Validate()
}

func (a *app) serve(ctx context.Context) error {
	cfg, log := a.cfg, a.logger
	gin.SetMode(cfg.GinMode)

	site := portfolio.Default()
	catalog := assets.NewCatalog(os.DirFS(cfg.AssetsDir))
	if info, err := os.Stat(cfg.AssetsDir); err != nil || !info.IsDir() {
		log.Warn("assets directory not found, images will show placeholders", "dir", cfg.AssetsDir)
	} else if cfg.WatchAssets {
		go func() {
			if err := catalog.Watch(ctx, cfg.AssetsDir, log); err != nil {
				log.Warn("asset watcher stopped", "error", err)
			}
		}()
	}
	if missing := assets.Missing(catalog, site.Images()); len(missing) > 0 {
		log.Info("images without a file fall back to placeholders", "missing", missing)
	}

	deps := server.Deps{Site: site, Catalog: catalog, Logger: log}
	if cfg.Metrics {
		deps.Metrics = metrics.New()
	}
	if cfg.Analytics.Enabled {
		store, err := analytics.Open(ctx, cfg.Analytics.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		cleanupCtx, stopCleanup := context.WithCancel(ctx)
		cleanupDone := make(chan struct{})
		go func() {
			defer close(cleanupDone)
			store.RunCleanup(cleanupCtx, cfg.Analytics.Retention, analytics.CleanupInterval, log)
		}()
		defer func() {
			stopCleanup()
			<-cleanupDone
		}()
		deps.Visits = store
		log.Info("visit tracking enabled with hashed IP addresses", "db", cfg.Analytics.DBPath)
	}

	srv, err := server.New(server.Config{
		Addr:            cfg.Addr(),
		SceneSeed:       cfg.SceneSeed,
		ShutdownTimeout: cfg.ShutdownTimeout,
		AdminUsername:   cfg.Analytics.AdminUsername,
		AdminPassword:   cfg.Analytics.AdminPassword,
		Retention:       cfg.Analytics.Retention,
	}, deps)
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}
	return srv.ListenAndServe(ctx)
}
