package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"feedreader/api"
	"feedreader/api/middleware"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the feed reader HTTP API",
		Description: `Starts the HTTP API on the configured port.

		The container starts empty and the menu starts hidden. Set
		LOAD_ON_START to a registry index to load that feed at startup.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides PORT)",
			},
			&cli.IntFlag{
				Name:    "load-on-start",
				Value:   -1,
				Usage:   "Registry index loaded when the server starts, -1 for none",
				EnvVars: []string{"LOAD_ON_START"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			if port := ctx.String("port"); port != "" {
				cfg.Server.Port = port
			}

			rt, err := newRuntime(cfg, ctx.App.ErrWriter)
			if err != nil {
				return err
			}
			defer rt.Close()

			sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Rate limiting and /metrics are always mounted; the flags decide per request
			limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).
				TrustProxy(cfg.RateLimit.TrustProxy)
			go limiter.Run(sigCtx, time.Minute, 10*time.Minute)

			apiCfg := api.APIConfig{
				Logger:      rt.logger,
				RateLimiter: limiter,
				Metrics:     rt.metrics.Handler(),
				Flags:       rt.flags,
			}

			humaAPI, router := api.NewAPIWithMiddleware(apiCfg)
			api.RegisterRoutes(humaAPI, rt.widget, rt.widget.Menu(), rt.logger)

			if index := ctx.Int("load-on-start"); index >= 0 {
				if err := rt.widget.LoadFeedAsync(index, nil); err != nil {
					return err
				}
			}

			srv := &http.Server{
				Addr:         ":" + cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: rt.pipelineWriteTimeout(),
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				rt.logger.Info("HTTP server starting", map[string]interface{}{
					"address": srv.Addr,
					"feeds":   len(cfg.Feeds),
				})
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-sigCtx.Done():
			}

			rt.logger.Info("Shutting down server...", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				rt.logger.Error("Server forced to shutdown", map[string]interface{}{
					"error": err.Error(),
				})
				return err
			}

			rt.logger.Info("Server stopped", nil)
			return nil
		},
	}
}

// pipelineWriteTimeout leaves room for a waited load to finish
func (rt *runtime) pipelineWriteTimeout() time.Duration {
	return rt.cfg.Fetch.Timeout*time.Duration(rt.cfg.Fetch.Attempts) + 5*time.Second
}
