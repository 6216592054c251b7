package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/erazemk/boxtrack/internal/api"
	"github.com/erazemk/boxtrack/internal/logger"
	"github.com/erazemk/boxtrack/internal/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr, baseURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			if baseURL != "" {
				a.cfg.BaseURL = baseURL
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from BOXTRACK_ADDR or :8080)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public URL encoded in QR codes (default from BOXTRACK_BASE_URL)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	log, closeLog, err := logger.New(a.cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	st, closeDB, err := a.openStore(ctx)
	if err != nil {
		log.Error("failed to open database", zap.Error(err))
		return err
	}
	defer closeDB()

	log.Info("database ready",
		zap.String("driver", a.cfg.DBDriver),
		zap.String("dialect", st.Dialect.Name))

	// Load session secret from database (auto-generated on first run).
	secret, err := st.GetSessionSecret(ctx)
	if err != nil {
		log.Error("failed to get session secret", zap.Error(err))
		return err
	}

	// Set up routers.
	apiRouter := api.NewRouter(st, secret, a.cfg.SessionTTL, log.Named("api"))
	webRouter, err := web.NewRouter(web.Options{
		Store:      st,
		Logger:     log.Named("web"),
		Secret:     secret,
		CookieName: a.cfg.CookieName,
		SessionTTL: a.cfg.SessionTTL,
		BaseURL:    a.cfg.BaseURL,
	})
	if err != nil {
		log.Error("failed to set up web router", zap.Error(err))
		return err
	}

	// Combine: API routes take priority, web routes handle the rest.
	r := mux.NewRouter()
	r.PathPrefix("/api/").Handler(apiRouter)
	r.PathPrefix("/").Handler(webRouter)

	server := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           web.LoggingMiddleware(log)(r),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", zap.String("addr", a.cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
		return err
	}

	log.Info("server stopped, closing database")
	return nil
}
