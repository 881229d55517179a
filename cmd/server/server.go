package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsDrac/nft-web/internal/dependency"
	"github.com/itsDrac/nft-web/pkg/config"
)

type Server struct {
	HTTPServer   *http.Server
	Dependencies *dependency.Dependencies
}

func New() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Config] failed to load -> ", "error", err.Error())
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dependencies, err := dependency.NewDependencies(ctx, cfg)
	if err != nil {
		slog.Error("[Dependency] failed to initialize -> ", "error", err.Error())
		return nil, fmt.Errorf("initialize dependencies: %w", err)
	}

	serv := &Server{
		Dependencies: dependencies,
	}

	// builds router
	mux := serv.routes()
	serv.HTTPServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return serv, nil
}

func (s *Server) Run() error {
	slog.Info("[SERVER] running -> ", "address", s.HTTPServer.Addr, "backend", s.Dependencies.Config.APIURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	// Run Server in the background
	go func() {
		if err := s.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[SERVER] failed to serve -> ", "error", err.Error())
			serveErr <- err
		}
	}()

	// Listen for the interrupt signal
	select {
	case <-ctx.Done():
		slog.Info("[SERVER] shutdown signal received")
	case err := <-serveErr:
		return err
	}

	// create shutdown context with 30 - sec timeout
	shutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop http server
	if err := s.HTTPServer.Shutdown(shutCtx); err != nil {
		slog.Error("[SERVER] shutdown failed -> ", "error", err.Error())
		return err
	}

	slog.Info("[SERVER] shutdown complete.")
	return nil
}
