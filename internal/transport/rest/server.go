package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

type statsProvider interface {
	Stats(ctx context.Context) (map[string]entity.Score, error)
}

type Server struct {
	logger *slog.Logger
	stats  statsProvider
}

func New(logger *slog.Logger, stats statsProvider) *Server {
	return &Server{
		logger: logger,
		stats:  stats,
	}
}

// Start - starts the HTTP server and blocks until it fails or ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.handlePing)
	router.Get("/stats", that.handleStats)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down http server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
