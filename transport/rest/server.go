package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
)

type statsUseCase interface {
	GetStats(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type Server struct {
	logger *slog.Logger
	stats  statsUseCase
}

func New(logger *slog.Logger, stats statsUseCase) *Server {
	return &Server{
		logger: logger,
		stats:  stats,
	}
}

// Start - starts the HTTP server.
func (that *Server) Start(port string) error {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.handlePing)
	router.Get("/stats/{playerID}", that.handleStats)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
