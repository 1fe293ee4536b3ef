package service

import (
	"context"
	"fmt"

	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
	"github.com/gridplay/smart-tictactoe-backend/internal/repository"
)

type StatsService interface {
	RecordGameResult(ctx context.Context, game *entity.Game) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type statsRepo interface {
	RecordResult(ctx context.Context, playerID, result string) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

// RecordGameResult bumps the player's tally for a finished game. The result
// is recorded from the human's point of view.
func (that *statsService) RecordGameResult(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() || game.Player == nil {
		return nil
	}

	var result string

	switch game.Winner {
	case string(engine.Human):
		result = repository.ResultWin
	case string(engine.Computer):
		result = repository.ResultLoss
	default:
		result = repository.ResultDraw
	}

	if err := that.statsRepo.RecordResult(ctx, game.Player.ID, result); err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}

	return nil
}

func (that *statsService) GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	stats, err := that.statsRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
