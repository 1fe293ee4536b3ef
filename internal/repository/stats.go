package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
)

// Game results accepted by RecordResult.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"
)

var ErrUnknownResult = errors.New("unknown game result")

type StatsRepository interface {
	RecordResult(ctx context.Context, playerID, result string) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type dbStats struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) StatsRepository {
	return &dbStats{
		db: db,
	}
}

func (that *dbStats) RecordResult(ctx context.Context, playerID, result string) error {
	var column string

	switch result {
	case ResultWin:
		column = "wins"
	case ResultLoss:
		column = "losses"
	case ResultDraw:
		column = "draws"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}

	query := fmt.Sprintf(`INSERT INTO player_stats (player_id, %[1]s) VALUES (?, 1)
		ON CONFLICT(player_id) DO UPDATE SET %[1]s = %[1]s + 1`, column)

	if _, err := that.db.ExecContext(ctx, query, playerID); err != nil {
		return fmt.Errorf("failed to record %s for player %s: %w", result, playerID, err)
	}

	return nil
}

func (that *dbStats) GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	query := `SELECT wins, losses, draws FROM player_stats WHERE player_id = ?`

	stats := &entity.PlayerStats{PlayerID: playerID}

	err := that.db.QueryRowContext(ctx, query, playerID).Scan(&stats.Wins, &stats.Losses, &stats.Draws)
	if errors.Is(err, sql.ErrNoRows) {
		// a player without finished games has all-zero tallies
		return stats, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get stats by player ID: %w", err)
	}

	return stats, nil
}
