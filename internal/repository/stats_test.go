package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridplay/smart-tictactoe-backend/internal/repository/storage"
)

func newStatsRepo(t *testing.T) (context.Context, StatsRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewStatsRepository(sqliteStorage.Connection)
}

func TestStatsRepository_RecordResult(t *testing.T) {
	t.Run("Tallies accumulate per player", func(t *testing.T) {
		ctx, statsRepo := newStatsRepo(t)

		// Given: a player with two wins, a loss and a draw recorded
		require.NoError(t, statsRepo.RecordResult(ctx, "player-1", ResultWin))
		require.NoError(t, statsRepo.RecordResult(ctx, "player-1", ResultWin))
		require.NoError(t, statsRepo.RecordResult(ctx, "player-1", ResultLoss))
		require.NoError(t, statsRepo.RecordResult(ctx, "player-1", ResultDraw))

		// When: the stats are read back
		stats, err := statsRepo.GetByPlayerID(ctx, "player-1")

		// Then: every tally matches what was recorded
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Wins)
		assert.Equal(t, 1, stats.Losses)
		assert.Equal(t, 1, stats.Draws)
	})

	t.Run("Players are counted separately", func(t *testing.T) {
		ctx, statsRepo := newStatsRepo(t)

		require.NoError(t, statsRepo.RecordResult(ctx, "player-1", ResultWin))
		require.NoError(t, statsRepo.RecordResult(ctx, "player-2", ResultDraw))

		stats, err := statsRepo.GetByPlayerID(ctx, "player-2")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Wins)
		assert.Equal(t, 1, stats.Draws)
	})

	t.Run("Unknown result is rejected", func(t *testing.T) {
		ctx, statsRepo := newStatsRepo(t)

		err := statsRepo.RecordResult(ctx, "player-1", "forfeit")

		require.ErrorIs(t, err, ErrUnknownResult)
	})
}

func TestStatsRepository_GetByPlayerID_Unknown(t *testing.T) {
	ctx, statsRepo := newStatsRepo(t)

	// When: stats are requested for a player without finished games
	stats, err := statsRepo.GetByPlayerID(ctx, "newcomer")

	// Then: all-zero tallies are returned instead of an error
	require.NoError(t, err)
	assert.Equal(t, "newcomer", stats.PlayerID)
	assert.Zero(t, stats.Wins)
	assert.Zero(t, stats.Losses)
	assert.Zero(t, stats.Draws)
}
