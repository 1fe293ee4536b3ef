package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridplay/smart-tictactoe-backend/internal/apperror"
	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
)

func TestNewGame(t *testing.T) {
	// Given: a new game
	game := NewGame("123")

	// Then: the board is empty, the human moves first and the game runs
	expectedGame := &Game{
		ID:     "123",
		Board:  engine.NewBoard(),
		Turn:   engine.Human,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: the human plays the center
		err := game.MakeTurn(engine.Human, engine.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to the computer
		assert.Equal(t, engine.Human, game.Board.At(engine.Move{Row: 1, Col: 1}))
		assert.Equal(t, engine.Computer, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the human took the corner
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(engine.Human, engine.Move{Row: 0, Col: 0}))

		// When: the computer tries the same cell
		err := game.MakeTurn(engine.Computer, engine.Move{Row: 0, Col: 0})

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, engine.Human, game.Board.At(engine.Move{Row: 0, Col: 0}))
		assert.Equal(t, engine.Computer, game.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game with the human to move
		game := NewGame("123")

		// When: the computer tries to move first
		err := game.MakeTurn(engine.Computer, engine.Move{Row: 0, Col: 1})

		// Then: ErrNotYourTurn is returned and nothing was placed
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, engine.Empty, game.Board.At(engine.Move{Row: 0, Col: 1}))
	})

	t.Run("Error on out of range coordinate", func(t *testing.T) {
		game := NewGame("123")

		err := game.MakeTurn(engine.Human, engine.Move{Row: 3, Col: 0})
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)

		err = game.MakeTurn(engine.Human, engine.Move{Row: 0, Col: -1})
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on move after game finished", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("123")
		game.Status = StatusFinished
		game.Winner = string(engine.Human)

		// When: another move is attempted
		err := game.MakeTurn(engine.Human, engine.Move{Row: 2, Col: 2})

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: the human holds two cells of the top row
		game := NewGame("123")
		moves := []struct {
			mark engine.Mark
			move engine.Move
		}{
			{engine.Human, engine.Move{Row: 0, Col: 0}},
			{engine.Computer, engine.Move{Row: 1, Col: 0}},
			{engine.Human, engine.Move{Row: 0, Col: 1}},
			{engine.Computer, engine.Move{Row: 1, Col: 1}},
		}
		for _, turn := range moves {
			require.NoError(t, game.MakeTurn(turn.mark, turn.move))
		}

		// When: the human completes the row
		err := game.MakeTurn(engine.Human, engine.Move{Row: 0, Col: 2})

		// Then: the game is finished with the human as winner
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, string(engine.Human), game.Winner)
		assert.Equal(t, engine.Empty, game.Turn)
	})

	t.Run("Filling the board without winner is a tie", func(t *testing.T) {
		// Given: a played-out game heading for a draw
		game := NewGame("123")
		moves := []struct {
			mark engine.Mark
			move engine.Move
		}{
			{engine.Human, engine.Move{Row: 0, Col: 0}},
			{engine.Computer, engine.Move{Row: 1, Col: 1}},
			{engine.Human, engine.Move{Row: 2, Col: 2}},
			{engine.Computer, engine.Move{Row: 0, Col: 1}},
			{engine.Human, engine.Move{Row: 2, Col: 1}},
			{engine.Computer, engine.Move{Row: 2, Col: 0}},
			{engine.Human, engine.Move{Row: 0, Col: 2}},
			{engine.Computer, engine.Move{Row: 1, Col: 2}},
		}
		for _, turn := range moves {
			require.NoError(t, game.MakeTurn(turn.mark, turn.move))
		}

		// When: the last empty cell is filled
		err := game.MakeTurn(engine.Human, engine.Move{Row: 1, Col: 0})

		// Then: the game ends in a tie
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, WinnerTie, game.Winner)
	})
}
