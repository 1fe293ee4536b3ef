package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
)

// gameWithBoard builds an ongoing game in mid-position with the computer to
// move. Rows hold "X"/"O"/"" strings.
func gameWithBoard(rows [3][3]string) *entity.Game {
	game := entity.NewGame("123")
	game.Turn = engine.Computer

	for row := 0; row < engine.Size; row++ {
		for col := 0; col < engine.Size; col++ {
			game.Board.Cells[row][col] = engine.Mark(rows[row][col])
		}
	}

	return game
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Completes winning row", func(t *testing.T) {
		// Given: the computer can win by filling (0,2)
		game := gameWithBoard([3][3]string{
			{"O", "O", ""},
			{"X", "X", "O"},
			{"", "", ""},
		})
		botService := NewBotService()

		// When: the bot makes its turn
		err := botService.MakeTurn(game)

		// Then: it takes the winning cell and the game is finished
		require.NoError(t, err)
		assert.Equal(t, engine.Computer, game.Board.At(engine.Move{Row: 0, Col: 2}))
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, string(engine.Computer), game.Winner)
	})

	t.Run("Blocks human win", func(t *testing.T) {
		// Given: the human threatens the top row
		game := gameWithBoard([3][3]string{
			{"X", "X", ""},
			{"O", "", ""},
			{"", "", ""},
		})
		botService := NewBotService()

		// When: the bot makes its turn
		err := botService.MakeTurn(game)

		// Then: the threat at (0,2) is blocked and the game goes on
		require.NoError(t, err)
		assert.Equal(t, engine.Computer, game.Board.At(engine.Move{Row: 0, Col: 2}))
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, engine.Human, game.Turn)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a drawn, full board
		game := gameWithBoard([3][3]string{
			{"X", "O", "X"},
			{"O", "X", "O"},
			{"O", "X", "O"},
		})
		botService := NewBotService()

		// When: the bot is asked to move anyway
		err := botService.MakeTurn(game)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
