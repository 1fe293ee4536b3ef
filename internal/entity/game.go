package entity

import (
	"fmt"

	"github.com/gridplay/smart-tictactoe-backend/internal/apperror"
	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerTie = "-"
)

// Game represents one human-vs-computer session: the board, whose turn it
// is, and the outcome once the game is finished. The human always plays X
// and always moves first; the computer replies with O.
type Game struct {
	ID     string        `json:"id"`
	Board  *engine.Board `json:"board"`
	Turn   engine.Mark   `json:"player_turn"`
	Winner string        `json:"winner,omitempty"`
	Status string        `json:"status"`
	Player *Player       `json:"player,omitempty"`
}

// NewGame returns an ongoing game on an empty board with the human to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  engine.NewBoard(),
		Turn:   engine.Human,
		Status: StatusOngoing,
	}
}

// MakeTurn places mark at move after validating the caller contract: the
// game must still be running, the move in range, the turn correct and the
// target cell empty. On success the game status and turn are updated.
func (that *Game) MakeTurn(mark engine.Mark, move engine.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !move.InRange() {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.At(move) != engine.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board.Place(move, mark)
	that.updateState(mark)

	return nil
}

// updateState checks the terminal conditions after a placement and either
// finishes the game or passes the turn to the other side.
func (that *Game) updateState(mark engine.Mark) {
	switch {
	case that.Board.HasWon(mark):
		that.Winner = string(mark)
		that.Status = StatusFinished
		that.Turn = engine.Empty
	case that.Board.IsDraw():
		that.Winner = WinnerTie
		that.Status = StatusFinished
		that.Turn = engine.Empty
	default:
		that.Turn = toggleMark(mark)
	}
}

func toggleMark(currentMark engine.Mark) engine.Mark {
	if currentMark == engine.Human {
		return engine.Computer
	}

	return engine.Human
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
