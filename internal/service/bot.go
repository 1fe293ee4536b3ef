package service

import (
	"errors"
	"fmt"

	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService plays the computer side of a game. The move is chosen by an
// exhaustive minimax search, so the bot never loses a game it did not
// already inherit lost.
type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	move, ok := engine.FindBestMove(game.Board)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(engine.Computer, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
