package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell coordinate")
	ErrGameNotFound  = errors.New("game not found")
	ErrNoActiveGames = errors.New("no active games")
)
