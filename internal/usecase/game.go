package usecase

import (
	"context"
	"fmt"

	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
	"github.com/gridplay/smart-tictactoe-backend/internal/pkg"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error)

	GetStats(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type playerService interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error)
}

type statsService interface {
	GetByPlayerID(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type gameUseCase struct {
	playerService   playerService
	gamePlayService gamePlayService
	statsService    statsService
}

func NewGameUseCase(playerService playerService, gamePlayService gamePlayService, statsService statsService) GameUseCase {
	return &gameUseCase{
		playerService:   playerService,
		gamePlayService: gamePlayService,
		statsService:    statsService,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player := &entity.Player{ID: pkg.GenerateNewSessionID()}
		if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetOrCreateGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.RestartGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, move)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetStats(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	stats, err := that.statsService.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return stats, nil
}
