package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridplay/smart-tictactoe-backend/internal/apperror"
	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
)

// GamePlayService drives a full human-vs-computer session: it applies the
// human's move, lets the bot answer while the game is still running, and
// keeps the stored game and the player's tallies in sync.
type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
	statsService  StatsService
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	statsService StatsService,
) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		statsService:  statsService,
	}
}

// MakeTurn applies the human move at move. If the game is still running
// afterwards the bot answers immediately, so the returned game is always
// back at the human's turn or finished.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(engine.Human, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		if err = that.statsService.RecordGameResult(ctx, game); err != nil {
			that.logger.Error("failed to record game result", "gameID", game.ID, "error", err)
		}
	}

	return game, nil
}

// GetOrCreateGame returns the player's current game, creating a fresh one
// when the player has none yet.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return that.createGame(ctx, player)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// RestartGame discards the player's current game, whatever its state, and
// starts over from an empty board. The recorded tallies are kept.
func (that *gamePlayService) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "RestartGame", "playerID", playerID)

	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		if err = that.gameService.DeleteGame(ctx, player.GameID); err != nil {
			log.Error("failed to delete previous game", "gameID", player.GameID, "error", err)
		}
		player.GameID = ""
	}

	return that.createGame(ctx, player)
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}
