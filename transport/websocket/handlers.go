package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/gridplay/smart-tictactoe-backend/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new player")
	}

	if playerID == "" {
		log.Info("registered new player", "playerID", player.ID)
	} else {
		log.Info("player connected", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, Payload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := that.unmarshalPlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	game, err := that.gameUseCase.GetOrCreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get or create game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to get or create game")
	}

	return that.sendMessage(conn, msg.Action, Payload{Player: game.Player, Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := that.unmarshalPlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	if payloadReq.Move == nil {
		log.Error("move is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "move is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Move)

	switch {
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		// a rejected move is an expected client mistake, report it and
		// echo the unchanged game state
		return that.sendMessage(conn, msg.Action, Payload{Game: game, Error: err.Error()})
	case err != nil:
		log.Error("failed to make turn", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to make turn")
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: game})
}

func (that *Server) handleRestartGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleRestartGame")

	payloadReq, err := that.unmarshalPlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	game, err := that.gameUseCase.RestartGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to restart game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to restart game")
	}

	return that.sendMessage(conn, msg.Action, Payload{Player: game.Player, Game: game})
}

func (that *Server) handleGameStats(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameStats")

	payloadReq, err := that.unmarshalPlayerPayload(msg)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	stats, err := that.gameUseCase.GetStats(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get stats", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to get stats")
	}

	return that.sendMessage(conn, msg.Action, Payload{Stats: stats})
}

// unmarshalPlayerPayload parses the payload and requires a player ID in it.
func (that *Server) unmarshalPlayerPayload(msg *Message) (*Payload, error) {
	var payload Payload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Player == nil || payload.Player.ID == "" {
		return nil, errors.New("player is required")
	}

	return &payload, nil
}
