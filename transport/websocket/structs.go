package websocket

import (
	"encoding/json"

	"github.com/gridplay/smart-tictactoe-backend/internal/engine"
	"github.com/gridplay/smart-tictactoe-backend/internal/entity"
)

// Message is a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the request and response bodies of every action.
type Payload struct {
	Player *entity.Player      `json:"player,omitempty"`
	Game   *entity.Game        `json:"game,omitempty"`
	Stats  *entity.PlayerStats `json:"stats,omitempty"`
	Move   *engine.Move        `json:"move,omitempty"`
	Error  string              `json:"error,omitempty"`
}
