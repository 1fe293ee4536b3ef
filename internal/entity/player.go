package entity

// Player is the session identity on the human side of the board.
type Player struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}

// PlayerStats are the durable per-player result tallies. Only aggregates
// are kept, individual finished games are not stored.
type PlayerStats struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}
