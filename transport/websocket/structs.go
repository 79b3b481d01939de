package websocket

import "github.com/rocketscienceinc/hotseat-tictactoe/internal/entity"

const (
	actionConnect = "connect"
	actionMove    = "game:move"
	actionReset   = "game:reset"
	actionState   = "game:state"
)

// Message represents an inbound WebSocket message with an action type and a
// payload. Payloads arrive as loose maps and are decoded per action.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

type ConnectPayload struct {
	GameID string `mapstructure:"game_id"`
}

type MovePayload struct {
	Cell int `mapstructure:"cell"`
}

// Response is pushed back to the client; exactly one per inbound action.
type Response struct {
	Action  string       `json:"action"`
	Payload *GamePayload `json:"payload,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type GamePayload struct {
	Game *entity.Game `json:"game"`
}
