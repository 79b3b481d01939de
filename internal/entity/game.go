package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Game holds one hotseat session: both players share the same screen and
// connection, so the entity carries no per-player identity beyond the marks.
type Game struct {
	ID     string    `json:"id"`
	Board  [9]string `json:"board"`
	Turn   string    `json:"player_turn"`
	Winner string    `json:"winner,omitempty"`
	Status string    `json:"status"`
	Line   *[3]int   `json:"line,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// Reset - returns the session to its starting state. Valid from any state.
func (that *Game) Reset() {
	that.Board = [9]string{}
	that.Turn = PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
	that.Line = nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.Winner == PlayerTie
}
