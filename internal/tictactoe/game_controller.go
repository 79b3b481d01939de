package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/hotseat-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/entity"
)

// WinCombos lists the 8 winning lines: rows, columns, then diagonals. Evaluate
// checks them in this order and the first full line wins.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - derives the outcome from the board alone. It returns the winning
// mark and its line, entity.PlayerTie on a full board with no line, or an
// empty mark while the game continues.
func Evaluate(board [9]string) (string, *[3]int) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			line := combo
			return a, &line
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return entity.EmptyCell, nil
		}
	}

	return entity.PlayerTie, nil
}

// MakeTurn - places the current turn's mark on the given cell, then recomputes
// the outcome. The game state is untouched when an error is returned.
func MakeTurn(gameInstance *entity.Game, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = gameInstance.Turn
	updateGameStatus(gameInstance)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - recomputes the derived outcome after a move.
func updateGameStatus(gameInstance *entity.Game) {
	switch winner, line := Evaluate(gameInstance.Board); winner {
	case entity.PlayerX, entity.PlayerO:
		gameInstance.Winner = winner
		gameInstance.Line = line
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	case entity.PlayerTie:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	default:
		gameInstance.Turn = toggleMark(gameInstance.Turn)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
