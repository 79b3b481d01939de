// Hotseat terminal client: both players share the keyboard, the board is
// rendered with ANSI colors and the winning line is highlighted.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/entity"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/pkg"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/tictactoe"
)

func main() {
	output := termenv.NewOutput(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	game := entity.NewGame(pkg.GenerateGameID())

	for {
		render(output, game)

		if game.IsFinished() {
			fmt.Print("play again? [y/n]: ")
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "y" {
				return
			}
			game.Reset()
			continue
		}

		fmt.Printf("%s to move [0-8], r to reset, q to quit: ", game.Turn)
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "q":
			return
		case "r":
			game.Reset()
		default:
			cell, err := strconv.Atoi(input)
			if err != nil {
				continue
			}
			// invalid moves are silently ignored, same as a dead click in the UI
			_ = tictactoe.MakeTurn(game, cell)
		}
	}
}

func render(output *termenv.Output, game *entity.Game) {
	fmt.Println()
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, renderCell(output, game, row*3+col))
		}
		fmt.Println(" " + strings.Join(cells, " | "))
		if row < 2 {
			fmt.Println("---+---+---")
		}
	}
	fmt.Println()

	if game.IsFinished() {
		if game.IsDraw() {
			fmt.Println(output.String("draw").Bold())
		} else {
			fmt.Println(output.String(game.Winner + " wins").Bold())
		}
	}
}

func renderCell(output *termenv.Output, game *entity.Game, index int) string {
	mark := game.Board[index]
	if mark == entity.EmptyCell {
		return output.String(strconv.Itoa(index)).Faint().String()
	}

	style := output.String(mark)
	switch mark {
	case entity.PlayerX:
		style = style.Foreground(output.Color("1"))
	case entity.PlayerO:
		style = style.Foreground(output.Color("4"))
	}

	if line := game.Line; line != nil {
		for _, cell := range line {
			if cell == index {
				style = style.Bold().Underline()
			}
		}
	}

	return style.String()
}
