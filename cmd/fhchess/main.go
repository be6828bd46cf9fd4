package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/benbeisheim/fhchess-backend/internal/model"
)

func main() {
	game := model.NewGame("local")
	game.SetOnUpdate(func(state model.ClientState) {
		fmt.Println()
		fmt.Print(draw(state))
	})

	fmt.Println("Falcon-Hunter Chess")
	fmt.Println()
	fmt.Println("Enter origin and destination squares to move. To place a falcon or")
	fmt.Println("hunter, enter 'F'/'H' for white or 'f'/'h' for black as the origin")
	fmt.Println("and the target square as the destination. Enter 'e' to exit.")
	fmt.Println()
	fmt.Print(draw(game.GetState()))

	scanner := bufio.NewScanner(os.Stdin)
	for game.Status() == model.StatusInProgress {
		origin, ok := prompt(scanner, "> Origin: ")
		if !ok || origin == "e" {
			return
		}
		destination, ok := prompt(scanner, "> Destination: ")
		if !ok || destination == "e" {
			return
		}

		var accepted bool
		switch origin {
		case "F", "H", "f", "h":
			if sq, ok := model.ParseSquare(destination); ok {
				accepted = game.PlaceFairyPiece(origin, sq)
			}
		default:
			from, okFrom := model.ParseSquare(origin)
			to, okTo := model.ParseSquare(destination)
			if okFrom && okTo {
				accepted = game.MakeMove(from, to)
			}
		}
		if !accepted {
			fmt.Println("Invalid move, try again.")
		}
	}

	fmt.Println(game.Status())
}

func prompt(scanner *bufio.Scanner, text string) (string, bool) {
	fmt.Print(text)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
