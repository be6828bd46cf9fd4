package main

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/fhchess-backend/internal/model"
	"github.com/fatih/color"
)

var (
	lightCell = color.New(color.BgHiWhite, color.FgBlack)
	darkCell  = color.New(color.BgGreen, color.FgBlack)
	label     = color.New(color.Bold)
)

// draw renders the board from a client state, rank 8 at the top.
func draw(state model.ClientState) string {
	var b strings.Builder
	if state.GameState == model.StatusInProgress {
		fmt.Fprintf(&b, "%s to move\n\n", state.ToMove)
	} else {
		fmt.Fprintf(&b, "%s\n\n", state.GameState)
	}
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(label.Sprintf(" %d ", rank+1))
		for file := 0; file < 8; file++ {
			sq := model.Square{File: file, Rank: rank}
			glyph := " "
			if p, ok := model.PieceFromSymbol(state.Board[sq.Notation()]); ok {
				glyph = p.Glyph()
			}
			cell := lightCell
			if (file+rank)%2 == 0 {
				cell = darkCell
			}
			b.WriteString(cell.Sprintf(" %s ", glyph))
		}
		b.WriteString("\n")
	}
	b.WriteString(label.Sprint("    a  b  c  d  e  f  g  h "))
	b.WriteString("\n")
	return b.String()
}
