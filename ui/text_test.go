package ui

import (
	"strings"
	"testing"

	"github.com/they4kman/remotesweep/game"
)

func TestWriteBoard(t *testing.T) {
	session := snapshot(1, game.PhaseLost)
	session.Board[0][0] = game.CountCell(2)
	session.Board[0][1] = game.NewCell(game.EmptyRevealed)
	session.Board[0][2] = game.NewCell(game.MineTriggered)
	session.Board[0][3] = game.ParseCell("%")

	var out strings.Builder
	if err := WriteBoard(&out, session, game.ASCIIGlyphs); err != nil {
		t.Fatalf("WriteBoard: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if lines[0] != "Game lost" || lines[1] != "Mines: 10" {
		t.Errorf("header = %q", lines[:2])
	}
	if !strings.HasPrefix(lines[3], " 0: 2  .  *  ?  -  ") {
		t.Errorf("row 0 = %q", lines[3])
	}
	if len(lines) != 3+8+1 {
		t.Errorf("got %d lines", len(lines))
	}
}
