package random

import (
	"testing"

	"github.com/they4kman/remotesweep/game"
)

func TestNextPicksRevealableCell(t *testing.T) {
	session := game.Initial()
	session.ID = game.Active(3)
	session.Phase = game.PhasePlaying
	for row := range session.Board {
		for col := range session.Board[row] {
			session.Board[row][col] = game.CountCell(1)
		}
	}
	session.Board[5][2] = game.NewCell(game.Blank)
	session.Board[6][6] = game.NewCell(game.Flagged)

	director := New(1)
	for i := 0; i < 10; i++ {
		action, ok := director.Next(session)
		if !ok {
			t.Fatal("no action for a board with a blank cell")
		}
		if action.Kind != game.ActionReveal || action.Row != 5 || action.Col != 2 {
			t.Fatalf("action = %+v", action)
		}
	}
}

func TestNextWithoutLegalMoves(t *testing.T) {
	director := New(1)

	if _, ok := director.Next(game.Initial()); ok {
		t.Error("director acted without a game")
	}

	lost := game.Initial()
	lost.ID = game.Active(1)
	lost.Phase = game.PhaseLost
	if _, ok := director.Next(lost); ok {
		t.Error("director acted on a finished game")
	}
}
