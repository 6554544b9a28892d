package random

import (
	"math/rand"

	"github.com/they4kman/remotesweep/game"
)

// Director plays by revealing a random cell the gate permits. It reads
// only the session the service returned; it never infers mines.
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Next(session game.Session) (game.Action, bool) {
	var candidates []game.Coord
	for row := range session.Board {
		for col := range session.Board[row] {
			if game.CanReveal(session, row, col) {
				candidates = append(candidates, game.Coord{Row: row, Col: col})
			}
		}
	}
	if len(candidates) == 0 {
		return game.Action{}, false
	}

	director.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	choice := candidates[0]
	return game.Reveal(choice.Row, choice.Col), true
}
