package ui

import (
	"testing"

	"github.com/they4kman/remotesweep/game"
)

func TestLayoutRoundTrip(t *testing.T) {
	layout := Layout{BoardSize: 8}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			coord := game.Coord{Row: row, Col: col}
			x, y := layout.CellOrigin(coord)
			for dx := 0; dx < cellWidth; dx++ {
				got, ok := layout.ScreenToCell(x+dx, y)
				if !ok || got != coord {
					t.Fatalf("ScreenToCell(%d, %d) = %v, %v, want %v", x+dx, y, got, ok, coord)
				}
			}
		}
	}
}

func TestLayoutOutsideBoard(t *testing.T) {
	layout := Layout{BoardSize: 8}
	for _, pos := range [][2]int{{0, 0}, {marginLeft - 1, headerHeight}, {marginLeft, headerHeight - 1}, {layout.Width(), headerHeight}, {marginLeft, headerHeight + 8}} {
		if coord, ok := layout.ScreenToCell(pos[0], pos[1]); ok {
			t.Errorf("ScreenToCell%v = %v inside the board", pos, coord)
		}
	}
}
