package ui

import "github.com/they4kman/remotesweep/game"

const (
	cellWidth    = 3
	headerHeight = 3
	marginLeft   = 4
)

// Layout maps between screen positions and board coordinates.
type Layout struct {
	BoardSize int
}

// CellOrigin is the screen position of the left edge of a cell.
func (layout Layout) CellOrigin(coord game.Coord) (x, y int) {
	return marginLeft + coord.Col*cellWidth, headerHeight + coord.Row
}

func (layout Layout) ScreenToCell(x, y int) (game.Coord, bool) {
	if x < marginLeft || y < headerHeight {
		return game.Coord{}, false
	}
	coord := game.Coord{
		Row: y - headerHeight,
		Col: (x - marginLeft) / cellWidth,
	}
	if coord.Row >= layout.BoardSize || coord.Col >= layout.BoardSize {
		return game.Coord{}, false
	}
	return coord, true
}

// FooterTop is the first screen row below the board.
func (layout Layout) FooterTop() int {
	return headerHeight + layout.BoardSize + 1
}

func (layout Layout) Width() int {
	return marginLeft + layout.BoardSize*cellWidth
}
