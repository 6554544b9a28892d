package game

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/they4kman/remotesweep/util/collections"
)

// Coord is a zero-based board position.
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Board is a square grid of cells, indexed [row][col]. Its size comes from
// the snapshot that produced it.
type Board [][]Cell

func NewBlankBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Cell, size)
		for col := range board[row] {
			board[row][col] = NewCell(Blank)
		}
	}
	return board
}

func (board Board) Size() int {
	return len(board)
}

func (board Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(board) && col >= 0 && col < len(board[row])
}

func (board Board) CellAt(row, col int) (Cell, bool) {
	if !board.InBounds(row, col) {
		return Cell{}, false
	}
	return board[row][col], true
}

// Cells yields every position in row-major order.
func (board Board) Cells() <-chan Coord {
	out := make(chan Coord)
	go func() {
		for row := range board {
			for col := range board[row] {
				out <- Coord{row, col}
			}
		}
		close(out)
	}()
	return out
}

func (board Board) Clone() Board {
	if board == nil {
		return nil
	}
	clone := make(Board, len(board))
	for row := range board {
		clone[row] = append([]Cell(nil), board[row]...)
	}
	return clone
}

func (board Board) Equal(other Board) bool {
	if len(board) != len(other) {
		return false
	}
	for row := range board {
		if len(board[row]) != len(other[row]) {
			return false
		}
		for col := range board[row] {
			if board[row][col] != other[row][col] {
				return false
			}
		}
	}
	return true
}

// Diff returns the positions whose cell differs between the two boards.
// Positions present in only one board count as changed.
func (board Board) Diff(other Board) collections.Set[Coord] {
	changed := make(collections.Set[Coord])
	rows := max(len(board), len(other))
	for row := 0; row < rows; row++ {
		var a, b []Cell
		if row < len(board) {
			a = board[row]
		}
		if row < len(other) {
			b = other[row]
		}
		for col := 0; col < max(len(a), len(b)); col++ {
			if col >= len(a) || col >= len(b) || a[col] != b[col] {
				changed.Add(Coord{row, col})
			}
		}
	}
	return changed
}

// Validate checks the structural and phase invariants of a snapshot board.
func (board Board) Validate(phase Phase) error {
	for row := range board {
		if len(board[row]) != len(board) {
			return errors.Errorf("board row %d has %d cells, want %d", row, len(board[row]), len(board))
		}
		if phase != PhasePlaying {
			continue
		}
		for col, cell := range board[row] {
			if cell.isEndOfGameMine() {
				return errors.Errorf("cell %v is %s while game is %s", Coord{row, col}, cell, phase)
			}
		}
	}
	return nil
}
