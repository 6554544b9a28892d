package game

import "testing"

func TestBoardDiff(t *testing.T) {
	before := NewBlankBoard(3)
	after := before.Clone()
	after[0][1] = CountCell(2)
	after[2][2] = NewCell(Flagged)

	changed := before.Diff(after)
	if changed.Len() != 2 {
		t.Fatalf("changed = %v", changed)
	}
	for _, coord := range []Coord{{0, 1}, {2, 2}} {
		if !changed.Contains(coord) {
			t.Errorf("missing %v", coord)
		}
	}
}

func TestBoardDiffResize(t *testing.T) {
	changed := NewBlankBoard(2).Diff(NewBlankBoard(3))
	if changed.Len() != 5 {
		t.Errorf("resizing 2x2 to 3x3 changed %d cells, want 5", changed.Len())
	}
}

func TestBoardValidate(t *testing.T) {
	board := NewBlankBoard(4)
	board[1][2] = NewCell(MineShown)

	if err := board.Validate(PhasePlaying); err == nil {
		t.Error("mine shown while playing passed validation")
	}
	if err := board.Validate(PhaseLost); err != nil {
		t.Errorf("mine shown after loss: %v", err)
	}

	ragged := NewBlankBoard(4)
	ragged[3] = ragged[3][:2]
	if err := ragged.Validate(PhaseNew); err == nil {
		t.Error("ragged board passed validation")
	}
}

func TestBoardCellAt(t *testing.T) {
	board := NewBlankBoard(2)
	if _, ok := board.CellAt(2, 0); ok {
		t.Error("CellAt out of range returned ok")
	}
	if cell, ok := board.CellAt(1, 1); !ok || cell.Kind() != Blank {
		t.Errorf("CellAt(1, 1) = %v, %v", cell, ok)
	}
}
