package game

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Cell is one board position as issued by the game service.
type Cell struct {
	kind CellKind
	// raw holds the offending code for Unknown cells
	raw string
}

func NewCell(kind CellKind) Cell {
	return Cell{kind: kind}
}

// CountCell returns the revealed cell with n adjacent mines. The service
// sends "_" for zero, so any n outside 1..8 is Unknown.
func CountCell(n int) Cell {
	if n < 1 || n > 8 {
		return Cell{kind: Unknown, raw: strconv.Itoa(n)}
	}
	return Cell{kind: Count1 + CellKind(n-1)}
}

func (cell Cell) Kind() CellKind {
	return cell.kind
}

// Count returns the adjacent mine count of a numbered cell.
func (cell Cell) Count() (int, bool) {
	if cell.kind >= Count1 && cell.kind <= Count8 {
		return int(cell.kind-Count1) + 1, true
	}
	return 0, false
}

// IsHidden is true for cells the player has not revealed.
func (cell Cell) IsHidden() bool {
	return cell.kind == Blank || cell.kind == Flagged
}

func (cell Cell) isEndOfGameMine() bool {
	return cell.kind == MineTriggered || cell.kind == MineShown
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%q)", cell.Code())
}

// Code returns the wire code of the cell.
func (cell Cell) Code() string {
	if n, ok := cell.Count(); ok {
		return strconv.Itoa(n)
	}

	switch cell.kind {
	case Blank:
		return codeBlank
	case EmptyRevealed:
		return codeEmptyRevealed
	case Flagged:
		return codeFlagged
	case MineTriggered:
		return codeMineTriggered
	case MineShown:
		return codeMineShown
	default:
		return cell.raw
	}
}

// ParseCell maps a wire code onto the closed set. Codes outside it yield an
// Unknown cell rather than an error so a single bad position cannot discard
// the whole snapshot.
func ParseCell(code string) Cell {
	switch code {
	case codeBlank:
		return Cell{kind: Blank}
	case codeEmptyRevealed:
		return Cell{kind: EmptyRevealed}
	case codeFlagged:
		return Cell{kind: Flagged}
	case codeMineTriggered:
		return Cell{kind: MineTriggered}
	case codeMineShown:
		return Cell{kind: MineShown}
	}

	if len(code) == 1 && code[0] >= '1' && code[0] <= '8' {
		return CountCell(int(code[0] - '0'))
	}
	return Cell{kind: Unknown, raw: code}
}

func (cell Cell) MarshalJSON() ([]byte, error) {
	if n, ok := cell.Count(); ok {
		return json.Marshal(n)
	}
	return json.Marshal(cell.Code())
}

// UnmarshalJSON accepts the service's mixed encoding: strings for symbols,
// numbers for counts. Any other JSON value decodes to an Unknown cell.
func (cell *Cell) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		*cell = ParseCell(code)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*cell = Cell{kind: Unknown, raw: string(data)}
		return nil
	}
	if i, err := n.Int64(); err == nil && i >= 1 && i <= 8 {
		*cell = CountCell(int(i))
	} else {
		*cell = Cell{kind: Unknown, raw: n.String()}
	}
	return nil
}
