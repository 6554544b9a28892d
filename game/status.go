package game

import "strconv"

// Status is the header line for a phase.
func Status(phase Phase) string {
	switch phase {
	case PhaseNew:
		return "New game started."
	case PhasePlaying:
		return "Minesweeping in progress."
	case PhaseWon:
		return "Game won"
	case PhaseLost:
		return "Game lost"
	default:
		return "Minesweeper"
	}
}

// MinesLabel renders the mines counter; the count is blank before any game.
func MinesLabel(session Session) string {
	if mines, ok := session.Mines(); ok {
		return "Mines: " + strconv.Itoa(mines)
	}
	return "Mines: "
}
