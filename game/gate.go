package game

type ActionKind int

const (
	ActionReveal ActionKind = iota
	ActionFlag
	ActionStart
)

func (kind ActionKind) String() string {
	switch kind {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionStart:
		return "start"
	default:
		return "unknown"
	}
}

// Action is a user request against the current session.
type Action struct {
	Kind       ActionKind
	Row, Col   int
	Difficulty Difficulty
}

func Reveal(row, col int) Action {
	return Action{Kind: ActionReveal, Row: row, Col: col}
}

func ToggleFlag(row, col int) Action {
	return Action{Kind: ActionFlag, Row: row, Col: col}
}

func StartGame(difficulty Difficulty) Action {
	return Action{Kind: ActionStart, Difficulty: difficulty}
}

// canPlay is shared by reveal and flag: a game exists and is undecided. An
// active id without a phase is a malformed snapshot and is not playable.
func canPlay(session Session) bool {
	if !session.ID.IsActive() {
		return false
	}
	return session.Phase == PhaseNew || session.Phase == PhasePlaying
}

// CanReveal permits a reveal only on a blank cell of an undecided game.
func CanReveal(session Session, row, col int) bool {
	if !canPlay(session) {
		return false
	}
	cell, ok := session.Board.CellAt(row, col)
	return ok && cell.Kind() == Blank
}

// CanFlag permits a flag toggle anywhere on the board of an undecided game.
// The service flips blank and flagged and refuses revealed cells.
func CanFlag(session Session, row, col int) bool {
	return canPlay(session) && session.Board.InBounds(row, col)
}

func CanStartGame() bool {
	return true
}

// Permit reports whether action may be dispatched against session.
func Permit(session Session, action Action) bool {
	switch action.Kind {
	case ActionReveal:
		return CanReveal(session, action.Row, action.Col)
	case ActionFlag:
		return CanFlag(session, action.Row, action.Col)
	case ActionStart:
		return CanStartGame()
	default:
		return false
	}
}
