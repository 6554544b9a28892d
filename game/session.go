package game

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// GameID is either NoGame or Active(id). The zero value is NoGame.
type GameID struct {
	id     int64
	active bool
}

func NoGame() GameID {
	return GameID{}
}

func Active(id int64) GameID {
	return GameID{id: id, active: true}
}

func (gameID GameID) IsActive() bool {
	return gameID.active
}

func (gameID GameID) Value() (int64, bool) {
	return gameID.id, gameID.active
}

func (gameID GameID) String() string {
	if !gameID.active {
		return "none"
	}
	return strconv.FormatInt(gameID.id, 10)
}

func (gameID GameID) MarshalJSON() ([]byte, error) {
	if !gameID.active {
		return []byte("null"), nil
	}
	return json.Marshal(gameID.id)
}

func (gameID *GameID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*gameID = NoGame()
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return errors.Wrap(err, "game id")
	}
	*gameID = Active(id)
	return nil
}

// Session mirrors one game as last confirmed by the service.
type Session struct {
	Board          Board
	ID             GameID
	Difficulty     Difficulty
	Phase          Phase
	MinesRemaining *int
}

// Initial is the session before any game has been started.
func Initial() Session {
	return Session{
		Board:      NewBlankBoard(DefaultBoardSize),
		ID:         NoGame(),
		Difficulty: DifficultyUnset,
		Phase:      PhaseAbsent,
	}
}

// Replace returns next as the new session. The service's snapshot is
// complete, so nothing from the previous session survives.
func Replace(_, next Session) Session {
	return next
}

func (session Session) Mines() (int, bool) {
	if session.MinesRemaining == nil {
		return 0, false
	}
	return *session.MinesRemaining, true
}

// Clone returns a copy sharing no memory with session.
func (session Session) Clone() Session {
	clone := session
	clone.Board = session.Board.Clone()
	if session.MinesRemaining != nil {
		mines := *session.MinesRemaining
		clone.MinesRemaining = &mines
	}
	return clone
}

func (session Session) Equal(other Session) bool {
	aMines, aOk := session.Mines()
	bMines, bOk := other.Mines()
	return session.ID == other.ID &&
		session.Difficulty == other.Difficulty &&
		session.Phase == other.Phase &&
		aOk == bOk && aMines == bMines &&
		session.Board.Equal(other.Board)
}

type wireSession struct {
	Board      Board   `json:"board"`
	ID         GameID  `json:"id"`
	Difficulty *int    `json:"difficulty"`
	State      *string `json:"state"`
	Mines      *int    `json:"mines"`
}

func (session Session) MarshalJSON() ([]byte, error) {
	wire := wireSession{
		Board: session.Board,
		ID:    session.ID,
		Mines: session.MinesRemaining,
	}
	if session.Difficulty.IsSet() {
		d := int(session.Difficulty)
		wire.Difficulty = &d
	}
	if session.Phase != PhaseAbsent {
		state := session.Phase.String()
		wire.State = &state
	}
	return json.Marshal(wire)
}

func (session *Session) UnmarshalJSON(data []byte) error {
	var wire wireSession
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	decoded := Session{
		Board:          wire.Board,
		ID:             wire.ID,
		Difficulty:     DifficultyUnset,
		Phase:          PhaseAbsent,
		MinesRemaining: wire.Mines,
	}
	if wire.Difficulty != nil {
		if d := Difficulty(*wire.Difficulty); d.IsSet() {
			decoded.Difficulty = d
		}
	}
	if wire.State != nil {
		phase, err := ParsePhase(*wire.State)
		if err != nil {
			return err
		}
		decoded.Phase = phase
	}

	*session = decoded
	return nil
}
