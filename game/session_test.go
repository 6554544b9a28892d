package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func blankRows(size int) string {
	row := "[" + strings.TrimSuffix(strings.Repeat(`" ",`, size), ",") + "]"
	return "[" + strings.TrimSuffix(strings.Repeat(row+",", size), ",") + "]"
}

func TestInitial(t *testing.T) {
	session := Initial()

	if session.ID.IsActive() {
		t.Error("initial session has a game id")
	}
	if session.Phase != PhaseAbsent || session.Difficulty.IsSet() {
		t.Errorf("initial phase/difficulty = %s/%s", session.Phase, session.Difficulty)
	}
	if _, ok := session.Mines(); ok {
		t.Error("initial session has a mines count")
	}
	if session.Board.Size() != DefaultBoardSize {
		t.Fatalf("board size = %d", session.Board.Size())
	}
	for coord := range session.Board.Cells() {
		if cell, _ := session.Board.CellAt(coord.Row, coord.Col); cell.Kind() != Blank {
			t.Errorf("cell %v = %s", coord, cell)
		}
	}
}

func TestReplaceIsIdempotent(t *testing.T) {
	snapshot := activeSession(PhasePlaying)
	snapshot.Board[2][3] = CountCell(3)

	once := Replace(Initial(), snapshot)
	twice := Replace(once, snapshot)

	if !once.Equal(snapshot) {
		t.Error("Replace did not return the snapshot")
	}
	if !twice.Equal(once) {
		t.Error("applying the same snapshot twice changed the session")
	}
}

func TestSessionUnmarshal(t *testing.T) {
	data := `{"id": 42, "board": ` + blankRows(8) + `, "state": "new", "mines": 10, "difficulty": 0}`

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if id, ok := session.ID.Value(); !ok || id != 42 {
		t.Errorf("id = %v", session.ID)
	}
	if session.Phase != PhaseNew {
		t.Errorf("phase = %s", session.Phase)
	}
	if session.Difficulty != Easy {
		t.Errorf("difficulty = %s", session.Difficulty)
	}
	if mines, _ := session.Mines(); mines != 10 {
		t.Errorf("mines = %d", mines)
	}
	if !CanReveal(session, 0, 0) {
		t.Error("CanReveal(0, 0) = false on a new game")
	}
}

func TestSessionUnmarshalNullFields(t *testing.T) {
	data := `{"id": null, "board": ` + blankRows(8) + `, "state": null, "mines": null, "difficulty": null}`

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !session.Equal(Initial()) {
		t.Errorf("null snapshot should equal the initial session, got %+v", session)
	}
}

func TestSessionUnmarshalUnknownState(t *testing.T) {
	data := `{"id": 1, "board": [], "state": "paused"}`

	var session Session
	err := json.Unmarshal([]byte(data), &session)
	if !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("error = %v, want ErrUnknownPhase", err)
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	session := activeSession(PhaseLost)
	session.Board[4][4] = NewCell(MineTriggered)
	session.Board[0][7] = NewCell(MineShown)

	out, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Session
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(session) {
		t.Errorf("round trip mismatch:\n%s", out)
	}
}

func TestSessionClone(t *testing.T) {
	session := activeSession(PhasePlaying)
	clone := session.Clone()

	clone.Board[0][0] = NewCell(Flagged)
	*clone.MinesRemaining = 9

	if session.Board[0][0].Kind() != Blank {
		t.Error("clone shares its board")
	}
	if mines, _ := session.Mines(); mines != 10 {
		t.Error("clone shares its mines counter")
	}
}

func TestScenarioRevealLosesGame(t *testing.T) {
	session := activeSession(PhasePlaying)

	lost := activeSession(PhaseLost)
	lost.Board[4][4] = NewCell(MineTriggered)
	session = Replace(session, lost)

	if got := Status(session.Phase); got != "Game lost" {
		t.Errorf("Status = %q", got)
	}
	for _, coord := range everyCoord(session.Board.Size()) {
		if CanReveal(session, coord.Row, coord.Col) {
			t.Fatalf("CanReveal%v = true after loss", coord)
		}
	}
}
