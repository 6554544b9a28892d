package game

import (
	"strings"

	"gopkg.in/yaml.v2"
)

// SessionSnapshot is the YAML form of a session, used for debug dumps.
type SessionSnapshot struct {
	ID         string `yaml:"id"`
	Difficulty string `yaml:"difficulty"`
	State      string `yaml:"state"`
	Mines      *int   `yaml:"mines"`
	// Board holds one line per row, each cell as its wire code
	SerializedBoard string `yaml:"board,flow"`
}

func NewSessionSnapshot(session Session) *SessionSnapshot {
	return &SessionSnapshot{
		ID:              session.ID.String(),
		Difficulty:      session.Difficulty.String(),
		State:           session.Phase.String(),
		Mines:           session.MinesRemaining,
		SerializedBoard: serializeBoard(session.Board),
	}
}

func (snapshot *SessionSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*SessionSnapshot, error) {
	var snapshot SessionSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Board parses the serialized rows back into cells.
func (snapshot *SessionSnapshot) Board() Board {
	if snapshot.SerializedBoard == "" {
		return Board{}
	}
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	board := make(Board, len(rows))
	for y, row := range rows {
		board[y] = make([]Cell, 0, len(row))
		for _, c := range row {
			board[y] = append(board[y], ParseCell(string(c)))
		}
	}
	return board
}

func serializeBoard(board Board) string {
	rows := make([]string, len(board))
	for y, row := range board {
		var b strings.Builder
		for _, cell := range row {
			code := cell.Code()
			if len(code) != 1 {
				code = "?"
			}
			b.WriteString(code)
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
