package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type CellKind int

const (
	Unknown CellKind = iota - 1
	Blank
	EmptyRevealed
	Count1
	Count2
	Count3
	Count4
	Count5
	Count6
	Count7
	Count8
	Flagged
	MineTriggered
	MineShown
)

// CellKinds lists every member of the closed set, Unknown excluded.
var CellKinds = []CellKind{
	Blank,
	EmptyRevealed,
	Count1,
	Count2,
	Count3,
	Count4,
	Count5,
	Count6,
	Count7,
	Count8,
	Flagged,
	MineTriggered,
	MineShown,
}

func (kind CellKind) String() string {
	switch {
	case kind == Blank:
		return "blank"
	case kind == EmptyRevealed:
		return "empty"
	case kind >= Count1 && kind <= Count8:
		return "count(" + strconv.Itoa(int(kind-Count1)+1) + ")"
	case kind == Flagged:
		return "flagged"
	case kind == MineTriggered:
		return "mine-triggered"
	case kind == MineShown:
		return "mine-shown"
	default:
		return "unknown"
	}
}

// Wire codes used by the game service
const (
	codeBlank         = " "
	codeEmptyRevealed = "_"
	codeFlagged       = "F"
	codeMineTriggered = "*"
	codeMineShown     = "@"
)

const DefaultBoardSize = 8

type Phase int

const (
	PhaseAbsent Phase = iota
	PhaseNew
	PhasePlaying
	PhaseWon
	PhaseLost
)

var phaseNames = map[Phase]string{
	PhaseNew:     "new",
	PhasePlaying: "playing",
	PhaseWon:     "won",
	PhaseLost:    "lost",
}

func (phase Phase) String() string {
	if name, ok := phaseNames[phase]; ok {
		return name
	}
	return "absent"
}

// IsOver reports whether the game has been decided.
func (phase Phase) IsOver() bool {
	return phase == PhaseWon || phase == PhaseLost
}

func ParsePhase(s string) (Phase, error) {
	if s == "" {
		return PhaseAbsent, nil
	}
	for phase, name := range phaseNames {
		if name == s {
			return phase, nil
		}
	}
	return PhaseAbsent, errors.WithMessagef(ErrUnknownPhase, "state %q", s)
}

type Difficulty int

const (
	DifficultyUnset Difficulty = iota - 1
	Easy
	Medium
	Hard
)

var Difficulties = map[string]Difficulty{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

func (difficulty Difficulty) String() string {
	for name, d := range Difficulties {
		if d == difficulty {
			return name
		}
	}
	return "unset"
}

// IsSet reports whether difficulty names one of the service's levels.
func (difficulty Difficulty) IsSet() bool {
	return difficulty >= Easy && difficulty <= Hard
}

// ParseDifficulty accepts a level name or its wire number (0, 1, 2).
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := Difficulties[s]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(s); err == nil && Difficulty(n).IsSet() {
		return Difficulty(n), nil
	}
	return DifficultyUnset, errors.Errorf("invalid difficulty %q", s)
}
