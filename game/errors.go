package game

import "github.com/pkg/errors"

var (
	// ErrUnknownCell is returned when a cell code falls outside the closed set.
	ErrUnknownCell = errors.New("unknown cell code")
	// ErrUnknownPhase is returned when a snapshot carries an unrecognised state.
	ErrUnknownPhase = errors.New("unknown game state")
)
