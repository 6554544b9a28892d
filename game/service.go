package game

import "context"

// Service is the remote game service. Every method returns the complete
// session that results from the request.
type Service interface {
	// StartGame creates a new game. DifficultyUnset leaves the choice to the service.
	StartGame(ctx context.Context, difficulty Difficulty) (Session, error)

	// Reveal checks the cell at (row, col) of game id.
	Reveal(ctx context.Context, id int64, row, col int) (Session, error)

	// ToggleFlag flips the flag on the cell at (row, col) of game id.
	ToggleFlag(ctx context.Context, id int64, row, col int) (Session, error)
}
