package controller

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/remotesweep/game"
	"github.com/they4kman/remotesweep/util/collections"
)

type Outcome int

const (
	// Applied: the service answered and the session was replaced
	Applied Outcome = iota
	// Rejected: the action gate refused the action; nothing was sent
	Rejected
	// Busy: another move is awaiting its response; nothing was sent
	Busy
	// Stale: a newer game was started while this request was in flight, so
	// its response was dropped
	Stale
	// Failed: the request did not succeed; the session is unchanged
	Failed
)

func (outcome Outcome) String() string {
	switch outcome {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	case Busy:
		return "busy"
	case Stale:
		return "stale"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result reports what happened to one dispatched action.
type Result struct {
	Action  game.Action
	Outcome Outcome
	// Changed holds the positions the applied snapshot altered
	Changed collections.Set[game.Coord]
	Err     error
}

// Controller routes user actions through the gate to the service and
// installs the responses in the store.
type Controller struct {
	store   *game.Store
	service game.Service
	log     logrus.FieldLogger

	mu sync.Mutex
	// generation is bumped by every game start; responses from an older
	// generation are discarded
	generation uint64
	// movePending only blocks moves while pendingGeneration is current; a
	// move left hanging on a replaced game does not hold up the new one
	movePending       bool
	pendingGeneration uint64
	startsInFlight    int
}

func New(store *game.Store, service game.Service, log logrus.FieldLogger) *Controller {
	return &Controller{
		store:   store,
		service: service,
		log:     log,
	}
}

// Pending reports whether a start, or a move on the current game, is
// awaiting a response.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveBlocking() || c.startsInFlight > 0
}

// moveBlocking must be called with mu held.
func (c *Controller) moveBlocking() bool {
	return c.movePending && c.pendingGeneration == c.generation
}

// Dispatch runs action to completion.
func (c *Controller) Dispatch(ctx context.Context, action game.Action) Result {
	switch action.Kind {
	case game.ActionReveal, game.ActionFlag:
		return c.move(ctx, action)
	case game.ActionStart:
		return c.start(ctx, action)
	default:
		return Result{Action: action, Outcome: Rejected}
	}
}

func (c *Controller) Reveal(ctx context.Context, row, col int) Result {
	return c.Dispatch(ctx, game.Reveal(row, col))
}

func (c *Controller) Flag(ctx context.Context, row, col int) Result {
	return c.Dispatch(ctx, game.ToggleFlag(row, col))
}

func (c *Controller) NewGame(ctx context.Context, difficulty game.Difficulty) Result {
	return c.Dispatch(ctx, game.StartGame(difficulty))
}

func (c *Controller) move(ctx context.Context, action game.Action) Result {
	log := c.log.WithFields(logrus.Fields{
		"action": action.Kind,
		"row":    action.Row,
		"col":    action.Col,
	})

	c.mu.Lock()
	if c.moveBlocking() {
		c.mu.Unlock()
		log.Debug("Move ignored while another is in flight")
		return Result{Action: action, Outcome: Busy}
	}

	session := c.store.Snapshot()
	if !game.Permit(session, action) {
		c.mu.Unlock()
		log.WithField("state", session.Phase).Debug("Move not permitted")
		return Result{Action: action, Outcome: Rejected}
	}

	generation := c.generation
	c.movePending = true
	c.pendingGeneration = generation
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.pendingGeneration == generation {
			c.movePending = false
		}
		c.mu.Unlock()
	}()

	id, _ := session.ID.Value()
	log = log.WithField("game_id", id)

	var next game.Session
	var err error
	if action.Kind == game.ActionReveal {
		next, err = c.service.Reveal(ctx, id, action.Row, action.Col)
	} else {
		next, err = c.service.ToggleFlag(ctx, id, action.Row, action.Col)
	}

	return c.apply(log, action, generation, next, err)
}

func (c *Controller) start(ctx context.Context, action game.Action) Result {
	log := c.log.WithField("difficulty", action.Difficulty)
	if !game.Permit(c.store.Snapshot(), action) {
		return Result{Action: action, Outcome: Rejected}
	}

	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.startsInFlight++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.startsInFlight--
		c.mu.Unlock()
	}()

	log.Info("Starting new game")
	next, err := c.service.StartGame(ctx, action.Difficulty)
	return c.apply(log, action, generation, next, err)
}

// apply installs next unless the request failed or was superseded.
func (c *Controller) apply(log logrus.FieldLogger, action game.Action, generation uint64, next game.Session, err error) Result {
	if err != nil {
		log.WithError(err).Warn("Request failed; session unchanged")
		return Result{Action: action, Outcome: Failed, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		log.WithField("game_id", next.ID).Info("Dropping response for a superseded game")
		return Result{Action: action, Outcome: Stale}
	}

	changed := c.store.Replace(next)
	log.WithFields(logrus.Fields{
		"state": next.Phase,
		"mines": game.MinesLabel(next),
	}).Info(game.Status(next.Phase))

	return Result{Action: action, Outcome: Applied, Changed: changed}
}
