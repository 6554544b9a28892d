package game

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/remotesweep/util/collections"
)

// Store owns the client's only Session. Replace is its sole writer.
type Store struct {
	log logrus.FieldLogger

	mu          sync.RWMutex
	session     Session
	subscribers map[chan Session]struct{}
}

func NewStore(log logrus.FieldLogger) *Store {
	return &Store{
		log:         log,
		session:     Initial(),
		subscribers: make(map[chan Session]struct{}),
	}
}

// Snapshot returns a copy of the current session.
func (store *Store) Snapshot() Session {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.session.Clone()
}

// Replace installs next wholesale and returns the positions whose cell
// changed. Invariant violations are logged, not rejected: the service is
// authoritative.
func (store *Store) Replace(next Session) collections.Set[Coord] {
	next = next.Clone()

	if err := next.Board.Validate(next.Phase); err != nil {
		store.log.WithError(err).WithField("game_id", next.ID).Warn("Snapshot violates board invariants")
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	changed := store.session.Board.Diff(next.Board)
	store.session = Replace(store.session, next)

	store.log.WithFields(logrus.Fields{
		"game_id": next.ID,
		"state":   next.Phase,
		"changed": changed.Len(),
	}).Debug("Session replaced")

	for sub := range store.subscribers {
		publish(sub, next.Clone())
	}

	return changed
}

// Subscribe returns a feed of replaced sessions and a func to stop it. A
// slow reader skips intermediate sessions but always receives the newest.
func (store *Store) Subscribe() (<-chan Session, func()) {
	sub := make(chan Session, 1)

	store.mu.Lock()
	store.subscribers[sub] = struct{}{}
	store.mu.Unlock()

	var once sync.Once
	return sub, func() {
		once.Do(func() {
			store.mu.Lock()
			delete(store.subscribers, sub)
			store.mu.Unlock()
			close(sub)
		})
	}
}

func publish(sub chan Session, session Session) {
	for {
		select {
		case sub <- session:
			return
		default:
		}

		// Drop the stale value so the newest one fits
		select {
		case <-sub:
		default:
		}
	}
}
