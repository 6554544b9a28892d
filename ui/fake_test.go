package ui

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/remotesweep/controller"
	"github.com/they4kman/remotesweep/game"
)

// fakeService answers every request with the next queued session.
type fakeService struct {
	mu        sync.Mutex
	responses []game.Session
	calls     []string
}

func (fake *fakeService) next(call string) (game.Session, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.calls = append(fake.calls, call)
	if len(fake.responses) == 0 {
		return game.Session{}, errors.New("service unavailable")
	}
	session := fake.responses[0]
	fake.responses = fake.responses[1:]
	return session, nil
}

func (fake *fakeService) StartGame(context.Context, game.Difficulty) (game.Session, error) {
	return fake.next("start")
}

func (fake *fakeService) Reveal(context.Context, int64, int, int) (game.Session, error) {
	return fake.next("check")
}

func (fake *fakeService) ToggleFlag(context.Context, int64, int, int) (game.Session, error) {
	return fake.next("flag")
}

func (fake *fakeService) callList() []string {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return append([]string(nil), fake.calls...)
}

func newHarness(responses ...game.Session) (*game.Store, *controller.Controller, *fakeService, *logrus.Logger) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	fake := &fakeService{responses: responses}
	store := game.NewStore(log)
	return store, controller.New(store, fake, log), fake, log
}

func snapshot(id int64, phase game.Phase) game.Session {
	session := game.Initial()
	session.ID = game.Active(id)
	session.Difficulty = game.Easy
	session.Phase = phase
	mines := 10
	session.MinesRemaining = &mines
	return session
}
