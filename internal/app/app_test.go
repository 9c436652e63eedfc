package app

import (
	"context"
	"errors"
	"sync"

	"recipebox/internal/model"
)

type recordingPublisher struct {
	mu         sync.Mutex
	activities []model.Activity
	err        error
}

func (p *recordingPublisher) Publish(_ context.Context, activity model.Activity) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.activities = append(p.activities, activity)
	return nil
}

func (p *recordingPublisher) kinds() []model.ActivityKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]model.ActivityKind, 0, len(p.activities))
	for _, a := range p.activities {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}

// memorySessionStore lets session tests run without Redis and inject failures.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]uint
	saveErr  error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]uint)}
}

func (s *memorySessionStore) Save(_ context.Context, sessionID string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[sessionID] = userID
	return nil
}

func (s *memorySessionStore) Load(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[sessionID]
	return userID, ok, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return ok, nil
}

var errBrokerDown = errors.New("broker down")
