package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/playperu/nostos/internal/metrics"
	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/roster"
	"github.com/playperu/nostos/internal/screen"
)

// Sessions owns one Screen per browser session. Sessions live for the
// process lifetime and are never persisted.
type Sessions struct {
	people  *roster.Registry
	broker  *Broker
	metrics *metrics.Metrics

	mu      sync.RWMutex
	screens map[string]*screen.Screen
}

func NewSessions(people *roster.Registry, broker *Broker, m *metrics.Metrics) *Sessions {
	return &Sessions{
		people:  people,
		broker:  broker,
		metrics: m,
		screens: make(map[string]*screen.Screen),
	}
}

// Create starts a new screen whose changes are published on the broker.
func (s *Sessions) Create() (string, *screen.Screen) {
	id := uuid.NewString()
	sc := screen.New(s.people, func(v screen.View) {
		s.broker.Publish(id, v)
	})

	s.mu.Lock()
	s.screens[id] = sc
	s.mu.Unlock()

	s.metrics.SessionsActive.Inc()
	return id, sc
}

func (s *Sessions) Get(id string) (*screen.Screen, error) {
	s.mu.RLock()
	sc, ok := s.screens[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, nostos.ErrNotFound)
	}
	return sc, nil
}
