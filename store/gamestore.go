package store

import (
	"fmt"
	"sync"

	"github.com/minaorangina/matatu/engine"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrDuplicateGameID = errors.New("game ID already in use")
	ErrFnUnknownGameID = func(gameID string) error {
		return errors.Wrap(ErrUnknownGameID, fmt.Sprintf("game with id %q does not exist", gameID))
	}
)

func NewID() string {
	return uuid.NewV4().String()
}

type GameStore interface {
	FindGame(gameID string) *engine.Session
	AddGame(session *engine.Session) error
	RemoveGame(gameID string) error
	RemoveGames(match func(*engine.Session) bool) []string
	Count() int
}

// InMemoryGameStore maps game id to session
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]*engine.Session
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]*engine.Session{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *engine.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Games[gameID]
}

func (s *InMemoryGameStore) AddGame(session *engine.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[session.ID]; exists {
		return errors.Wrapf(ErrDuplicateGameID, "%s", session.ID)
	}
	s.Games[session.ID] = session
	engine.Metrics.SetActiveSessions(len(s.Games))

	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[gameID]; !exists {
		return ErrFnUnknownGameID(gameID)
	}
	delete(s.Games, gameID)
	engine.Metrics.SetActiveSessions(len(s.Games))

	return nil
}

// RemoveGames removes every session match accepts and returns their IDs
func (s *InMemoryGameStore) RemoveGames(match func(*engine.Session) bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := []string{}
	for gameID, session := range s.Games {
		if match(session) {
			delete(s.Games, gameID)
			removed = append(removed, gameID)
		}
	}
	if len(removed) > 0 {
		engine.Metrics.SetActiveSessions(len(s.Games))
	}

	return removed
}

func (s *InMemoryGameStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.Games)
}
