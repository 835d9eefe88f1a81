package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

func (m *Manager) NewGame() *Session {
	return m.add(xiangqi.NewGame())
}

// NewGameFromFEN starts a game from an arbitrary position.
func (m *Manager) NewGameFromFEN(fen string) (*Session, error) {
	g, err := xiangqi.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *xiangqi.Game) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

// Play parses "e4"-style coordinates and applies the move to game id.
// The returned snapshot is the position right after this move. notify, if
// not nil, runs before any later move on the same game can commit.
func (m *Manager) Play(id, from, to string, notify func(*Session, xiangqi.Snapshot)) (*Session, xiangqi.Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, xiangqi.Snapshot{}, err
	}
	f, err := xiangqi.ParseSquare(from)
	if err != nil {
		return nil, xiangqi.Snapshot{}, err
	}
	t, err := xiangqi.ParseSquare(to)
	if err != nil {
		return nil, xiangqi.Snapshot{}, err
	}

	s.playMu.Lock()
	defer s.playMu.Unlock()
	snap, err := s.Game.Play(f, t)
	if err != nil {
		return nil, xiangqi.Snapshot{}, err
	}

	m.mu.Lock()
	s.UpdatedAt = time.Now()
	m.mu.Unlock()

	if notify != nil {
		notify(s, snap)
	}
	return s, snap, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
