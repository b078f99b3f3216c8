package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"StockDash/internal/domain/repository"
	"StockDash/internal/usecase"
	"StockDash/internal/watchlist"
)

// Manager creates and tracks dashboard sessions. Each session gets its own
// watchlist copy hydrated from the shared repository at creation time.
type Manager struct {
	repo     repository.TickerRepository
	analyzer *usecase.Analyzer
	metrics  repository.Metrics
	secret   string

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(repo repository.TickerRepository, analyzer *usecase.Analyzer, metrics repository.Metrics, secret string) *Manager {
	return &Manager{
		repo:     repo,
		analyzer: analyzer,
		metrics:  metrics,
		secret:   secret,
		sessions: make(map[string]*Session),
	}
}

// Create hydrates a new session from the shared ticker repository.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	store := watchlist.New(m.repo)
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		store:     store,
		analyzer:  m.analyzer,
		metrics:   m.metrics,
		secret:    m.secret,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get looks up an existing session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Drop discards a session.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
