// Package session holds the per-session dashboard state: the session's own
// watchlist copy, the current selection and the authentication latch.
package session

import (
	"context"
	"time"

	"StockDash/internal/domain/models"
	"StockDash/internal/domain/repository"
	"StockDash/internal/usecase"
	"StockDash/internal/watchlist"
)

// Session is created at session start, hydrated from the shared ticker
// repository, and discarded at session end. Two concurrent sessions may race
// on the persisted list; the last writer wins.
type Session struct {
	ID        string
	CreatedAt time.Time

	store         *watchlist.Store
	analyzer      *usecase.Analyzer
	metrics       repository.Metrics
	secret        string
	authenticated bool
}

// Authenticate compares the candidate against the configured shared secret.
// Success latches the session; failure leaves it unchanged. There is no
// reverse transition.
func (s *Session) Authenticate(candidate string) bool {
	if candidate != "" && candidate == s.secret {
		s.authenticated = true
	}
	return s.authenticated
}

func (s *Session) Authenticated() bool { return s.authenticated }

// Store exposes the session's watchlist.
func (s *Session) Store() *watchlist.Store { return s.store }

// AddTicker normalizes and appends a symbol to the watchlist.
func (s *Session) AddTicker(ctx context.Context, raw string) (bool, error) {
	added, err := s.store.Add(ctx, raw)
	s.reportSize()
	return added, err
}

// HandleAction dispatches a parsed watchlist action. Unknown kinds are
// ignored silently.
func (s *Session) HandleAction(ctx context.Context, a models.Action) error {
	var err error
	switch a.Kind {
	case models.ActionMoveUp:
		_, err = s.store.MoveUp(ctx, a.Index)
	case models.ActionMoveDown:
		_, err = s.store.MoveDown(ctx, a.Index)
	case models.ActionDelete:
		_, err = s.store.Remove(ctx, a.Ticker)
	case models.ActionSelect:
		s.store.Select(a.Ticker)
	}
	s.reportSize()
	return err
}

// RenderView analyzes the current selection. A nil result with nil error is
// the empty view: nothing selected, nothing to show.
func (s *Session) RenderView(ctx context.Context) (*models.AnalysisResult, error) {
	selected := s.store.Selected()
	if selected == "" {
		return nil, nil
	}
	return s.analyzer.Analyze(ctx, selected)
}

func (s *Session) reportSize() {
	if s.metrics != nil {
		s.metrics.SetWatchlistSize(s.store.Len())
	}
}
