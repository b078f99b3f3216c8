// Package watchlist implements the ordered ticker list with selection,
// hydrated from and persisted to a TickerRepository. Every mutation rewrites
// the whole persisted list; a crash between mutation and persist is an
// accepted at-most-once durability gap.
package watchlist

import (
	"context"
	"fmt"
	"strings"

	"StockDash/internal/domain/repository"
)

// Store is an ordered set of ticker symbols plus the current selection.
// Selection is always a member of the list or empty.
type Store struct {
	repo     repository.TickerRepository
	tickers  []string
	selected string
}

func New(repo repository.TickerRepository) *Store {
	return &Store{repo: repo}
}

// Load hydrates the store from the repository, normalizing raw entries and
// selecting the first ticker when the list is non-empty.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.repo.Read(ctx)
	if err != nil {
		return fmt.Errorf("load watchlist: %w", err)
	}
	s.tickers = Normalize(raw)
	s.selected = ""
	if len(s.tickers) > 0 {
		s.selected = s.tickers[0]
	}
	return nil
}

// Tickers returns a copy of the list in display order.
func (s *Store) Tickers() []string {
	out := make([]string, len(s.tickers))
	copy(out, s.tickers)
	return out
}

func (s *Store) Len() int { return len(s.tickers) }

// Selected returns the selected ticker, or "" when nothing is selected.
func (s *Store) Selected() string { return s.selected }

// Select sets the selection. Non-members are rejected.
func (s *Store) Select(ticker string) bool {
	ticker = NormalizeSymbol(ticker)
	if !s.contains(ticker) {
		return false
	}
	s.selected = ticker
	return true
}

// Add appends a normalized symbol and persists the list. Empty or already
// present symbols are a no-op and do not trigger a persist.
func (s *Store) Add(ctx context.Context, raw string) (bool, error) {
	sym := NormalizeSymbol(raw)
	if sym == "" || s.contains(sym) {
		return false, nil
	}
	s.tickers = append(s.tickers, sym)
	if s.selected == "" {
		s.selected = sym
	}
	return true, s.persist(ctx)
}

// Remove drops a ticker and persists. Absent tickers are a no-op without a
// persist call. Removing the selected ticker resets the selection to the new
// first element, or clears it when the list becomes empty.
func (s *Store) Remove(ctx context.Context, ticker string) (bool, error) {
	sym := NormalizeSymbol(ticker)
	idx := s.indexOf(sym)
	if idx < 0 {
		return false, nil
	}
	s.tickers = append(s.tickers[:idx], s.tickers[idx+1:]...)
	if s.selected == sym {
		s.selected = ""
		if len(s.tickers) > 0 {
			s.selected = s.tickers[0]
		}
	}
	return true, s.persist(ctx)
}

// MoveUp swaps the ticker at index with its predecessor. Index 0 and
// out-of-range indexes are a no-op.
func (s *Store) MoveUp(ctx context.Context, index int) (bool, error) {
	if index <= 0 || index >= len(s.tickers) {
		return false, nil
	}
	s.tickers[index], s.tickers[index-1] = s.tickers[index-1], s.tickers[index]
	return true, s.persist(ctx)
}

// MoveDown swaps the ticker at index with its successor. The last index and
// out-of-range indexes are a no-op.
func (s *Store) MoveDown(ctx context.Context, index int) (bool, error) {
	if index < 0 || index >= len(s.tickers)-1 {
		return false, nil
	}
	s.tickers[index], s.tickers[index+1] = s.tickers[index+1], s.tickers[index]
	return true, s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Overwrite(ctx, s.Tickers()); err != nil {
		return fmt.Errorf("persist watchlist: %w", err)
	}
	return nil
}

func (s *Store) contains(sym string) bool { return s.indexOf(sym) >= 0 }

func (s *Store) indexOf(sym string) int {
	for i, t := range s.tickers {
		if t == sym {
			return i
		}
	}
	return -1
}

// NormalizeSymbol uppercases and trims a raw symbol.
func NormalizeSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Normalize cleans a raw persisted list: uppercase, drop blanks, drop
// duplicates keeping the first occurrence, preserve order.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		sym := NormalizeSymbol(r)
		if sym == "" {
			continue
		}
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
	}
	return out
}
