package watchlist

import (
	"context"
	"reflect"
	"testing"
)

// fakeRepo counts persist calls and remembers the last written list.
type fakeRepo struct {
	stored  []string
	reads   int
	writes  int
	readErr error
}

func (f *fakeRepo) Read(ctx context.Context) ([]string, error) {
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]string(nil), f.stored...), nil
}

func (f *fakeRepo) Overwrite(ctx context.Context, tickers []string) error {
	f.writes++
	f.stored = append([]string(nil), tickers...)
	return nil
}

func newLoaded(t *testing.T, stored []string) (*Store, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{stored: stored}
	s := New(repo)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, repo
}

func TestLoadNormalizes(t *testing.T) {
	s, _ := newLoaded(t, []string{" aapl ", "", "MSFT", "aapl", "msft", "tsla"})
	want := []string{"AAPL", "MSFT", "TSLA"}
	if got := s.Tickers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tickers = %v, want %v", got, want)
	}
	if s.Selected() != "AAPL" {
		t.Fatalf("selected = %q, want AAPL", s.Selected())
	}
}

func TestAddIdempotentCaseInsensitive(t *testing.T) {
	s, repo := newLoaded(t, nil)
	ctx := context.Background()

	added, err := s.Add(ctx, "aapl")
	if err != nil || !added {
		t.Fatalf("first add: added=%v err=%v", added, err)
	}
	added, err = s.Add(ctx, "AAPL")
	if err != nil || added {
		t.Fatalf("duplicate add: added=%v err=%v", added, err)
	}
	if got := s.Tickers(); !reflect.DeepEqual(got, []string{"AAPL"}) {
		t.Fatalf("tickers = %v, want [AAPL]", got)
	}
	if repo.writes != 1 {
		t.Fatalf("writes = %d, want 1", repo.writes)
	}

	if added, _ := s.Add(ctx, "  "); added {
		t.Fatal("blank symbol should be a no-op")
	}
	if repo.writes != 1 {
		t.Fatalf("blank add persisted: writes = %d", repo.writes)
	}
}

func TestRemoveAbsentNoPersist(t *testing.T) {
	s, repo := newLoaded(t, []string{"AAPL"})
	removed, err := s.Remove(context.Background(), "MSFT")
	if err != nil || removed {
		t.Fatalf("remove absent: removed=%v err=%v", removed, err)
	}
	if repo.writes != 0 {
		t.Fatalf("writes = %d, want 0", repo.writes)
	}
}

func TestRemoveSelectedResetsSelection(t *testing.T) {
	s, _ := newLoaded(t, []string{"AAPL", "MSFT"})
	ctx := context.Background()

	if removed, err := s.Remove(ctx, "AAPL"); err != nil || !removed {
		t.Fatalf("remove: %v", err)
	}
	if s.Selected() != "MSFT" {
		t.Fatalf("selected = %q, want MSFT", s.Selected())
	}
	if removed, err := s.Remove(ctx, "MSFT"); err != nil || !removed {
		t.Fatalf("remove last: %v", err)
	}
	if s.Selected() != "" {
		t.Fatalf("selected = %q, want empty", s.Selected())
	}
}

func TestRemoveUnselectedKeepsSelection(t *testing.T) {
	s, _ := newLoaded(t, []string{"AAPL", "MSFT"})
	if _, err := s.Remove(context.Background(), "MSFT"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.Selected() != "AAPL" {
		t.Fatalf("selected = %q, want AAPL", s.Selected())
	}
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	s, repo := newLoaded(t, []string{"AAPL", "MSFT", "TSLA"})
	ctx := context.Background()

	if moved, _ := s.MoveUp(ctx, 0); moved {
		t.Fatal("move_up(0) should be a no-op")
	}
	if moved, _ := s.MoveDown(ctx, 2); moved {
		t.Fatal("move_down(last) should be a no-op")
	}
	if moved, _ := s.MoveUp(ctx, 5); moved {
		t.Fatal("out-of-range move should be a no-op")
	}
	if repo.writes != 0 {
		t.Fatalf("writes = %d, want 0", repo.writes)
	}

	if moved, err := s.MoveUp(ctx, 1); err != nil || !moved {
		t.Fatalf("move_up(1): moved=%v err=%v", moved, err)
	}
	want := []string{"MSFT", "AAPL", "TSLA"}
	if got := s.Tickers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tickers = %v, want %v", got, want)
	}
	if moved, err := s.MoveDown(ctx, 1); err != nil || !moved {
		t.Fatalf("move_down(1): moved=%v err=%v", moved, err)
	}
	want = []string{"MSFT", "TSLA", "AAPL"}
	if got := s.Tickers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tickers = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(repo.stored, want) {
		t.Fatalf("persisted = %v, want %v", repo.stored, want)
	}
}

func TestSelectRejectsNonMember(t *testing.T) {
	s, _ := newLoaded(t, []string{"AAPL"})
	if s.Select("MSFT") {
		t.Fatal("select of non-member should fail")
	}
	if !s.Select("aapl") {
		t.Fatal("select should normalize case")
	}
	if s.Selected() != "AAPL" {
		t.Fatalf("selected = %q", s.Selected())
	}
}

func TestOverwriteReadRoundTrip(t *testing.T) {
	repo := &fakeRepo{stored: []string{"AAPL", "MSFT"}}
	ctx := context.Background()

	list, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := repo.Overwrite(ctx, list); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	again, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if !reflect.DeepEqual(list, again) {
		t.Fatalf("round-trip changed list: %v -> %v", list, again)
	}
}
