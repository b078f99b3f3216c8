package repository

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileRepositoryMissingFile(t *testing.T) {
	r := NewFileTickerRepository(filepath.Join(t.TempDir(), "tickers.yaml"))
	got, err := r.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	r := NewFileTickerRepository(filepath.Join(t.TempDir(), "wl", "tickers.yaml"))
	ctx := context.Background()

	want := []string{"AAPL", "MSFT", "TSLA"}
	if err := r.Overwrite(ctx, want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := r.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip = %v, want %v", got, want)
	}

	// overwrite(read()) leaves the stored list unchanged
	if err := r.Overwrite(ctx, got); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	again, err := r.Read(ctx)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Fatalf("idempotent rewrite changed list: %v", again)
	}
}

func TestFileRepositoryOverwriteEmpties(t *testing.T) {
	r := NewFileTickerRepository(filepath.Join(t.TempDir(), "tickers.yaml"))
	ctx := context.Background()

	if err := r.Overwrite(ctx, []string{"AAPL"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := r.Overwrite(ctx, nil); err != nil {
		t.Fatalf("overwrite empty: %v", err)
	}
	got, err := r.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
