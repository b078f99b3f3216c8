package analysis

import (
	"testing"

	"StockDash/internal/domain/models"
)

func fp(v float64) *float64 { return &v }

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name    string
		current *float64
		ref     *float64
		want    string
	}{
		{"up 20", fp(120), fp(100), "20.0%"},
		{"down 20", fp(80), fp(100), "-20.0%"},
		{"fractional", fp(150), fp(145), "3.45%"},
		{"zero reference", fp(100), fp(0), "N/A"},
		{"nil current", nil, fp(100), "N/A"},
		{"nil reference", fp(100), nil, "N/A"},
	}
	for _, tc := range cases {
		if got := PercentChange(tc.current, tc.ref); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDrawdownLevels(t *testing.T) {
	levels := DrawdownLevels(fp(200), 10, 80)
	if len(levels) != 8 {
		t.Fatalf("expected 8 levels, got %d", len(levels))
	}
	for i, lvl := range levels {
		wantDrop := i * 10
		wantPrice := 200 * (1 - float64(wantDrop)/100)
		if lvl.PercentDrop != wantDrop {
			t.Errorf("level %d: drop %d, want %d", i, lvl.PercentDrop, wantDrop)
		}
		if lvl.PriceThreshold != wantPrice {
			t.Errorf("level %d: threshold %.2f, want %.2f", i, lvl.PriceThreshold, wantPrice)
		}
		if i > 0 && lvl.PriceThreshold >= levels[i-1].PriceThreshold {
			t.Errorf("level %d: thresholds not strictly decreasing", i)
		}
	}
	if levels[7].PriceThreshold != 60 {
		t.Errorf("last threshold %.2f, want 60.00", levels[7].PriceThreshold)
	}
}

func TestDrawdownLevelsAbsentHigh(t *testing.T) {
	if levels := DrawdownLevels(nil, 10, 80); len(levels) != 0 {
		t.Fatalf("expected empty table, got %d levels", len(levels))
	}
}

func TestHighlightIndex(t *testing.T) {
	levels := DrawdownLevels(fp(200), 10, 80)

	// drop = 25% -> the 20% bucket, index 2
	if got := HighlightIndex(fp(150), fp(200), levels); got != 2 {
		t.Errorf("drop 25%%: got index %d, want 2", got)
	}
	// at or above the high -> index 0
	if got := HighlightIndex(fp(200), fp(200), levels); got != 0 {
		t.Errorf("at high: got index %d, want 0", got)
	}
	if got := HighlightIndex(fp(250), fp(200), levels); got != 0 {
		t.Errorf("above high: got index %d, want 0", got)
	}
	// below every threshold -> last index
	if got := HighlightIndex(fp(0), fp(200), levels); got != len(levels)-1 {
		t.Errorf("price zero: got index %d, want %d", got, len(levels)-1)
	}
}

func TestHighlightIndexAbsentInputs(t *testing.T) {
	levels := DrawdownLevels(fp(200), 10, 80)
	if got := HighlightIndex(nil, fp(200), levels); got != NoHighlight {
		t.Errorf("nil current: got %d, want NoHighlight", got)
	}
	if got := HighlightIndex(fp(150), nil, levels); got != NoHighlight {
		t.Errorf("nil high: got %d, want NoHighlight", got)
	}
	if got := HighlightIndex(fp(150), fp(200), nil); got != NoHighlight {
		t.Errorf("empty levels: got %d, want NoHighlight", got)
	}
	if got := HighlightIndex(fp(150), fp(0), []models.DrawdownLevel{{}}); got != NoHighlight {
		t.Errorf("zero high: got %d, want NoHighlight", got)
	}
}
