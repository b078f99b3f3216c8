package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"StockDash/internal/domain/models"
	"StockDash/internal/domain/repository"
)

func fp(v float64) *float64 { return &v }

// fakeMarket serves canned quotes and histories per symbol.
type fakeMarket struct {
	quotes    map[string]models.Quote
	histories map[string]map[models.HistoryRange][]models.Candle
	err       error
}

func (f *fakeMarket) Quote(ctx context.Context, symbol string) (models.Quote, error) {
	if f.err != nil {
		return models.Quote{}, f.err
	}
	return f.quotes[symbol], nil
}

func (f *fakeMarket) History(ctx context.Context, symbol string, rng models.HistoryRange) ([]models.Candle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.histories[symbol][rng], nil
}

func bar(day int, high, low, close float64) models.Candle {
	return models.Candle{
		Date:  time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		High:  high,
		Low:   low,
		Close: close,
	}
}

func TestAnalyze(t *testing.T) {
	market := &fakeMarket{
		quotes: map[string]models.Quote{
			"AAPL": {CurrentPrice: fp(150), PreviousClose: fp(145)},
		},
		histories: map[string]map[models.HistoryRange][]models.Candle{
			"AAPL": {
				models.Range1Y:  {bar(2, 170, 125, 160), bar(3, 180, 120, 148)},
				models.Range6Mo: {bar(2, 160, 130, 155), bar(3, 150, 135, 140)},
				models.Range10Y: {bar(2, 200, 90, 195), bar(3, 180, 110, 150)},
			},
		},
	}
	a := NewAnalyzer(market, nil)

	res, err := a.Analyze(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Ticker != "AAPL" {
		t.Errorf("ticker = %q", res.Ticker)
	}
	if res.Snapshot.High52W == nil || *res.Snapshot.High52W != 180 {
		t.Errorf("high_52w = %v, want 180", res.Snapshot.High52W)
	}
	if res.Snapshot.Low52W == nil || *res.Snapshot.Low52W != 120 {
		t.Errorf("low_52w = %v, want 120", res.Snapshot.Low52W)
	}
	if res.Snapshot.Low6Mo == nil || *res.Snapshot.Low6Mo != 130 {
		t.Errorf("low_6mo = %v, want 130", res.Snapshot.Low6Mo)
	}
	if res.Snapshot.AllTimeHigh == nil || *res.Snapshot.AllTimeHigh != 200 {
		t.Errorf("all_time_high = %v, want 200", res.Snapshot.AllTimeHigh)
	}

	if got := res.Changes[models.ChangeAllTimeHigh]; got != "-25.0%" {
		t.Errorf("changes.all_time_high = %q, want -25.0%%", got)
	}
	if got := res.Changes[models.ChangePrevClose]; got != "3.45%" {
		t.Errorf("changes.previous_close = %q, want 3.45%%", got)
	}

	if len(res.Levels) != 8 {
		t.Fatalf("levels = %d entries, want 8", len(res.Levels))
	}
	if res.Levels[0].PriceThreshold != 200 || res.Levels[7].PriceThreshold != 60 {
		t.Errorf("level bounds = %.2f..%.2f, want 200.00..60.00",
			res.Levels[0].PriceThreshold, res.Levels[7].PriceThreshold)
	}
	// drop of 25% falls into the 20% bucket
	if res.HighlightedLevel == nil || *res.HighlightedLevel != 2 {
		t.Errorf("highlighted level = %v, want 2", res.HighlightedLevel)
	}
	if res.Levels[2].PercentDrop != 20 {
		t.Errorf("highlighted bucket drop = %d%%, want 20%%", res.Levels[2].PercentDrop)
	}

	// 1-year closes carried through for the trend chart, oldest first
	if len(res.CloseSeries) != 2 {
		t.Fatalf("close series = %d points, want 2", len(res.CloseSeries))
	}
	if res.CloseSeries[0].Close != 160 || res.CloseSeries[1].Close != 148 {
		t.Errorf("close series = %.1f, %.1f, want 160.0, 148.0",
			res.CloseSeries[0].Close, res.CloseSeries[1].Close)
	}
	if !res.CloseSeries[0].Date.Before(res.CloseSeries[1].Date) {
		t.Error("close series not ordered oldest first")
	}
}

func TestAnalyzeMissingHistories(t *testing.T) {
	market := &fakeMarket{
		quotes: map[string]models.Quote{"NEWCO": {CurrentPrice: fp(10)}},
	}
	a := NewAnalyzer(market, nil)

	res, err := a.Analyze(context.Background(), "NEWCO")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Snapshot.AllTimeHigh != nil {
		t.Errorf("all_time_high = %v, want nil", res.Snapshot.AllTimeHigh)
	}
	for key, val := range res.Changes {
		if key == models.ChangePrevClose {
			continue
		}
		if val != models.NotAvailable {
			t.Errorf("changes[%s] = %q, want N/A", key, val)
		}
	}
	if res.Changes[models.ChangePrevClose] != models.NotAvailable {
		t.Errorf("previous_close without data = %q, want N/A", res.Changes[models.ChangePrevClose])
	}
	if len(res.Levels) != 0 {
		t.Errorf("levels = %d entries, want 0", len(res.Levels))
	}
	if res.HighlightedLevel != nil {
		t.Errorf("highlighted level = %v, want nil", res.HighlightedLevel)
	}
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	market := &fakeMarket{err: errors.New("connection refused")}
	a := NewAnalyzer(market, nil)

	_, err := a.Analyze(context.Background(), "ZZZZ")
	if err == nil {
		t.Fatal("expected failure outcome")
	}
	var ue *models.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error type %T, want *models.UpstreamError", err)
	}
	if ue.Ticker != "ZZZZ" {
		t.Errorf("ticker = %q, want ZZZZ", ue.Ticker)
	}
	if ue.Kind != models.UpstreamNetwork {
		t.Errorf("kind = %q, want network", ue.Kind)
	}
	if ue.Cause() == "" {
		t.Error("cause should be non-empty")
	}
}

func TestAnalyzeNotFoundKind(t *testing.T) {
	market := &fakeMarket{err: repository.ErrSymbolNotFound}
	a := NewAnalyzer(market, nil)

	_, err := a.Analyze(context.Background(), "ZZZZ")
	var ue *models.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error type %T", err)
	}
	if ue.Kind != models.UpstreamNotFound {
		t.Errorf("kind = %q, want not_found", ue.Kind)
	}
}
