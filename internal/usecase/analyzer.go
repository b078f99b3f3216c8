// Package usecase orchestrates the dashboard flows between collaborators.
package usecase

import (
	"context"
	"errors"
	"time"

	"StockDash/internal/analysis"
	"StockDash/internal/domain/models"
	"StockDash/internal/domain/repository"
)

// Analyzer produces a display-ready AnalysisResult for one ticker: quote and
// history from the market-data collaborator, derived metrics from the
// analysis package.
type Analyzer struct {
	market  repository.MarketData
	metrics repository.Metrics
	stepPct int
	maxPct  int
}

func NewAnalyzer(market repository.MarketData, metrics repository.Metrics) *Analyzer {
	return &Analyzer{
		market:  market,
		metrics: metrics,
		stepPct: analysis.DefaultStepPercent,
		maxPct:  analysis.DefaultMaxPercent,
	}
}

// Analyze fetches quote plus 6mo/1y/10y daily history and computes the
// percent-change table, drawdown levels, highlight bucket and the 1-year
// close trend for the chart. Collaborator
// failures come back as *models.UpstreamError; missing data inside otherwise
// successful responses degrades to nil fields and "N/A" values instead.
func (a *Analyzer) Analyze(ctx context.Context, ticker string) (*models.AnalysisResult, error) {
	start := time.Now()

	quote, err := a.market.Quote(ctx, ticker)
	if err != nil {
		return nil, a.fail(ticker, err)
	}
	hist1y, err := a.market.History(ctx, ticker, models.Range1Y)
	if err != nil {
		return nil, a.fail(ticker, err)
	}
	hist6mo, err := a.market.History(ctx, ticker, models.Range6Mo)
	if err != nil {
		return nil, a.fail(ticker, err)
	}
	hist10y, err := a.market.History(ctx, ticker, models.Range10Y)
	if err != nil {
		return nil, a.fail(ticker, err)
	}

	snap := models.PriceSnapshot{
		CurrentPrice:  quote.CurrentPrice,
		PreviousClose: quote.PreviousClose,
		High52W:       maxHigh(hist1y),
		Low52W:        minLow(hist1y),
		Low6Mo:        minLow(hist6mo),
		AllTimeHigh:   maxHigh(hist10y),
	}

	changes := map[string]string{
		models.ChangePrevClose:   analysis.PercentChange(snap.CurrentPrice, snap.PreviousClose),
		models.ChangeAllTimeHigh: analysis.PercentChange(snap.CurrentPrice, snap.AllTimeHigh),
		models.ChangeHigh52W:     analysis.PercentChange(snap.CurrentPrice, snap.High52W),
		models.ChangeLow52W:      analysis.PercentChange(snap.CurrentPrice, snap.Low52W),
		models.ChangeLow6Mo:      analysis.PercentChange(snap.CurrentPrice, snap.Low6Mo),
	}

	levels := analysis.DrawdownLevels(snap.AllTimeHigh, a.stepPct, a.maxPct)
	result := &models.AnalysisResult{
		Ticker:      ticker,
		Snapshot:    snap,
		Changes:     changes,
		Levels:      levels,
		CloseSeries: closeSeries(hist1y),
	}
	if idx := analysis.HighlightIndex(snap.CurrentPrice, snap.AllTimeHigh, levels); idx != analysis.NoHighlight {
		result.HighlightedLevel = &idx
	}

	if a.metrics != nil {
		a.metrics.RecordAnalysis(ticker, "ok")
		a.metrics.ObserveFetch("analyze", time.Since(start).Seconds())
	}
	return result, nil
}

// fail wraps a collaborator error into the typed failure outcome.
func (a *Analyzer) fail(ticker string, err error) error {
	kind := models.UpstreamNetwork
	if errors.Is(err, repository.ErrSymbolNotFound) {
		kind = models.UpstreamNotFound
	}
	if a.metrics != nil {
		a.metrics.RecordAnalysis(ticker, "error")
		a.metrics.RecordUpstreamError(string(kind))
	}
	return &models.UpstreamError{Ticker: ticker, Kind: kind, Err: err}
}

// closeSeries projects the 1-year history onto the close trend for the chart.
func closeSeries(candles []models.Candle) []models.PricePoint {
	points := make([]models.PricePoint, 0, len(candles))
	for i := range candles {
		points = append(points, models.PricePoint{
			Date:  candles[i].Date,
			Close: candles[i].Close,
		})
	}
	return points
}

func maxHigh(candles []models.Candle) *float64 {
	var out *float64
	for i := range candles {
		if out == nil || candles[i].High > *out {
			v := candles[i].High
			out = &v
		}
	}
	return out
}

func minLow(candles []models.Candle) *float64 {
	var out *float64
	for i := range candles {
		if out == nil || candles[i].Low < *out {
			v := candles[i].Low
			out = &v
		}
	}
	return out
}
