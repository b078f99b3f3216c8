package repository

import (
	"context"
	"errors"

	"StockDash/internal/domain/models"
)

// ErrSymbolNotFound is returned by MarketData implementations when the
// upstream does not know the symbol, as opposed to a connectivity failure.
var ErrSymbolNotFound = errors.New("symbol not found")

// TickerRepository persists the watchlist as a whole. There are no
// append/delete primitives: every mutation rewrites the entire list and the
// last writer wins.
type TickerRepository interface {
	Read(ctx context.Context) ([]string, error)
	Overwrite(ctx context.Context, tickers []string) error
}

// MarketData provides the latest quote and daily history for a symbol.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (models.Quote, error)
	History(ctx context.Context, symbol string, rng models.HistoryRange) ([]models.Candle, error)
}

// SentimentFeed provides the market sentiment index series, oldest first.
type SentimentFeed interface {
	Series(ctx context.Context) ([]models.SentimentPoint, error)
}

// Metrics records operational counters for the dashboard.
type Metrics interface {
	RecordAnalysis(symbol, outcome string)
	RecordUpstreamError(kind string)
	SetWatchlistSize(n int)
	ObserveFetch(op string, seconds float64)
}
