package models

import "time"

// HistoryRange selects the lookback window for a daily history request.
type HistoryRange string

const (
	Range6Mo HistoryRange = "6mo"
	Range1Y  HistoryRange = "1y"
	Range10Y HistoryRange = "10y"
)

// Candle is a single daily OHLC bar.
type Candle struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}

// Quote is the latest market quote for a symbol.
// Fields are pointers: upstream data may be missing and absence must stay
// distinguishable from zero.
type Quote struct {
	CurrentPrice  *float64 `json:"current_price"`
	PreviousClose *float64 `json:"previous_close"`
}

// PriceSnapshot collects the quote and the derived history extremes for one symbol.
type PriceSnapshot struct {
	CurrentPrice  *float64 `json:"current_price"`
	PreviousClose *float64 `json:"previous_close"`
	High52W       *float64 `json:"high_52w"`
	Low52W        *float64 `json:"low_52w"`
	Low6Mo        *float64 `json:"low_6mo"`
	AllTimeHigh   *float64 `json:"all_time_high"` // 10-year high, used as the all-time proxy
}

// PricePoint is one close observation in a trend series.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// SentimentPoint is one observation of the market sentiment index.
type SentimentPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}
