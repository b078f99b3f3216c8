package models

import "fmt"

// NotAvailable is the single "no data" representation for derived metrics.
const NotAvailable = "N/A"

// DrawdownLevel is a price threshold at a fixed percent decline from the
// all-time high.
type DrawdownLevel struct {
	PercentDrop    int     `json:"percent_drop"`
	PriceThreshold float64 `json:"price_threshold"`
}

// AnalysisResult is the display-ready outcome of analyzing one ticker.
// HighlightedLevel is nil when the current price or all-time high is unknown.
// CloseSeries carries the 1-year close trend for the chart, oldest first.
type AnalysisResult struct {
	Ticker           string            `json:"ticker"`
	Snapshot         PriceSnapshot     `json:"snapshot"`
	Changes          map[string]string `json:"changes"`
	Levels           []DrawdownLevel   `json:"levels"`
	HighlightedLevel *int              `json:"highlighted_level,omitempty"`
	CloseSeries      []PricePoint      `json:"close_series"`
}

// Change map keys computed for every analysis.
const (
	ChangePrevClose   = "previous_close"
	ChangeAllTimeHigh = "all_time_high"
	ChangeHigh52W     = "high_52w"
	ChangeLow52W      = "low_52w"
	ChangeLow6Mo      = "low_6mo"
)

// UpstreamErrorKind classifies market-data collaborator failures.
type UpstreamErrorKind string

const (
	UpstreamNotFound UpstreamErrorKind = "not_found"
	UpstreamNetwork  UpstreamErrorKind = "network"
)

// UpstreamError is the typed failure outcome of an analysis: it carries the
// ticker and a human-readable cause, and never escapes the analysis boundary
// as a panic.
type UpstreamError struct {
	Ticker string
	Kind   UpstreamErrorKind
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("market data for %s: %v", e.Ticker, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Cause returns the human-readable failure reason.
func (e *UpstreamError) Cause() string {
	if e.Err == nil {
		return "unknown upstream failure"
	}
	return e.Err.Error()
}
