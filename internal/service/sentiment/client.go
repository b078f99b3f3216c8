// Package sentiment implements the sentiment-index collaborator against the
// CNN fear-and-greed graphdata endpoint.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"StockDash/internal/domain/models"
)

const defaultURL = "https://production.dataviz.cnn.io/index/fearandgreed/graphdata/"

// Client fetches the historical sentiment series.
type Client struct {
	url       string
	userAgent string
	http      *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithURL overrides the feed URL.
func WithURL(u string) Option {
	return func(c *Client) { c.url = u }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(opts ...Option) *Client {
	c := &Client{
		url:       defaultURL,
		userAgent: "Mozilla/5.0",
		http:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphData struct {
	Historical struct {
		Data []struct {
			X float64 `json:"x"` // epoch millis
			Y float64 `json:"y"`
		} `json:"data"`
	} `json:"fear_and_greed_historical"`
}

// Series returns the sentiment index observations, oldest first.
func (c *Client) Series(ctx context.Context) ([]models.SentimentPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sentiment fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sentiment read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sentiment: status %d", resp.StatusCode)
	}

	var data graphData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("sentiment decode: %w", err)
	}

	points := make([]models.SentimentPoint, 0, len(data.Historical.Data))
	for _, d := range data.Historical.Data {
		points = append(points, models.SentimentPoint{
			Timestamp: time.UnixMilli(int64(d.X)).UTC(),
			Value:     d.Y,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Timestamp.Before(points[j].Timestamp) })
	return points, nil
}
