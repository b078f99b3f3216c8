package di

import (
	"fmt"

	"StockDash/internal/domain/repository"
	"StockDash/internal/handler/api"
	internalrepo "StockDash/internal/repository"
	"StockDash/internal/service/sentiment"
	"StockDash/internal/service/yahoo"
	"StockDash/internal/session"
	"StockDash/internal/usecase"
	"StockDash/pkg/config"
	xhttp "StockDash/pkg/http"
	applogger "StockDash/pkg/logger"
	"StockDash/pkg/metrics"
	"StockDash/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTickerRepository selects the watchlist persistence backend.
func ProvideTickerRepository(cfg *config.Config) (repository.TickerRepository, error) {
	switch cfg.Watchlist.Backend {
	case "file":
		return internalrepo.NewFileTickerRepository(cfg.Watchlist.Path), nil
	case "redis":
		client, err := internalrepo.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("redis client: %w", err)
		}
		return internalrepo.NewRedisTickerRepository(client, cfg.Watchlist.Key), nil
	default:
		return nil, fmt.Errorf("unknown watchlist backend %q", cfg.Watchlist.Backend)
	}
}

// ProvideMarketData creates the Yahoo chart API client.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	var opts []yahoo.Option
	if cfg.Market.BaseURL != "" {
		opts = append(opts, yahoo.WithBaseURL(cfg.Market.BaseURL))
	}
	if cfg.Market.UserAgent != "" {
		opts = append(opts, yahoo.WithUserAgent(cfg.Market.UserAgent))
	}
	if cfg.Market.Timeout > 0 {
		opts = append(opts, yahoo.WithTimeout(cfg.Market.Timeout))
	}
	return yahoo.New(opts...)
}

// ProvideSentimentFeed creates the sentiment index client.
func ProvideSentimentFeed(cfg *config.Config) repository.SentimentFeed {
	var opts []sentiment.Option
	if cfg.Sentiment.URL != "" {
		opts = append(opts, sentiment.WithURL(cfg.Sentiment.URL))
	}
	if cfg.Sentiment.Timeout > 0 {
		opts = append(opts, sentiment.WithTimeout(cfg.Sentiment.Timeout))
	}
	return sentiment.New(opts...)
}

// ProvideAnalyzer creates the ticker analysis use case.
func ProvideAnalyzer(market repository.MarketData, m repository.Metrics) *usecase.Analyzer {
	return usecase.NewAnalyzer(market, m)
}

// ProvideSessionManager creates the dashboard session manager.
func ProvideSessionManager(
	cfg *config.Config,
	repo repository.TickerRepository,
	analyzer *usecase.Analyzer,
	m repository.Metrics,
) *session.Manager {
	return session.NewManager(repo, analyzer, m, cfg.Auth.Secret)
}

// ProvideHandler creates the dashboard HTTP handler.
func ProvideHandler(
	logger *applogger.Logger,
	sessions *session.Manager,
	feed repository.SentimentFeed,
) xhttp.Handler {
	return api.NewDashboardHandler(logger, sessions, feed)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
