package infra_kinopoisk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AdAndRoll/movie-search-server/internal/config"
	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	moviePath    = "/v1.4/movie"
	apiKeyHeader = "X-API-KEY"

	// Error bodies are only echoed into logs.
	maxErrorBody = 512
)

type searchResponse struct {
	Docs  []model.Movie `json:"docs"`
	Total int           `json:"total"`
	Limit int           `json:"limit"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// Client searches the Kinopoisk catalog. Every Search is a single request;
// repeated failures open the breaker and later calls fail fast.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]model.Movie]

	logger *slog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg config.Catalog, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = newBreaker(cfg.Breaker, c.logger)
	return c
}

func newBreaker(cfg config.Breaker, logger *slog.Logger) *gobreaker.CircuitBreaker[[]model.Movie] {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	return gobreaker.NewCircuitBreaker[[]model.Movie](gobreaker.Settings{
		Name:        "kinopoisk",
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

func (c *Client) Search(ctx context.Context, q usecase_aggregation.CatalogQuery) ([]model.Movie, error) {
	movies, err := c.breaker.Execute(func() ([]model.Movie, error) {
		return c.search(ctx, q)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", usecase_aggregation.ErrExternalAPI, err)
		}
		return nil, err
	}
	return movies, nil
}

func (c *Client) search(ctx context.Context, q usecase_aggregation.CatalogQuery) ([]model.Movie, error) {
	endpoint := c.baseURL + moviePath + "?" + EncodeQuery(q).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase_aggregation.ErrExternalAPI, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("catalog responded",
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: catalog returned status %d: %s",
			usecase_aggregation.ErrExternalAPI, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog response: %w", usecase_aggregation.ErrExternalAPI, err)
	}

	if out.Docs == nil {
		out.Docs = []model.Movie{}
	}
	return out.Docs, nil
}
