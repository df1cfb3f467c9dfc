// Package rates provides the gem price in gold used by currency exchange.
// Upstream failures never reach callers: they get a fallback rate instead.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
)

// Provider returns the current price of one gem in gold. It never fails.
type Provider interface {
	GetGemPriceInGold(ctx context.Context) int
}

// tickerResponse is the upstream quote, e.g. {"symbol":"BTCUSDT","price":"64250.12"}
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// Client fetches the quote from a ticker endpoint
type Client struct {
	url        string
	httpClient *http.Client
	fallback   int
	attempts   uint64
	retryDelay time.Duration
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithFallback sets the rate returned when the feed is unusable
func WithFallback(rate int) ClientOption {
	return func(cl *Client) {
		if rate > 0 {
			cl.fallback = rate
		}
	}
}

// WithRetry sets how many extra attempts are made after a transport failure
func WithRetry(attempts uint64, delay time.Duration) ClientOption {
	return func(cl *Client) {
		cl.attempts = attempts
		if delay > 0 {
			cl.retryDelay = delay
		}
	}
}

// NewClient creates a rate client for url
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		fallback:   DefaultFallbackRate,
		attempts:   DefaultRetryAttempts,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fallback returns the rate used when the feed is unusable
func (c *Client) Fallback() int {
	return c.fallback
}

// GetGemPriceInGold returns price/1000 of the upstream quote, or the fallback
func (c *Client) GetGemPriceInGold(ctx context.Context) int {
	rate, err := c.Fetch(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRateFallback, "error", err, "fallback", c.fallback)
		metrics.RateFetches.WithLabelValues(metrics.ResultFallback).Inc()
		metrics.GemPriceInGold.Set(float64(c.fallback))
		return c.fallback
	}
	metrics.RateFetches.WithLabelValues(metrics.ResultOK).Inc()
	metrics.GemPriceInGold.Set(float64(rate))
	return rate
}

// Fetch queries the feed and returns the derived rate or the reason it is unusable
func (c *Client) Fetch(ctx context.Context) (int, error) {
	var price decimal.Decimal
	backoff := retry.WithMaxRetries(c.attempts, retry.NewConstant(c.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := c.fetchPrice(ctx)
		if err != nil {
			var retryable *transientError
			if errors.As(err, &retryable) {
				return retry.RetryableError(err)
			}
			return err
		}
		price = p
		return nil
	})
	if err != nil {
		return 0, err
	}

	rate := price.Div(decimal.NewFromInt(PriceDivisor)).Truncate(0)
	if !rate.IsPositive() {
		return 0, fmt.Errorf(ErrMsgNonPositiveRate, rate.String())
	}
	logger.FromContext(ctx).Debug(LogMsgRateFetched, "price", price.String(), "rate", rate.IntPart())
	return int(rate.IntPart()), nil
}

// transientError marks failures worth retrying: transport errors and 5xx
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func (c *Client) fetchPrice(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgBuildRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, &transientError{fmt.Errorf(ErrMsgRequestFailed, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf(ErrMsgUnexpectedStatus, resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError {
			return decimal.Zero, &transientError{statusErr}
		}
		return decimal.Zero, statusErr
	}

	var ticker tickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgDecodeFailed, err)
	}
	price, err := decimal.NewFromString(ticker.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgParsePriceFailed, ticker.Price, err)
	}
	return price, nil
}
