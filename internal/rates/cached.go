package rates

import (
	"context"
	"sync/atomic"

	"github.com/osse101/InventoryApp_Go/internal/logger"
)

// CachedFeed serves the last fetched rate so requests never wait on the
// upstream. Refresh is run periodically by the scheduler.
type CachedFeed struct {
	client *Client
	rate   atomic.Int64
}

// NewCachedFeed starts with the client's fallback rate until the first refresh
func NewCachedFeed(client *Client) *CachedFeed {
	f := &CachedFeed{client: client}
	f.rate.Store(int64(client.Fallback()))
	return f
}

// GetGemPriceInGold returns the cached rate
func (f *CachedFeed) GetGemPriceInGold(ctx context.Context) int {
	return int(f.rate.Load())
}

// Refresh fetches a new rate. A failed fetch stores the fallback.
func (f *CachedFeed) Refresh(ctx context.Context) {
	logger.FromContext(ctx).Debug(LogMsgRateRefresh)
	f.rate.Store(int64(f.client.GetGemPriceInGold(ctx)))
}

// Process lets the feed run as a worker job
func (f *CachedFeed) Process(ctx context.Context) error {
	f.Refresh(ctx)
	return nil
}
