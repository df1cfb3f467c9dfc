package rates

import "time"

// Defaults for the gem price feed
const (
	// DefaultFallbackRate is the gem price used whenever the feed is unusable
	DefaultFallbackRate = 80
	// PriceDivisor converts the upstream quote into gold per gem
	PriceDivisor         = 1000
	DefaultTimeout       = 5 * time.Second
	DefaultRetryAttempts = 2
	DefaultRetryDelay    = 200 * time.Millisecond
	DefaultRefresh       = time.Minute
)

// Error messages
const (
	ErrMsgBuildRequestFailed = "failed to build rate request: %w"
	ErrMsgRequestFailed      = "rate request failed: %w"
	ErrMsgUnexpectedStatus   = "rate feed returned status %d"
	ErrMsgDecodeFailed       = "failed to decode rate response: %w"
	ErrMsgParsePriceFailed   = "failed to parse price %q: %w"
	ErrMsgNonPositiveRate    = "derived rate %s is below one gold"
)

// Log messages
const (
	LogMsgRateFetched  = "Gem rate fetched"
	LogMsgRateFallback = "Gem rate unavailable, using fallback"
	LogMsgRateRefresh  = "Refreshing gem rate"
)
