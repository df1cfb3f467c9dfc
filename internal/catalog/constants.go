package catalog

import "time"

// Cache settings
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute

	// DefaultSuggestionLimit caps "did you mean" results
	DefaultSuggestionLimit = 3
)

// Error messages
const (
	ErrMsgItemNotFoundFmt    = "item %q: %w"
	ErrMsgEmptyNameFmt       = "item name must not be empty: %w"
	ErrMsgNameTooLongFmt     = "item name longer than %d characters: %w"
	ErrMsgPaddedNameFmt      = "item name %q has leading or trailing whitespace: %w"
	ErrMsgNegativePriceFmt   = "price %d is negative: %w"
	ErrMsgPriceTooHighFmt    = "price %d exceeds %d: %w"
	ErrMsgInvalidCurrencyFmt = "unknown currency %q: %w"
	ErrMsgDuplicateItemFmt   = "item %q already exists: %w"
	ErrMsgActorNotFoundFmt   = "acting player %q not found: %w"
	ErrMsgNotAdminFmt        = "player %q is not an administrator: %w"
	ErrMsgGetItemFailed      = "failed to get item: %w"
	ErrMsgListItemsFailed    = "failed to list items: %w"
	ErrMsgGetPlayerFailed    = "failed to get player: %w"
	ErrMsgInsertItemFailed   = "failed to insert item: %w"
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed     = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgCreateItemCalled = "CreateItem called"
	LogMsgItemCreated      = "Item created"
	LogMsgCacheHit         = "Catalog cache hit"
)
