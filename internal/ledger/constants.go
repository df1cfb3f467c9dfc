package ledger

// ==================== Error Messages ====================

// Formatted error messages for lookups
const (
	ErrMsgPlayerNotFoundFmt  = "player %q: %w"
	ErrMsgItemNotFoundFmt    = "item %q: %w"
	ErrMsgNotInInventoryFmt  = "player %q has no %q: %w"
	ErrMsgEmptyNameFmt       = "%s must not be empty: %w"
	ErrMsgInvalidExchangeFmt = "invalid exchange (gems %d, rate %d): %w"
	ErrMsgNotAdminFmt        = "player %q is not an administrator: %w"
	ErrMsgActorNotFoundFmt   = "acting player %q not found: %w"
)

// Formatted error messages for balance rules
const (
	ErrMsgInsufficientFundsFmt = "cannot afford %q (price %d %s, balance %d): %w"
	ErrMsgSellOverflowFmt      = "selling %q would overflow %s wallet: %w: %w"
	ErrMsgExchangeMismatchFmt  = "exchange of %d gems at %d would go negative: %w"
	ErrMsgExchangeOverflowFmt  = "exchange of %d gems at %d would overflow: %w"
)

// Database operation error messages
const (
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgGetSlotFailed           = "failed to get inventory slot: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgUpdateBalancesFailed    = "failed to update balances: %w"
	ErrMsgUpdateSlotFailed        = "failed to update inventory slot: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyItemCalled      = "BuyItem called"
	LogMsgItemPurchased      = "Item purchased"
	LogMsgSellItemCalled     = "SellItem called"
	LogMsgItemSold           = "Item sold"
	LogMsgGrindCalled        = "ProcessGrind called"
	LogMsgGrindRewarded      = "Grind rewarded"
	LogMsgGrindCapped        = "Grind reward capped by wallet limit"
	LogMsgExchangeCalled     = "ExchangeGems called"
	LogMsgExchanged          = "Currency exchanged"
	LogMsgSetBalanceCalled   = "SetBalance called"
	LogMsgBalanceSet         = "Balance set"
	LogMsgGetInventoryCalled = "GetPlayerWithInventory called"
)

// ==================== Argument Names ====================

const (
	ArgPlayerName = "player name"
	ArgItemName   = "item name"
	ArgAdminName  = "admin name"
)

// ==================== Operation Names ====================

// Operation labels used when recording rejected requests
const (
	OperationBuy        = "buy"
	OperationSell       = "sell"
	OperationGrind      = "grind"
	OperationExchange   = "exchange"
	OperationSetBalance = "set_balance"
)
