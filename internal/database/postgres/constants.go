package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction: %w"
	ErrMsgFailedToRollback         = "Failed to rollback transaction"
)

// Error Messages - Queries
const (
	ErrMsgGetPlayerFailed     = "failed to get player %q: %w"
	ErrMsgLockPlayerFailed    = "failed to lock player %q: %w"
	ErrMsgInsertPlayerFailed  = "failed to insert player: %w"
	ErrMsgUpdateBalanceFailed = "failed to update balances: %w"
	ErrMsgSetAdminFailed      = "failed to set admin flag: %w"
	ErrMsgNoSuchPlayerIDFmt   = "player id %s: %w"
	ErrMsgGetItemFailed       = "failed to get item %q: %w"
	ErrMsgListItemsFailed     = "failed to list items: %w"
	ErrMsgCountItemsFailed    = "failed to count items: %w"
	ErrMsgInsertItemFailed    = "failed to insert item: %w"
	ErrMsgScanItemFailed      = "failed to scan item: %w"
	ErrMsgGetSlotFailed       = "failed to get inventory slot: %w"
	ErrMsgUpsertSlotFailed    = "failed to write inventory slot: %w"
	ErrMsgDeleteSlotFailed    = "failed to delete inventory slot: %w"
	ErrMsgGetInventoryFailed  = "failed to get inventory: %w"
	ErrMsgScanInventoryFailed = "failed to scan inventory row: %w"
	ErrMsgNegativeSlotFmt     = "negative slot amount %d: %w"
)
