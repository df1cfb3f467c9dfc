package seed

// Schema registration name for starter data files
const SchemaName = "items.schema.json"

// Error messages
const (
	ErrMsgReadFileFailed     = "failed to read seed file %s: %w"
	ErrMsgSchemaFailed       = "seed file %s failed schema validation: %w"
	ErrMsgParseFailed        = "failed to parse seed file %s: %w"
	ErrMsgDuplicateNameFmt   = "%w: duplicate item %q"
	ErrMsgCountItemsFailed   = "failed to count items: %w"
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgInsertItemFailed   = "failed to insert item %q: %w"
	ErrMsgCommitFailed       = "failed to commit seed items: %w"
	ErrMsgGetPlayerFailed    = "failed to look up player %q: %w"
	ErrMsgCreatePlayerFailed = "failed to create player %q: %w"
)

// Log messages
const (
	LogMsgCatalogNotEmpty = "Catalog already populated, skipping seed"
	LogMsgItemsSeeded     = "Seeded starter items"
	LogMsgPlayerSeeded    = "Seeded starter player"
)
