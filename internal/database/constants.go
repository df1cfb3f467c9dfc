package database

// Pool settings
const (
	// DefaultMinConnections stay open between bursts of trades
	DefaultMinConnections int32 = 2

	// ApplicationName tags our sessions in pg_stat_activity
	ApplicationName = "inventory-ledger"
)

// Migration settings
const (
	MigrationsDir    = "migrations"
	MigrationDialect = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read schema version"
)

// Log Messages
const (
	LogMsgLedgerPoolReady   = "Ledger connection pool ready"
	LogMsgMigrationsApplied = "Database migrations applied"
)
