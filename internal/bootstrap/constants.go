package bootstrap

// File System Permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Logger Configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many session logs survive a cleanup, the new one included
	LogFileRetentionCount = 10

	ServiceName = "inventory"
)

// Worker pool sizing for background jobs
const (
	WorkerQueueSize = 16
)

// Log messages
const (
	LogMsgStarting            = "Starting inventory service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStorageReady        = "Storage ready"
	LogMsgSeedApplied         = "Starter data applied"

	LogMsgAdminEnsured       = "Administrator account ensured"
	LogMsgRateFeedScheduled  = "Rate feed refresh scheduled"
	LogMsgShuttingDownServer = "Shutting down server..."
	LogMsgServerStopped      = "Server stopped"
	LogMsgServerForcedStop   = "Server forced to shutdown"
	LogMsgFailedDeleteOldLog = "Failed to delete old log file"
)

// Error messages
const (
	ErrMsgCreateLogsDirFailed = "failed to create logs directory: %w"
	ErrMsgOpenLogFileFailed   = "failed to open log file: %w"
	ErrMsgConnectFailed       = "failed to connect to database: %w"
	ErrMsgMigrateFailed       = "failed to apply migrations: %w"
	ErrMsgSeedLoaderFailed    = "failed to create seed loader: %w"
	ErrMsgSeedLoadFailed      = "failed to load seed data: %w"
	ErrMsgSeedApplyFailed     = "failed to apply seed data: %w"
	ErrMsgEnsureAdminFailed   = "failed to ensure administrator %q: %w"
)
