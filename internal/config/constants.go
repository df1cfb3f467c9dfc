package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion       = "ENV_SCHEMA_VERSION"
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogDir              = "LOG_DIR"
	EnvEnvironment         = "ENVIRONMENT"
	EnvStorageDriver       = "STORAGE_DRIVER"
	EnvDBUser              = "DB_USER"
	EnvDBPassword          = "DB_PASSWORD"
	EnvDBHost              = "DB_HOST"
	EnvDBPort              = "DB_PORT"
	EnvDBName              = "DB_NAME"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvAPIKey              = "API_KEY"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvRequestLimit        = "REQUEST_LIMIT"
	EnvRateFeedURL         = "RATE_FEED_URL"
	EnvRateRefreshInterval = "RATE_REFRESH_INTERVAL"
	EnvRateFallback        = "RATE_FALLBACK"
	EnvSeedFile            = "SEED_FILE"
	EnvAdminName           = "ADMIN_NAME"
	EnvAdminPassword       = "ADMIN_PASSWORD"
	EnvWorkerCount         = "WORKER_COUNT"
	EnvShutdownTimeout     = "SHUTDOWN_TIMEOUT"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultDBUser              = "postgres"
	DefaultDBPassword          = "postgres"
	DefaultDBHost              = "localhost"
	DefaultDBPort              = "5432"
	DefaultDBName              = "inventory"
	DefaultDBMaxConns          = 20
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
	DefaultRequestLimit        = 1000
	DefaultRateFeedURL         = "https://api.binance.com/api/v3/ticker/price?symbol=BTCUSDT"
	DefaultRateRefreshInterval = time.Minute
	DefaultRateFallback        = 80
	DefaultWorkerCount         = 2
	DefaultShutdownTimeout     = 10 * time.Second
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword    = "change_this_secure_password"
	ExampleAPIKey        = "generate_with_openssl_rand_hex_32"
	ExampleAdminPassword = "change_this_admin_password"
)

// Error messages
const (
	ErrMsgInvalidValueFmt     = "invalid %s value %q: %w"
	ErrMsgInvalidURLFmt       = "invalid %s: %w"
	ErrMsgPortOutOfRange      = "%s must be between 1 and 65535, got %d"
	ErrMsgUnknownStorage      = "%s must be %q or %q, got %q"
	ErrMsgMustBePositive      = "%s must be positive, got %v"
	ErrMsgAdminPairIncomplete = "%s and %s must be set together"
	ErrMsgSchemaUnset         = "%s is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatch      = "%s mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingRequired     = "missing required environment variables: %s"
)

// Warnings
const (
	WarnMsgExampleDBPassword    = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey        = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgNoAPIKey             = "API_KEY is empty - the API will accept unauthenticated requests"
	WarnMsgExampleAdminPassword = "ADMIN_PASSWORD appears to be using the example value - please choose a real password"
)
