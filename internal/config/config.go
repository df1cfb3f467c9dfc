package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string

	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // empty disables API key authentication
	TrustedProxies []string
	RequestLimit   int

	RateFeedURL         string
	RateRefreshInterval time.Duration
	RateFallback        int

	// SeedFile overrides the embedded starter catalog
	SeedFile      string
	AdminName     string
	AdminPassword string

	WorkerCount     int
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment, loading .env first when present
func Load() (*Config, error) {
	// real environment variables win over .env
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, ""),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),

		StorageDriver: strings.ToLower(getEnv(EnvStorageDriver, StorageDriverPostgres)),
		DBUser:        getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:    getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:        getEnv(EnvDBHost, DefaultDBHost),
		DBPort:        getEnv(EnvDBPort, DefaultDBPort),
		DBName:        getEnv(EnvDBName, DefaultDBName),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		RateFeedURL: getEnv(EnvRateFeedURL, DefaultRateFeedURL),

		SeedFile:      getEnv(EnvSeedFile, ""),
		AdminName:     strings.TrimSpace(getEnv(EnvAdminName, "")),
		AdminPassword: getEnv(EnvAdminPassword, ""),
	}

	var errs []error
	intVar := func(dst *int, key string, def int) {
		v, err := parseInt(key, def)
		errs = append(errs, err)
		*dst = v
	}
	durVar := func(dst *time.Duration, key string, def time.Duration) {
		v, err := parseDuration(key, def)
		errs = append(errs, err)
		*dst = v
	}

	intVar(&cfg.Port, EnvPort, DefaultPort)
	intVar(&cfg.DBMaxConns, EnvDBMaxConns, DefaultDBMaxConns)
	intVar(&cfg.RequestLimit, EnvRequestLimit, DefaultRequestLimit)
	intVar(&cfg.RateFallback, EnvRateFallback, DefaultRateFallback)
	intVar(&cfg.WorkerCount, EnvWorkerCount, DefaultWorkerCount)
	durVar(&cfg.DBMaxConnIdleTime, EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime)
	durVar(&cfg.DBMaxConnLifetime, EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime)
	durVar(&cfg.RateRefreshInterval, EnvRateRefreshInterval, DefaultRateRefreshInterval)
	durVar(&cfg.ShutdownTimeout, EnvShutdownTimeout, DefaultShutdownTimeout)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints and value ranges
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgPortOutOfRange, EnvPort, c.Port))
	}
	if c.StorageDriver != StorageDriverPostgres && c.StorageDriver != StorageDriverMemory {
		errs = append(errs, fmt.Errorf(ErrMsgUnknownStorage, EnvStorageDriver, StorageDriverPostgres, StorageDriverMemory, c.StorageDriver))
	}
	for key, v := range map[string]int{
		EnvDBMaxConns:   c.DBMaxConns,
		EnvRequestLimit: c.RequestLimit,
		EnvRateFallback: c.RateFallback,
		EnvWorkerCount:  c.WorkerCount,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgMustBePositive, key, v))
		}
	}
	if c.RateRefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositive, EnvRateRefreshInterval, c.RateRefreshInterval))
	}
	if _, err := url.ParseRequestURI(c.RateFeedURL); err != nil {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidURLFmt, EnvRateFeedURL, err))
	}
	if (c.AdminName == "") != (c.AdminPassword == "") {
		errs = append(errs, fmt.Errorf(ErrMsgAdminPairIncomplete, EnvAdminName, EnvAdminPassword))
	}

	return errors.Join(errs...)
}

// UsesPostgres reports whether the postgres storage driver is selected
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == StorageDriverPostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return c.ConnStringFor(c.DBName)
}

// ConnStringFor returns a connection string for another database on the same
// server, such as the maintenance database used to create or drop DBName.
func (c *Config) ConnStringFor(dbName string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	v, err := parseInt(key, defaultValue)
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration returns the duration value of key, or defaultValue when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := parseDuration(key, defaultValue)
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidValueFmt, key, raw, err)
	}
	return v, nil
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidValueFmt, key, raw, err)
	}
	return v, nil
}
