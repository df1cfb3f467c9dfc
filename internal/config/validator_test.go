package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvDBUser, "user")
	t.Setenv(EnvDBPassword, "secret")
	t.Setenv(EnvDBHost, "localhost")
	t.Setenv(EnvDBPort, "5432")
	t.Setenv(EnvDBName, "inventory")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingPostgresVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvDBUser, "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvDBPassword)
	assert.NotContains(t, err.Error(), EnvDBUser)
}

func TestValidateEnv_MemoryNeedsNoDatabase(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvStorageDriver, "memory")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_DoesNotGrowRequiredList(t *testing.T) {
	clearEnvVars(t)
	setPostgresEnv(t)
	before := len(RequiredEnvVars)

	require.NoError(t, ValidateEnv())
	require.NoError(t, ValidateEnv())
	assert.Len(t, RequiredEnvVars, before)
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("insecure example values", func(t *testing.T) {
		clearEnvVars(t)
		setPostgresEnv(t)
		t.Setenv(EnvDBPassword, ExampleDBPassword)
		t.Setenv(EnvAPIKey, ExampleAPIKey)
		t.Setenv(EnvAdminPassword, ExampleAdminPassword)

		warnings, err := ValidateEnvWithWarnings()

		require.NoError(t, err)
		assert.Equal(t, []string{WarnMsgExampleDBPassword, WarnMsgExampleAPIKey, WarnMsgExampleAdminPassword}, warnings)
	})

	t.Run("missing api key", func(t *testing.T) {
		clearEnvVars(t)
		setPostgresEnv(t)

		warnings, err := ValidateEnvWithWarnings()

		require.NoError(t, err)
		assert.Equal(t, []string{WarnMsgNoAPIKey}, warnings)
	})

	t.Run("clean", func(t *testing.T) {
		clearEnvVars(t)
		setPostgresEnv(t)
		t.Setenv(EnvAPIKey, "0123456789abcdef")

		warnings, err := ValidateEnvWithWarnings()

		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("propagates validation error", func(t *testing.T) {
		clearEnvVars(t)

		warnings, err := ValidateEnvWithWarnings()

		require.Error(t, err)
		assert.Nil(t, warnings)
	})
}
