package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must always be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
}

// RequiredPostgresEnvVars must be set unless STORAGE_DRIVER=memory
var RequiredPostgresEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaUnset, EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if !strings.EqualFold(os.Getenv(EnvStorageDriver), StorageDriverMemory) {
		required = append(required[:len(required):len(required)], RequiredPostgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingRequired, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and also reports non-fatal
// problems such as example secrets left in place.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}

	switch os.Getenv(EnvAPIKey) {
	case "":
		warnings = append(warnings, WarnMsgNoAPIKey)
	case ExampleAPIKey:
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}

	if os.Getenv(EnvAdminPassword) == ExampleAdminPassword {
		warnings = append(warnings, WarnMsgExampleAdminPassword)
	}

	return warnings, nil
}
