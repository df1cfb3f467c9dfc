// Package validation checks JSON documents against JSON schemas registered
// from memory, typically embedded files.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrUnknownSchema is returned when validating against a name never registered
var ErrUnknownSchema = errors.New("unknown schema")

// SchemaValidator validates JSON data against named JSON schemas
type SchemaValidator interface {
	Register(name string, schema []byte) error
	ValidateBytes(data []byte, name string) error
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Register compiles schema under name. Registering a name twice keeps the first.
func (v *validator) Register(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", name, err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	v.schemas[name] = compiled
	return nil
}

// ValidateBytes validates JSON data against the schema registered as name
func (v *validator) ValidateBytes(data []byte, name string) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
