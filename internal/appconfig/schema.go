// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema is the JSON schema every config file must satisfy before it is
// handed to viper. Unknown keys are rejected so typos surface immediately.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"mainReport":    map[string]any{"type": "string", "minLength": 1},
		"currentReport": map[string]any{"type": "string", "minLength": 1},
		"output":        map[string]any{"type": "string", "minLength": 1},
		"excludeMarkers": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"debug":   map[string]any{"type": "boolean"},
		"logFile": map[string]any{"type": "string"},
	},
}

// ValidateBytes checks a raw config document against the embedded schema and
// returns a single error naming every violation.
func ValidateBytes(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("config schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

// ValidateFile validates the config file at path. A missing file is fine: the
// defaults cover everything.
func ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return ValidateBytes(raw)
}
