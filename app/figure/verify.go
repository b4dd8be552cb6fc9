package figure

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var embeddedSchemaData []byte

// GenerateTemplateSchema generates JSON schema for the TemplateFile struct.
func GenerateTemplateSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&TemplateFile{})
	schema.Title = "Vizdash Templates Configuration"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// VerifyTemplates validates templates file data, yaml or toml, against the embedded JSON schema.
func VerifyTemplates(data []byte, isTOML bool) error {
	if len(embeddedSchemaData) == 0 {
		return errors.New("embedded templates schema is empty")
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	// decode into generic values for schema validation
	var cfg any
	if isTOML {
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to parse templates file: %w", err)
		}
		cfg = m
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse templates file: %w", err)
	}

	if err := schema.Validate(normalize(cfg)); err != nil {
		return fmt.Errorf("templates validation failed: %w", err)
	}
	return nil
}

// normalize converts decoded yaml/toml values to the json-like shapes the validator expects:
// []map[string]any tables become []any and integer types become float64.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for k, item := range val {
			res[k] = normalize(item)
		}
		return res
	case []map[string]any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = normalize(item)
		}
		return res
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = normalize(item)
		}
		return res
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return v
	}
}
