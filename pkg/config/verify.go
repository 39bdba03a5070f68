package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Only top-level sections and enumerated values are checked.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Ref   string                    `json:"$ref"`
		Defs  map[string]map[string]any `json:"$defs"`
		Props map[string]any            `json:"properties"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.Defs["Config"]
	if !ok {
		return fmt.Errorf("schema has no Config definition")
	}
	props, _ := root["properties"].(map[string]any)
	for key := range configMap {
		if _, ok := props[key]; !ok {
			return fmt.Errorf("unknown config section %q", key)
		}
	}

	if err := checkEnum(schema.Defs, "CacheConfig", "type", cfg.Cache.Type); err != nil {
		return err
	}
	if err := checkEnum(schema.Defs, "TranslateConfig", "provider", cfg.Keywords.Translate.Provider); err != nil {
		return err
	}
	if err := checkEnum(schema.Defs, "TaggerConfig", "type", cfg.Keywords.Tagger.Type); err != nil {
		return err
	}
	return nil
}

// checkEnum verifies value is one of enum values of def.field, missing enum allows anything
func checkEnum(defs map[string]map[string]any, def, field, value string) error {
	props, _ := defs[def]["properties"].(map[string]any)
	prop, _ := props[field].(map[string]any)
	enum, ok := prop["enum"].([]any)
	if !ok {
		return nil
	}
	for _, e := range enum {
		if e == value {
			return nil
		}
	}
	return fmt.Errorf("%s.%s: %q is not one of %v", def, field, value, enum)
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
