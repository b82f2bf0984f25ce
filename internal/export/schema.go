package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

// BuildMetadataJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a valid exported MetadataRecord: DocumentType is
// required and canonical, every other field is a string or number.
func BuildMetadataJSONSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"DocumentType"},
		"properties": map[string]any{
			"DocumentType": map[string]any{
				"type": "string",
				"enum": constants.AsStringSlice(),
			},
		},
		"additionalProperties": map[string]any{
			"type": []string{"string", "number"},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
