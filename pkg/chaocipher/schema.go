package chaocipher

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// specSchemaDocument is the JSON Schema a RotorStateSpec document must
// satisfy, checked before FromSpec ever sees the document's fields. This
// backs the `config validate` CLI command (spec.md's DOMAIN STACK calls for
// schema-checked configuration loading, the way pkg/enigma's settings are
// only ever trusted after JSON structural validation).
const specSchemaDocument = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://github.com/coredds/chaocipher/rotor-state-spec.json",
  "title": "RotorStateSpec",
  "type": "object",
  "required": ["alphabet", "plain", "cipher", "text_index"],
  "properties": {
    "alphabet": { "type": "string", "minLength": 1 },
    "plain": { "type": "string", "minLength": 1 },
    "cipher": { "type": "string", "minLength": 1 },
    "text_index": { "type": "integer", "minimum": 0 }
  },
  "additionalProperties": false
}`

var specSchema = mustCompileSpecSchema()

func mustCompileSpecSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	const resourceName = "rotor-state-spec.json"
	if err := compiler.AddResource(resourceName, bytes.NewReader([]byte(specSchemaDocument))); err != nil {
		panic(fmt.Sprintf("chaocipher: invalid embedded rotor spec schema: %v", err))
	}
	schema, err := compiler.Compile(resourceName)
	if err != nil {
		panic(fmt.Sprintf("chaocipher: failed to compile embedded rotor spec schema: %v", err))
	}
	return schema
}

// ValidateSpecJSON checks that data is a well-formed RotorStateSpec document
// according to specSchema, independent of whether its contents describe a
// consistent rotor (that deeper check happens in FromSpec).
func ValidateSpecJSON(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := specSchema.Validate(doc); err != nil {
		return err
	}
	return nil
}
