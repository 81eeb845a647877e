package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todos.schema.json"

// schemaJSON describes the on-disk task document. Unknown keys are allowed.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["todos"],
  "properties": {
    "todos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "description", "done"],
        "properties": {
          "id": {"type": "integer", "minimum": 0},
          "description": {"type": "string"},
          "done": {"type": "boolean"}
        }
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// validate checks raw JSON against the task document schema.
func validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after document")
	}

	if err := schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return firstCause(ve)
		}
		return err
	}
	return nil
}

// firstCause returns the deepest leftmost schema violation as a path-qualified error.
func firstCause(ve *jsonschema.ValidationError) error {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	path := strings.TrimPrefix(ve.InstanceLocation, "/")
	if path == "" {
		return fmt.Errorf("%s", ve.Message)
	}
	return fmt.Errorf("%s: %s", path, ve.Message)
}
