package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator checks model output against a compiled JSON-Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the JSON-Schema rendering of s.
func NewValidator(s *Schema) (*Validator, error) {
	b, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate decodes data as generic JSON and validates it.
func (v *Validator) Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

var (
	validatorsMu sync.Mutex
	validators   = map[*Schema]*Validator{}
)

// ValidateJSONAgainstSchema validates data against s, compiling s once per schema pointer.
func ValidateJSONAgainstSchema(s *Schema, data []byte) error {
	validatorsMu.Lock()
	v, ok := validators[s]
	if !ok {
		var err error
		v, err = NewValidator(s)
		if err != nil {
			validatorsMu.Unlock()
			return err
		}
		validators[s] = v
	}
	validatorsMu.Unlock()
	return v.Validate(data)
}
