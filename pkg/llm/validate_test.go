package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v, err := NewValidator(personSchema())
	require.NoError(t, err)

	tests := []struct {
		name string
		data string
		ok   bool
	}{
		{"valid", `{"name":"Jane","tags":["a"]}`, true},
		{"optional absent", `{"name":"Jane"}`, true},
		{"missing required", `{"tags":[]}`, false},
		{"null string", `{"name":null}`, false},
		{"unknown property", `{"name":"Jane","age":3}`, false},
		{"wrong item type", `{"name":"Jane","tags":[1]}`, false},
		{"not json", `name: Jane`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]byte(tt.data))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateJSONAgainstSchema_Caches(t *testing.T) {
	s := personSchema()
	require.NoError(t, ValidateJSONAgainstSchema(s, []byte(`{"name":"x"}`)))
	require.Error(t, ValidateJSONAgainstSchema(s, []byte(`{}`)))

	validatorsMu.Lock()
	_, ok := validators[s]
	validatorsMu.Unlock()
	assert.True(t, ok)
}
