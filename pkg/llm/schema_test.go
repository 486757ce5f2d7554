package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name": {Type: TypeString, Description: "Full name."},
			"tags": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
		Required: []string{"name"},
	}
}

func TestSchema_PropertyNames(t *testing.T) {
	s := personSchema()
	assert.Equal(t, []string{"name", "tags"}, s.PropertyNames())

	s.Order = []string{"tags", "name"}
	assert.Equal(t, []string{"tags", "name"}, s.PropertyNames())
}

func TestSchema_JSONSchema(t *testing.T) {
	out := personSchema().JSONSchema()

	assert.Equal(t, "object", out["type"])
	assert.Equal(t, false, out["additionalProperties"])
	assert.Equal(t, []string{"name"}, out["required"])

	props, ok := out["properties"].(map[string]any)
	require.True(t, ok)
	name, ok := props["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "Full name.", name["description"])

	tags := props["tags"].(map[string]any)
	assert.Equal(t, "array", tags["type"])
	assert.Equal(t, map[string]any{"type": "string"}, tags["items"])
}

func TestSchema_JSONSchema_Nil(t *testing.T) {
	var s *Schema
	assert.Empty(t, s.JSONSchema())
}
