package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardListSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"cards": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "integer", "minimum": 1},
					"rarity": {"enum": ["common", "rare"]}
				},
				"required": ["id", "rarity"]
			}
		}
	},
	"required": ["cards"]
}`

func TestSchemaValidator_Validate(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("cards", []byte(cardListSchema)))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid document", data: `{"cards": [{"id": 1, "rarity": "common"}]}`},
		{name: "empty list", data: `{"cards": []}`},
		{name: "missing required field", data: `{}`, errorMsg: "required"},
		{name: "bad enum value", data: `{"cards": [{"id": 1, "rarity": "mythic"}]}`, errorMsg: "/cards/0/rarity"},
		{name: "constraint violation", data: `{"cards": [{"id": 0, "rarity": "rare"}]}`, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"cards": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate("cards", []byte(tt.data))
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.Validate("missing", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestSchemaValidator_RegisterTwice(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("cards", []byte(cardListSchema)))
	assert.Error(t, v.Register("cards", []byte(cardListSchema)))
}

func TestSchemaValidator_RegisterFile(t *testing.T) {
	v := NewSchemaValidator()
	path := filepath.Join(t.TempDir(), "cards.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(cardListSchema), 0o644))

	require.NoError(t, v.RegisterFile(path))
	assert.NoError(t, v.Validate(path, []byte(`{"cards": []}`)))

	err := v.RegisterFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.Register("broken", []byte(`{"type": 12}`))
	assert.Error(t, err)
}
