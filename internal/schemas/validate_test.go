package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const careerSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "requiredSkills"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "requiredSkills": {"type": "array", "items": {"type": "string"}}
  }
}`

func TestValidate_ValidJSON(t *testing.T) {
	err := ValidateString("career", careerSchema, `{"id":"data-scientist","requiredSkills":["statistics"]}`)
	assert.NoError(t, err)
}

func TestValidate_MissingField(t *testing.T) {
	err := ValidateString("career", careerSchema, `{"id":"data-scientist"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Error(), "career: validation failed")
}

func TestValidate_WrongType(t *testing.T) {
	err := ValidateString("career", careerSchema, `{"id":"x","requiredSkills":[1,2]}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Errors, 2)
	assert.Equal(t, "requiredSkills.0", validationErr.Errors[0].Field)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := ValidateString("career", careerSchema, `{ invalid json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "career", loadErr.Name)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestValidate_MalformedSchema(t *testing.T) {
	err := ValidateString("career", `{"type": 12}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
