package catalyst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystgo/catalyst"
)

func TestLoadResultBuckets(t *testing.T) {
	res := catalyst.NewResult()
	assert.True(t, res.IsValid())

	res.AddValid("a", 1)
	res.AddInvalid("b", "raw", &catalyst.FieldError{Code: catalyst.CodeConversion, Message: "nope"})
	res.AddValid("c", 3)

	assert.False(t, res.IsValid())
	assert.Equal(t, []string{"a", "b", "c"}, res.FieldOrder())
	assert.Equal(t, "raw", res.InvalidData["b"])
	require.NotNil(t, res.ErrorOf("b"))
	assert.Nil(t, res.ErrorOf("a"))
}

func TestLoadResultMessages(t *testing.T) {
	res := catalyst.NewResult()
	res.AddInvalid("plain", nil, &catalyst.FieldError{Code: catalyst.CodeValidation, Message: "first", Messages: []string{"first", "second"}})

	child := catalyst.NewResult()
	child.AddInvalid("inner", nil, &catalyst.FieldError{Code: catalyst.CodeRequired, Message: "missing"})
	res.AddInvalid("nested", nil, &catalyst.FieldError{Code: catalyst.CodeNested, Nested: child})

	msgs := res.ErrorMessages()
	assert.Equal(t, "first; second", msgs["plain"])
	assert.Contains(t, msgs["nested"], "inner")
}

func TestLoadResultString(t *testing.T) {
	res := catalyst.NewResult()
	res.AddValid("ok", 1)
	assert.Contains(t, res.String(), "valid")

	res.AddInvalid("bad", nil, &catalyst.FieldError{Code: catalyst.CodeNull})
	s := res.String()
	assert.Contains(t, s, "invalid")
	assert.Contains(t, s, "bad=null")
}

func TestMissingSentinel(t *testing.T) {
	assert.True(t, catalyst.IsMissing(catalyst.Missing))
	assert.False(t, catalyst.IsMissing(nil))
	assert.False(t, catalyst.IsMissing(""))
	assert.Equal(t, "<catalyst.missing>", catalyst.Missing.String())
}
