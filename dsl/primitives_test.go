package dsl_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystgo/catalyst"
	"github.com/catalystgo/catalyst/dsl"
)

// one wraps a single spec into a one-field schema and loads raw through it.
func one(t *testing.T, spec *dsl.Spec, raw any) (any, *catalyst.FieldError) {
	t.Helper()
	s := dsl.Object().Field("v", spec).MustBuild()
	res, err := s.Load(context.Background(), map[string]any{"v": raw})
	require.NoError(t, err)
	if fe := res.ErrorOf("v"); fe != nil {
		return nil, fe
	}
	return res.ValidData["v"], nil
}

func oneDump(t *testing.T, spec *dsl.Spec, v any) (any, error) {
	t.Helper()
	s := dsl.Object().Field("v", spec).MustBuild()
	out, err := s.Dump(context.Background(), map[string]any{"v": v})
	if err != nil {
		return nil, err
	}
	return out["v"], nil
}

type stringerVal struct{ s string }

func (v stringerVal) String() string { return v.s }

func TestString(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		for _, raw := range []any{"plain", []byte("bytes"), stringerVal{s: "stringer"}} {
			v, fe := one(t, dsl.String(), raw)
			require.Nil(t, fe)
			assert.IsType(t, "", v)
		}
	})

	t.Run("numbers do not silently stringify", func(t *testing.T) {
		_, fe := one(t, dsl.String(), 42)
		require.NotNil(t, fe)
		assert.Equal(t, catalyst.CodeConversion, fe.Code)
	})

	t.Run("dump coerces the same way", func(t *testing.T) {
		v, err := oneDump(t, dsl.String(), []byte("b"))
		require.NoError(t, err)
		assert.Equal(t, "b", v)
	})
}

func TestBool(t *testing.T) {
	t.Run("native and spelled booleans", func(t *testing.T) {
		truthy := []any{true, "1", "y", "yes", "true", "True"}
		for _, raw := range truthy {
			v, fe := one(t, dsl.Bool(), raw)
			require.Nil(t, fe, "raw %v", raw)
			assert.Equal(t, true, v)
		}
		falsy := []any{false, "0", "n", "no", "false", "False"}
		for _, raw := range falsy {
			v, fe := one(t, dsl.Bool(), raw)
			require.Nil(t, fe, "raw %v", raw)
			assert.Equal(t, false, v)
		}
	})

	t.Run("unrecognized spelling fails", func(t *testing.T) {
		_, fe := one(t, dsl.Bool(), "oui")
		require.NotNil(t, fe)
		assert.Contains(t, fe.Message, "oui")
	})

	t.Run("numbers are not booleans", func(t *testing.T) {
		_, fe := one(t, dsl.Bool(), 1)
		assert.NotNil(t, fe)
	})

	t.Run("custom value map", func(t *testing.T) {
		spec := dsl.BoolValues(map[string]bool{"on": true, "off": false})
		v, fe := one(t, spec, "on")
		require.Nil(t, fe)
		assert.Equal(t, true, v)
		_, fe = one(t, spec, "yes")
		assert.NotNil(t, fe)
	})
}

func TestRaw(t *testing.T) {
	payload := map[string]any{"anything": []any{1, "two"}}
	v, fe := one(t, dsl.Raw(), payload)
	require.Nil(t, fe)
	assert.Equal(t, payload, v)
}

func TestConstant(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().
		Field("version", dsl.Constant("v2")).
		Field("name", dsl.String()).
		MustBuild()

	t.Run("dump emits the constant without a source attribute", func(t *testing.T) {
		out, err := s.Dump(ctx, map[string]any{"name": "x"})
		require.NoError(t, err)
		assert.Equal(t, "v2", out["version"])
	})

	t.Run("load overrides whatever was sent", func(t *testing.T) {
		res, err := s.Load(ctx, map[string]any{"version": "v999", "name": "x"})
		require.NoError(t, err)
		assert.Equal(t, "v2", res.ValidData["version"])
	})

	t.Run("load materializes the constant when the key is absent", func(t *testing.T) {
		res, err := s.Load(ctx, map[string]any{"name": "x"})
		require.NoError(t, err)
		require.True(t, res.IsValid())
		assert.Equal(t, "v2", res.ValidData["version"])
	})
}

func TestCallable(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().
		Field("name", dsl.String()).
		Field("shout", dsl.Callable(func(v any) (any, error) {
			return strings.ToUpper(v.(string)) + "!", nil
		})).Attr("name").
		MustBuild()

	t.Run("dump computes from the source attribute", func(t *testing.T) {
		out, err := s.Dump(ctx, map[string]any{"name": "go"})
		require.NoError(t, err)
		assert.Equal(t, "GO!", out["shout"])
	})

	t.Run("load ignores the computed field", func(t *testing.T) {
		res, err := s.Load(ctx, map[string]any{"name": "go", "shout": "GO!"})
		require.NoError(t, err)
		assert.True(t, res.IsValid())
		assert.NotContains(t, res.ValidData, "shout")
	})
}

func TestUUID(t *testing.T) {
	id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")

	t.Run("string loads to uuid", func(t *testing.T) {
		v, fe := one(t, dsl.UUID(), id.String())
		require.Nil(t, fe)
		assert.Equal(t, id, v)
	})

	t.Run("uuid passes through", func(t *testing.T) {
		v, fe := one(t, dsl.UUID(), id)
		require.Nil(t, fe)
		assert.Equal(t, id, v)
	})

	t.Run("malformed string fails", func(t *testing.T) {
		_, fe := one(t, dsl.UUID(), "not-a-uuid")
		require.NotNil(t, fe)
		assert.Equal(t, catalyst.CodeConversion, fe.Code)
	})

	t.Run("dump renders canonical form", func(t *testing.T) {
		v, err := oneDump(t, dsl.UUID(), id)
		require.NoError(t, err)
		assert.Equal(t, id.String(), v)
	})
}
