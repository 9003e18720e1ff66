package dsl_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystgo/catalyst"
	"github.com/catalystgo/catalyst/dsl"
)

func TestBuilderChaining(t *testing.T) {
	t.Run("declaration order survives", func(t *testing.T) {
		s := dsl.Object().
			Field("c", dsl.Int()).
			Field("a", dsl.Int()).
			Field("b", dsl.Int()).
			MustBuild()
		assert.Equal(t, []string{"c", "a", "b"}, s.FieldNames())
	})

	t.Run("spec checks and step options combine", func(t *testing.T) {
		ctx := context.Background()
		s := dsl.Object().
			Field("code", dsl.String().Length(2, 4).Match(`^[a-z]+$`)).Required().
			MustBuild()

		res, err := s.Load(ctx, map[string]any{"code": "ok"})
		require.NoError(t, err)
		assert.True(t, res.IsValid())

		res, err = s.Load(ctx, map[string]any{"code": "TOOLONG"})
		require.NoError(t, err)
		assert.False(t, res.IsValid())

		res, err = s.Load(ctx, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, catalyst.CodeRequired, res.Errors["code"].Code)
	})

	t.Run("step level validators append", func(t *testing.T) {
		ctx := context.Background()
		s := dsl.Object().
			Field("n", dsl.Int()).Validate(catalyst.OneOf(1, 2, 3)).
			MustBuild()
		res, err := s.Load(ctx, map[string]any{"n": 9})
		require.NoError(t, err)
		assert.Equal(t, "not_member", res.Errors["n"].Rule)
	})

	t.Run("builder options reachable after a field", func(t *testing.T) {
		ctx := context.Background()
		s := dsl.Object().
			Field("a", dsl.Int()).Required().
			Field("b", dsl.Int()).Required().
			Rule("sum", []string{"a", "b"}, func(ctx context.Context, valid map[string]any) error {
				if valid["a"].(int)+valid["b"].(int) > 10 {
					return fmt.Errorf("sum too large")
				}
				return nil
			}).
			RaiseError().
			MustBuild()

		_, err := s.Load(ctx, map[string]any{"a": 6, "b": 6})
		require.Error(t, err)
		res, ok := catalyst.AsInvalid(err)
		require.True(t, ok)
		assert.Equal(t, "sum", res.Errors["a"].Rule)
	})

	t.Run("build reports configuration errors", func(t *testing.T) {
		_, err := dsl.Object().
			Field("dup", dsl.Int()).
			Field("dup", dsl.Int()).
			Build()
		require.Error(t, err)
	})

	t.Run("must build panics on them", func(t *testing.T) {
		assert.Panics(t, func() {
			dsl.Object().
				Field("dup", dsl.Int()).
				Field("dup", dsl.Int()).
				MustBuild()
		})
	})
}

func TestRegistry(t *testing.T) {
	t.Run("builtins resolve", func(t *testing.T) {
		for _, name := range []string{"string", "bool", "int", "float", "decimal", "datetime", "date", "time", "uuid", "raw", "timestamp"} {
			assert.NotNil(t, dsl.Of(name), name)
		}
	})

	t.Run("of returns fresh specs", func(t *testing.T) {
		a := dsl.Of("string")
		b := dsl.Of("string")
		assert.NotSame(t, a, b)
	})

	t.Run("custom registration", func(t *testing.T) {
		dsl.Register("slug", func() *dsl.Spec {
			return dsl.String().Match(`^[a-z0-9-]+$`)
		})
		assert.Contains(t, dsl.Names(), "slug")

		ctx := context.Background()
		s := dsl.Object().Field("slug", dsl.Of("slug")).MustBuild()
		res, err := s.Load(ctx, map[string]any{"slug": "Bad Slug"})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
	})

	t.Run("unknown name panics", func(t *testing.T) {
		assert.Panics(t, func() { dsl.Of("no-such-spec") })
	})
}
