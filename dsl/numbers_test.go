package dsl_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystgo/catalyst/dsl"
)

func TestInt(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		cases := map[string]any{
			"int":            7,
			"int64":          int64(7),
			"uint8":          uint8(7),
			"integral float": float64(7),
			"json number":    json.Number("7"),
			"string":         "7",
		}
		for name, raw := range cases {
			t.Run(name, func(t *testing.T) {
				v, fe := one(t, dsl.Int(), raw)
				require.Nil(t, fe)
				assert.Equal(t, 7, v)
			})
		}
	})

	t.Run("fractional input rejected not truncated", func(t *testing.T) {
		for _, raw := range []any{7.5, json.Number("7.5"), "7.5"} {
			_, fe := one(t, dsl.Int(), raw)
			assert.NotNil(t, fe, "raw %v", raw)
		}
	})

	t.Run("non numeric rejected", func(t *testing.T) {
		_, fe := one(t, dsl.Int(), true)
		assert.NotNil(t, fe)
	})
}

func TestFloat(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		for _, raw := range []any{1.5, float32(1.5), json.Number("1.5"), "1.5"} {
			v, fe := one(t, dsl.Float(), raw)
			require.Nil(t, fe)
			assert.Equal(t, 1.5, v)
		}
		v, fe := one(t, dsl.Float(), 3)
		require.Nil(t, fe)
		assert.Equal(t, 3.0, v)
	})

	t.Run("nan folds to nil", func(t *testing.T) {
		v, fe := one(t, dsl.Float(), math.NaN())
		require.Nil(t, fe)
		assert.Nil(t, v)

		v, fe = one(t, dsl.Float(), math.Inf(1))
		require.Nil(t, fe)
		assert.Nil(t, v)
	})

	t.Run("keep nan variant passes it through", func(t *testing.T) {
		v, fe := one(t, dsl.FloatKeepNaN(), math.NaN())
		require.Nil(t, fe)
		require.IsType(t, 0.0, v)
		assert.True(t, math.IsNaN(v.(float64)))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, fe := one(t, dsl.Float(), "one point five")
		assert.NotNil(t, fe)
	})
}

func TestDecimal(t *testing.T) {
	t.Run("string loads exactly", func(t *testing.T) {
		v, fe := one(t, dsl.Decimal(), "0.1")
		require.Nil(t, fe)
		d := v.(decimal.Decimal)
		assert.True(t, d.Equal(decimal.RequireFromString("0.1")))
	})

	t.Run("places round half away from zero", func(t *testing.T) {
		v, fe := one(t, dsl.Decimal(2), "3.145")
		require.Nil(t, fe)
		assert.Equal(t, "3.15", v.(decimal.Decimal).String())
	})

	t.Run("bankers rounding", func(t *testing.T) {
		v, fe := one(t, dsl.DecimalBankers(2), "3.145")
		require.Nil(t, fe)
		assert.Equal(t, "3.14", v.(decimal.Decimal).String())
	})

	t.Run("json numbers load", func(t *testing.T) {
		v, fe := one(t, dsl.Decimal(), json.Number("99.99"))
		require.Nil(t, fe)
		assert.True(t, v.(decimal.Decimal).Equal(decimal.RequireFromString("99.99")))
	})

	t.Run("dump emits fixed point strings", func(t *testing.T) {
		v, err := oneDump(t, dsl.Decimal(2), decimal.RequireFromString("5"))
		require.NoError(t, err)
		assert.Equal(t, "5.00", v)

		v, err = oneDump(t, dsl.Decimal(), decimal.RequireFromString("5.5"))
		require.NoError(t, err)
		assert.Equal(t, "5.5", v)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, fe := one(t, dsl.Decimal(), "1.2.3")
		assert.NotNil(t, fe)
	})
}
