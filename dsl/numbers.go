package dsl

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
)

// ---- Int ----

type intConverter struct{}

func (intConverter) Serialize(v any) (any, error)   { return coerceInt(v) }
func (intConverter) Deserialize(v any) (any, error) { return coerceInt(v) }

func coerceInt(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8, int16, int32, int64:
		return int(reflect.ValueOf(n).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(n).Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("integer overflow: %d", u)
		}
		return int(u), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, fmt.Errorf("not an integral number: %v", n)
		}
		return int(n), nil
	case float32:
		return coerceInt(float64(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", n.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", n)
		}
		return int(i), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to int", v)
}

// Int declares an integer field. Strings and JSON numbers parse; fractional
// floats are rejected rather than truncated.
func Int() *Spec { return newSpec(intConverter{}) }

// ---- Float ----

type floatConverter struct {
	keepNaN bool
}

func (c floatConverter) Serialize(v any) (any, error)   { return c.coerce(v) }
func (c floatConverter) Deserialize(v any) (any, error) { return c.coerce(v) }

func (c floatConverter) coerce(v any) (any, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8, int16, int32, int64:
		f = float64(reflect.ValueOf(n).Int())
	case uint, uint8, uint16, uint32, uint64:
		f = float64(reflect.ValueOf(n).Uint())
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", n.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", n)
		}
		f = parsed
	default:
		return nil, fmt.Errorf("cannot coerce %T to float", v)
	}
	if !c.keepNaN && (math.IsNaN(f) || math.IsInf(f, 0)) {
		// NaN and infinities have no portable wire form; fold them to nil
		return nil, nil
	}
	return f, nil
}

// Float declares a float64 field. NaN and infinities become nil on both
// dump and load; use FloatKeepNaN to pass them through.
func Float() *Spec { return newSpec(floatConverter{}) }

// FloatKeepNaN is Float without the NaN/Inf-to-nil folding.
func FloatKeepNaN() *Spec { return newSpec(floatConverter{keepNaN: true}) }

// ---- Decimal ----

type decimalConverter struct {
	places    int32
	hasPlaces bool
	bankers   bool
}

func (c decimalConverter) Serialize(v any) (any, error) {
	d, err := c.coerce(v)
	if err != nil {
		return nil, err
	}
	// decimals travel as strings so precision survives the wire
	if c.hasPlaces {
		return d.StringFixed(c.places), nil
	}
	return d.String(), nil
}

func (c decimalConverter) Deserialize(v any) (any, error) { return c.coerce(v) }

func (c decimalConverter) coerce(v any) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch n := v.(type) {
	case decimal.Decimal:
		d = n
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("not a decimal: %q", n)
		}
		d = parsed
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("not a decimal: %q", n.String())
		}
		d = parsed
	case float64:
		d = decimal.NewFromFloat(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot coerce %T to decimal", v)
	}
	if c.hasPlaces {
		if c.bankers {
			return d.RoundBank(c.places), nil
		}
		return d.Round(c.places), nil
	}
	return d, nil
}

// Decimal declares an arbitrary-precision decimal field backed by
// shopspring/decimal. An optional places argument rounds (half away from
// zero) to that many fractional digits; dumped values are strings.
func Decimal(places ...int32) *Spec {
	c := decimalConverter{}
	if len(places) > 0 {
		c.places = places[0]
		c.hasPlaces = true
	}
	return newSpec(c)
}

// DecimalBankers is Decimal with banker's rounding (round half to even).
func DecimalBankers(places int32) *Spec {
	return newSpec(decimalConverter{places: places, hasPlaces: true, bankers: true})
}
