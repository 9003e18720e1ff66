package dsl

import (
	"fmt"

	"github.com/catalystgo/catalyst"
	"github.com/google/uuid"
)

// ---- String ----

type stringConverter struct{}

func (stringConverter) Serialize(v any) (any, error)   { return coerceString(v) }
func (stringConverter) Deserialize(v any) (any, error) { return coerceString(v) }

func coerceString(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to string", v)
}

// String declares a string field. Only strings, byte slices and Stringers
// coerce; numbers and booleans do not silently stringify.
func String() *Spec { return newSpec(stringConverter{}) }

// ---- Bool ----

// defaultBoolValues is the accepted spelling set for boolean load input.
var defaultBoolValues = map[string]bool{
	"1": true, "y": true, "yes": true, "true": true, "True": true,
	"0": false, "n": false, "no": false, "false": false, "False": false,
}

type boolConverter struct {
	values map[string]bool
}

func (boolConverter) Serialize(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %T to bool", v)
	}
	return b, nil
}

func (c boolConverter) Deserialize(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, ok := c.values[b]; ok {
			return parsed, nil
		}
		return nil, fmt.Errorf("unrecognized boolean spelling %q", b)
	}
	return nil, fmt.Errorf("cannot coerce %T to bool", v)
}

// Bool declares a boolean field. Besides native booleans it accepts the
// common string spellings ("1"/"0", "yes"/"no", "true"/"false").
func Bool() *Spec { return newSpec(boolConverter{values: defaultBoolValues}) }

// BoolValues declares a boolean field with a custom spelling map replacing
// the default set.
func BoolValues(values map[string]bool) *Spec { return newSpec(boolConverter{values: values}) }

// ---- Raw ----

type rawConverter struct{}

func (rawConverter) Serialize(v any) (any, error)   { return v, nil }
func (rawConverter) Deserialize(v any) (any, error) { return v, nil }

// Raw declares a field that passes values through untyped; validators still
// apply.
func Raw() *Spec { return newSpec(rawConverter{}) }

// ---- Constant ----

type constantConverter struct{ value any }

func (c constantConverter) Serialize(any) (any, error)   { return c.value, nil }
func (c constantConverter) Deserialize(any) (any, error) { return c.value, nil }

// Constant declares a field that always produces value, on both dump and
// load, regardless of the input. Both sides default to the constant, so it
// materializes even when the source attribute or the raw key is absent.
func Constant(value any) *Spec {
	s := newSpec(constantConverter{value: value})
	s.fieldOpts = append(s.fieldOpts, catalyst.DumpDefault(value), catalyst.LoadDefault(value))
	return s
}

// ---- Callable ----

type callableConverter struct {
	fn func(v any) (any, error)
}

func (c callableConverter) Serialize(v any) (any, error) { return c.fn(v) }

func (callableConverter) Deserialize(any) (any, error) {
	return nil, fmt.Errorf("computed field cannot be loaded")
}

// Callable declares a dump-only computed field: fn receives the source
// attribute value and returns the output value. The field is excluded from
// the load pass.
func Callable(fn func(v any) (any, error)) *Spec {
	s := newSpec(callableConverter{fn: fn})
	s.fieldOpts = append(s.fieldOpts, catalyst.NoLoad())
	return s
}

// ---- UUID ----

type uuidConverter struct{}

func (uuidConverter) Serialize(v any) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u.String(), nil
	case string:
		parsed, err := uuid.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", u, err)
		}
		return parsed.String(), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to uuid", v)
}

func (uuidConverter) Deserialize(v any) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, nil
	case string:
		parsed, err := uuid.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", u, err)
		}
		return parsed, nil
	case []byte:
		parsed, err := uuid.FromBytes(u)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid bytes: %w", err)
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to uuid", v)
}

// UUID declares a field loaded as uuid.UUID and dumped as its canonical
// string form.
func UUID() *Spec { return newSpec(uuidConverter{}) }
