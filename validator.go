package catalyst

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/catalystgo/catalyst/i18n"
	"github.com/shopspring/decimal"
)

// Validator is a single pass/fail check over one already-coerced value.
// A nil return means pass. Validators never panic on values of the wrong
// type for the check; they fail with a descriptive message instead.
type Validator interface {
	Validate(v any) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(v any) error

func (f ValidatorFunc) Validate(v any) error { return f(v) }

func validationError(code, msg string) error {
	return &FieldError{Code: CodeValidation, Message: msg, Messages: []string{msg}, Cause: nil, Rule: code}
}

// ---- Range ----

type rangeValidator struct {
	min, max any
}

// Range checks that a value is >= min and <= max. A nil bound means
// unbounded on that side. Numeric values (including json.Number and
// decimal.Decimal) and time.Time are comparable; anything else fails with a
// descriptive message.
func Range(min, max any) Validator { return rangeValidator{min: min, max: max} }

func (r rangeValidator) Validate(v any) error {
	if r.min != nil {
		cmp, ok := compareValues(v, r.min)
		if !ok {
			return validationError("wrong_type", fmt.Sprintf("cannot compare %T with %T", v, r.min))
		}
		if cmp < 0 {
			return validationError("too_small", fmt.Sprintf("%s (min %v)", i18n.T("too_small", nil), r.min))
		}
	}
	if r.max != nil {
		cmp, ok := compareValues(v, r.max)
		if !ok {
			return validationError("wrong_type", fmt.Sprintf("cannot compare %T with %T", v, r.max))
		}
		if cmp > 0 {
			return validationError("too_big", fmt.Sprintf("%s (max %v)", i18n.T("too_big", nil), r.max))
		}
	}
	return nil
}

// compareValues returns -1/0/1 and whether the pair was comparable.
func compareValues(v, bound any) (int, bool) {
	if bound == nil {
		return 0, true
	}
	if tv, ok := v.(time.Time); ok {
		tb, ok := bound.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case tv.Before(tb):
			return -1, true
		case tv.After(tb):
			return 1, true
		}
		return 0, true
	}
	if dv, ok := v.(decimal.Decimal); ok {
		db, ok := toDecimal(bound)
		if !ok {
			return 0, false
		}
		return dv.Cmp(db), true
	}
	fv, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	fb, ok := toFloat(bound)
	if !ok {
		return 0, false
	}
	switch {
	case fv < fb:
		return -1, true
	case fv > fb:
		return 1, true
	}
	return 0, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(n).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(n).Uint()), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case decimal.Decimal:
		f, _ := n.Float64()
		return f, true
	}
	return 0, false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	}
	if f, ok := toFloat(v); ok {
		return decimal.NewFromFloat(f), true
	}
	return decimal.Decimal{}, false
}

// ---- Length ----

type lengthValidator struct {
	min, max int
	hasMin   bool
	hasMax   bool
}

// Length checks len(v) against inclusive bounds. Strings are measured in
// bytes, matching Go's len. Non-sized values fail with a descriptive
// message rather than panicking.
func Length(min, max int) Validator {
	return lengthValidator{min: min, max: max, hasMin: true, hasMax: true}
}

// MinLength bounds length from below only.
func MinLength(min int) Validator { return lengthValidator{min: min, hasMin: true} }

// MaxLength bounds length from above only.
func MaxLength(max int) Validator { return lengthValidator{max: max, hasMax: true} }

func (l lengthValidator) Validate(v any) error {
	n, ok := sizeOf(v)
	if !ok {
		return validationError("wrong_type", fmt.Sprintf("value of type %T has no length", v))
	}
	if l.hasMin && n < l.min {
		return validationError("too_short", fmt.Sprintf("%s (min %d)", i18n.T("too_short", nil), l.min))
	}
	if l.hasMax && n > l.max {
		return validationError("too_long", fmt.Sprintf("%s (max %d)", i18n.T("too_long", nil), l.max))
	}
	return nil
}

func sizeOf(v any) (int, bool) {
	switch s := v.(type) {
	case string:
		return len(s), true
	case []byte:
		return len(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

// ---- Match ----

type matchValidator struct {
	re *regexp.Regexp
}

// Match checks that a string value matches the given pattern. The pattern is
// compiled eagerly; an invalid pattern panics at schema-definition time, the
// same moment a misdeclared schema would.
func Match(pattern string) Validator {
	return matchValidator{re: regexp.MustCompile(pattern)}
}

func (m matchValidator) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return validationError("wrong_type", fmt.Sprintf("pattern check needs a string, got %T", v))
	}
	if !m.re.MatchString(s) {
		return validationError("pattern", fmt.Sprintf("%s %q", i18n.T("pattern", nil), m.re.String()))
	}
	return nil
}

// ---- Membership ----

type memberValidator struct {
	members []any
	forbid  bool
}

// OneOf checks membership in the given set.
func OneOf(members ...any) Validator { return memberValidator{members: members} }

// NoneOf checks non-membership in the given set.
func NoneOf(members ...any) Validator { return memberValidator{members: members, forbid: true} }

func (m memberValidator) Validate(v any) error {
	found := false
	for _, cand := range m.members {
		if reflect.DeepEqual(v, cand) {
			found = true
			break
		}
	}
	if m.forbid {
		if found {
			return validationError("member", fmt.Sprintf("%s: %v", i18n.T("member", nil), v))
		}
		return nil
	}
	if !found {
		return validationError("not_member", fmt.Sprintf("%s: %v", i18n.T("not_member", nil), v))
	}
	return nil
}

// ---- Type ----

type typeValidator struct {
	want reflect.Type
}

// TypeOf checks that the value has the same dynamic type as sample.
func TypeOf(sample any) Validator { return typeValidator{want: reflect.TypeOf(sample)} }

func (t typeValidator) Validate(v any) error {
	if reflect.TypeOf(v) != t.want {
		return validationError("wrong_type", fmt.Sprintf("%s: want %v, got %T", i18n.T("wrong_type", nil), t.want, v))
	}
	return nil
}
