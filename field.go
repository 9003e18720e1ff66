package catalyst

import (
	"fmt"

	"github.com/catalystgo/catalyst/i18n"
)

// Converter supplies the type-specific serialize/deserialize pair plugged
// into a Field. Implementations are pure: they never mutate their input and
// never hold state across calls. New field variants implement this interface
// and need no changes to the orchestration logic.
type Converter interface {
	// Serialize converts a typed in-memory value to a plain wire value.
	Serialize(v any) (any, error)
	// Deserialize parses a raw wire value into its typed form.
	Deserialize(v any) (any, error)
}

// optional distinguishes "no default configured" from "default is nil".
type optional struct {
	value any
	ok    bool
}

// Field is the immutable configuration for one named slot of a schema: how
// its value is read from a source object, parsed from raw input, and
// validated. Fields are created once at schema-definition time and shared
// freely afterwards.
type Field struct {
	name string // unique within a schema; keys all three result maps
	key  string // raw-data key on load and output key on dump
	attr string // dotted attribute path on the source object for dump

	required bool
	allowNil bool
	noDump   bool
	noLoad   bool

	dumpDefault optional
	loadDefault optional

	validators []Validator
	conv       Converter
}

// FieldOption configures a Field at construction time.
type FieldOption func(*Field)

// NewField builds a Field named name around the given converter. The data
// key and the attribute path both default to name.
func NewField(name string, conv Converter, opts ...FieldOption) *Field {
	f := &Field{name: name, key: name, attr: name, conv: conv}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithKey sets the raw-data key, when it differs from the field name.
func WithKey(key string) FieldOption { return func(f *Field) { f.key = key } }

// WithAttr sets the dump-side attribute path (dotted for nested access).
func WithAttr(path string) FieldOption { return func(f *Field) { f.attr = path } }

// Required makes an absent load key an error instead of a skip.
func Required() FieldOption { return func(f *Field) { f.required = true } }

// AllowNil accepts nil as a valid loaded value; conversion and validators
// are not applied to it.
func AllowNil() FieldOption { return func(f *Field) { f.allowNil = true } }

// DumpDefault substitutes v when the source attribute is missing on dump.
func DumpDefault(v any) FieldOption {
	return func(f *Field) { f.dumpDefault = optional{value: v, ok: true} }
}

// LoadDefault substitutes v when the key is absent from the load input. The
// default bypasses conversion but still runs the validators.
func LoadDefault(v any) FieldOption {
	return func(f *Field) { f.loadDefault = optional{value: v, ok: true} }
}

// NoDump excludes the field from the dump pass.
func NoDump() FieldOption { return func(f *Field) { f.noDump = true } }

// NoLoad excludes the field from the load pass.
func NoLoad() FieldOption { return func(f *Field) { f.noLoad = true } }

// WithValidators appends validators; they run in declared order.
func WithValidators(vs ...Validator) FieldOption {
	return func(f *Field) { f.validators = append(f.validators, vs...) }
}

// Name returns the field name, the key of all three result maps.
func (f *Field) Name() string { return f.name }

// Key returns the raw-data key used on load and as the dump output key.
func (f *Field) Key() string { return f.key }

// Attr returns the dump-side attribute path.
func (f *Field) Attr() string { return f.attr }

// IsRequired reports the load-side required flag.
func (f *Field) IsRequired() bool { return f.required }

// serialize reads the field's attribute from obj and converts it. The
// second return is false when the field should be omitted from the dump
// output (missing attribute, no dump default). A required field with no
// attribute and no default is a programmer error, not a skip.
func (f *Field) serialize(obj any) (any, bool, error) {
	v, found := lookupPath(obj, f.attr)
	if !found {
		if !f.dumpDefault.ok {
			if f.required {
				return nil, false, fmt.Errorf("catalyst: dump field %q: missing attribute %q", f.name, f.attr)
			}
			return nil, false, nil
		}
		v = f.dumpDefault.value
	}
	if v == nil {
		return nil, true, nil
	}
	out, err := f.conv.Serialize(v)
	if err != nil {
		return nil, false, fmt.Errorf("catalyst: dump field %q: %w", f.name, err)
	}
	return out, true, nil
}

// deserialize applies the load contract, strictly in order: absence policy,
// nil policy, conversion, validators. skip=true means the field is omitted
// from every result bucket.
func (f *Field) deserialize(raw any, present bool, collectAll bool) (v any, fe *FieldError, skip bool) {
	if !present {
		if f.loadDefault.ok {
			return f.validated(f.loadDefault.value, collectAll)
		}
		if f.required {
			return nil, &FieldError{Code: CodeRequired, Message: i18n.T(CodeRequired, nil)}, false
		}
		return nil, nil, true
	}
	if raw == nil {
		if f.allowNil {
			return nil, nil, false
		}
		return nil, &FieldError{Code: CodeNull, Message: i18n.T(CodeNull, nil)}, false
	}
	converted, err := f.conv.Deserialize(raw)
	if err != nil {
		return nil, AsFieldError(err), false
	}
	return f.validated(converted, collectAll)
}

// validated runs the declared validators over an already-converted value.
// The first failure wins unless collectAll gathers every message. A nil
// value (possible via LoadDefault) is accepted as-is; validators only see
// concrete values.
func (f *Field) validated(v any, collectAll bool) (any, *FieldError, bool) {
	if v == nil {
		return nil, nil, false
	}
	var msgs []string
	var rule string
	for _, val := range f.validators {
		err := val.Validate(v)
		if err == nil {
			continue
		}
		fe := AsFieldError(err)
		if rule == "" {
			rule = fe.Rule
		}
		if len(fe.Messages) > 0 {
			msgs = append(msgs, fe.Messages...)
		} else {
			msgs = append(msgs, fe.Message)
		}
		if !collectAll {
			break
		}
	}
	if len(msgs) > 0 {
		return nil, &FieldError{Code: CodeValidation, Message: msgs[0], Messages: msgs, Rule: rule}, false
	}
	return v, nil, false
}
