// Package dsl provides the fluent schema-definition surface. A Spec
// describes one field's type and checks; Object() starts a schema builder
// that chains field declarations into a catalyst.Schema.
package dsl

import (
	"github.com/catalystgo/catalyst"
)

// Spec is the declaration of a single field's converter plus the checks
// chained onto it. A Spec describes one field; do not share one Spec value
// across multiple Field calls.
type Spec struct {
	conv       catalyst.Converter
	validators []catalyst.Validator
	fieldOpts  []catalyst.FieldOption
}

func newSpec(conv catalyst.Converter) *Spec { return &Spec{conv: conv} }

// Converter exposes the underlying converter, for embedding a Spec's type
// logic inside composite fields.
func (s *Spec) Converter() catalyst.Converter { return s.conv }

// Validate appends custom validators to the chain.
func (s *Spec) Validate(vs ...catalyst.Validator) *Spec {
	s.validators = append(s.validators, vs...)
	return s
}

// AllowNil accepts nil as a valid loaded value for this field.
func (s *Spec) AllowNil() *Spec {
	s.fieldOpts = append(s.fieldOpts, catalyst.AllowNil())
	return s
}

// Length bounds the value's length inclusively on both sides.
func (s *Spec) Length(min, max int) *Spec { return s.Validate(catalyst.Length(min, max)) }

// MinLength bounds the value's length from below.
func (s *Spec) MinLength(min int) *Spec { return s.Validate(catalyst.MinLength(min)) }

// MaxLength bounds the value's length from above.
func (s *Spec) MaxLength(max int) *Spec { return s.Validate(catalyst.MaxLength(max)) }

// Range bounds the value inclusively; nil means unbounded on that side.
func (s *Spec) Range(min, max any) *Spec { return s.Validate(catalyst.Range(min, max)) }

// Min bounds the value from below.
func (s *Spec) Min(min any) *Spec { return s.Validate(catalyst.Range(min, nil)) }

// Max bounds the value from above.
func (s *Spec) Max(max any) *Spec { return s.Validate(catalyst.Range(nil, max)) }

// Match checks string values against a regular expression.
func (s *Spec) Match(pattern string) *Spec { return s.Validate(catalyst.Match(pattern)) }

// OneOf restricts the value to the given set.
func (s *Spec) OneOf(members ...any) *Spec { return s.Validate(catalyst.OneOf(members...)) }

// NoneOf forbids the given set.
func (s *Spec) NoneOf(members ...any) *Spec { return s.Validate(catalyst.NoneOf(members...)) }

// options assembles the field options a Spec contributes when it is bound to
// a named field.
func (s *Spec) options() []catalyst.FieldOption {
	opts := append([]catalyst.FieldOption(nil), s.fieldOpts...)
	if len(s.validators) > 0 {
		opts = append(opts, catalyst.WithValidators(s.validators...))
	}
	return opts
}

// elementPipe runs a Spec's converter and validators over one value, the way
// composite fields (lists, separated strings) process their elements. The
// first failing validator wins; collect-all applies per field, not per
// element.
func (s *Spec) elementPipe(raw any) (any, *catalyst.FieldError) {
	v, err := s.conv.Deserialize(raw)
	if err != nil {
		return nil, catalyst.AsFieldError(err)
	}
	for _, val := range s.validators {
		if err := val.Validate(v); err != nil {
			return nil, catalyst.AsFieldError(err)
		}
	}
	return v, nil
}
