package catalyst

import (
	"fmt"
	"strings"
)

// missingValue is the sentinel recorded in InvalidData when a required field
// was absent from the input, so that Errors and InvalidData always mirror
// each other's key sets.
type missingValue struct{}

func (missingValue) String() string { return "<catalyst.missing>" }

// Missing marks "no value was present". It is distinct from nil, which is a
// value.
var Missing = missingValue{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}

// LoadResult is the structured outcome of one Load call. The three maps
// partition the processed field names: every field that was present (or
// required) ends up in exactly one of ValidData or InvalidData, and Errors
// carries exactly the same keys as InvalidData.
type LoadResult struct {
	ValidData   map[string]any
	InvalidData map[string]any
	Errors      map[string]*FieldError

	order []string // bucket-insertion order, follows schema field order
}

// NewResult returns an empty LoadResult ready for AddValid/AddInvalid.
func NewResult() *LoadResult {
	return &LoadResult{
		ValidData:   map[string]any{},
		InvalidData: map[string]any{},
		Errors:      map[string]*FieldError{},
	}
}

// IsValid reports whether the load produced no invalid fields.
func (r *LoadResult) IsValid() bool { return len(r.Errors) == 0 }

// FieldOrder returns the processed field names in schema declaration order.
func (r *LoadResult) FieldOrder() []string { return append([]string(nil), r.order...) }

// ErrorOf returns the failure description for a field, or nil.
func (r *LoadResult) ErrorOf(name string) *FieldError { return r.Errors[name] }

// ErrorMessages flattens the error map to printable strings; a nested
// field's entry is the child result's String(). Intended for logs and
// prompts, not for programmatic inspection (walk Errors for that).
func (r *LoadResult) ErrorMessages() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for name, fe := range r.Errors {
		if fe.Nested != nil {
			out[name] = fe.Nested.String()
			continue
		}
		if len(fe.Messages) > 1 {
			out[name] = strings.Join(fe.Messages, "; ")
			continue
		}
		out[name] = fe.Message
	}
	return out
}

func (r *LoadResult) String() string {
	if r.IsValid() {
		return fmt.Sprintf("LoadResult(valid, fields=%d)", len(r.ValidData))
	}
	b := &strings.Builder{}
	b.WriteString("LoadResult(invalid: ")
	first := true
	for _, name := range r.order {
		fe, ok := r.Errors[name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString("; ")
		}
		first = false
		fmt.Fprintf(b, "%s=%s", name, fe.Code)
	}
	b.WriteString(")")
	return b.String()
}

// AddValid records a field that passed, preserving processing order. It is
// exported for converter implementations that build result-shaped errors
// (element-wise list and many-variant processing).
func (r *LoadResult) AddValid(name string, v any) {
	r.ValidData[name] = v
	r.order = append(r.order, name)
}

// AddInvalid records a failed field together with its original raw value.
func (r *LoadResult) AddInvalid(name string, raw any, fe *FieldError) {
	r.InvalidData[name] = raw
	r.Errors[name] = fe
	r.order = append(r.order, name)
}

// moveInvalid reclassifies an already-valid field as invalid. Used by
// cross-field rules, which run after the per-field pass.
func (r *LoadResult) moveInvalid(name string, fe *FieldError) bool {
	raw, ok := r.ValidData[name]
	if !ok {
		return false
	}
	delete(r.ValidData, name)
	r.InvalidData[name] = raw
	r.Errors[name] = fe
	return true
}
