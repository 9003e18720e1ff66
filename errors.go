package catalyst

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired   = "required"        // required field absent from load input
	CodeNull       = "null"            // nil value where AllowNil is false
	CodeConversion = "conversion"      // raw value cannot be coerced to the field's type
	CodeValidation = "validation"      // coerced value failed a declared validator
	CodeNested     = "nested"          // child schema load produced an invalid result
	CodeProcess    = "process"         // pre/post hook or cross-field rule failed
	CodeConfig     = "invalid_config"  // schema/field configuration error
)

// FieldError is the per-field failure description stored in LoadResult.Errors.
// It is a tagged union: either a message (with optional cause) or, for nested
// fields, the child LoadResult in full. Nested is non-nil only when Code is
// CodeNested.
type FieldError struct {
	Code    string
	Message string
	// Messages carries every failed validator message when the schema is
	// configured with CollectAll; Message always mirrors the first entry.
	Messages []string
	Cause    error
	Nested   *LoadResult
	// Rule records which specific check produced the error: a validator's
	// check code (e.g. "too_short") or a cross-field rule's name.
	Rule string
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	if e.Nested != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Nested.String())
	}
	if len(e.Messages) > 1 {
		return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying conversion failure for errors.Is/As.
func (e *FieldError) Unwrap() error { return e.Cause }

// InvalidError wraps a non-valid LoadResult when the schema is configured
// with RaiseError. It is a reporting choice: the full field pass has already
// completed by the time it is returned.
type InvalidError struct {
	Result *LoadResult
}

// Error summarizes the first few field errors.
func (e *InvalidError) Error() string {
	if e == nil || e.Result == nil {
		return "catalyst: invalid"
	}
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString("catalyst: invalid: ")
	names := e.Result.FieldOrder()
	shown := 0
	for _, name := range names {
		fe, ok := e.Result.Errors[name]
		if !ok {
			continue
		}
		if shown == maxShown {
			fmt.Fprintf(b, "; ... (total %d)", len(e.Result.Errors))
			break
		}
		if shown > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", fe.Code, name)
		shown++
	}
	return b.String()
}

// AsInvalid extracts the LoadResult from an error using errors.As internally.
func AsInvalid(err error) (*LoadResult, bool) {
	if err == nil {
		return nil, false
	}
	var ie *InvalidError
	if errors.As(err, &ie) {
		return ie.Result, true
	}
	return nil, false
}

// AsFieldError extracts a *FieldError from an error, wrapping plain errors
// with CodeConversion so converter implementations may return ordinary
// errors.
func AsFieldError(err error) *FieldError {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe
	}
	return &FieldError{Code: CodeConversion, Message: err.Error(), Cause: err}
}
