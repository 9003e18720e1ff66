package dsl

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/catalystgo/catalyst"
	"github.com/catalystgo/catalyst/i18n"
)

// ---- List ----

type listConverter struct {
	item *Spec
}

func (c listConverter) Serialize(v any) (any, error) {
	elems, err := asSlice(v)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(elems))
	for i, elem := range elems {
		s, err := c.item.conv.Serialize(elem)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Deserialize processes every element even after one fails, aggregating
// per-index outcomes into a child result embedded in the field error.
func (c listConverter) Deserialize(v any) (any, error) {
	elems, err := asSlice(v)
	if err != nil {
		return nil, err
	}
	child := catalyst.NewResult()
	out := make([]any, 0, len(elems))
	for i, elem := range elems {
		parsed, fe := c.item.elementPipe(elem)
		if fe != nil {
			child.AddInvalid(strconv.Itoa(i), elem, fe)
			continue
		}
		child.AddValid(strconv.Itoa(i), parsed)
		out = append(out, parsed)
	}
	if !child.IsValid() {
		return nil, &catalyst.FieldError{Code: catalyst.CodeNested, Message: i18n.T(catalyst.CodeNested, nil), Nested: child}
	}
	return out, nil
}

func asSlice(v any) ([]any, error) {
	if elems, ok := v.([]any); ok {
		return elems, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// List declares a homogeneous list field. Elements run the item Spec's
// converter and validators; failures are reported per index without aborting
// the remaining elements. Within one element the first failing validator
// wins; the schema's CollectAll option widens reporting per field, not per
// list element.
func List(item *Spec) *Spec { return newSpec(listConverter{item: item}) }

// ---- Separated ----

type separatedConverter struct {
	sep  string
	item *Spec
}

func (c separatedConverter) Serialize(v any) (any, error) {
	elems, err := asSlice(v)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(elems))
	for i, elem := range elems {
		s, err := c.item.conv.Serialize(elem)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		str, ok := s.(string)
		if !ok {
			str = fmt.Sprint(s)
		}
		parts = append(parts, str)
	}
	return strings.Join(parts, c.sep), nil
}

func (c separatedConverter) Deserialize(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a separated string, got %T", v)
	}
	var elems []any
	if s != "" {
		for _, part := range strings.Split(s, c.sep) {
			elems = append(elems, strings.TrimSpace(part))
		}
	}
	return listConverter{item: c.item}.Deserialize(elems)
}

// Separated declares a field stored as a single delimited string ("a, b, c")
// and loaded as a list of typed items. Parts are trimmed before parsing and
// follow the same per-element error policy as List.
func Separated(sep string, item *Spec) *Spec {
	return newSpec(separatedConverter{sep: sep, item: item})
}

// ---- Nested ----

type nestedConverter struct {
	schema *catalyst.Schema
}

func (c nestedConverter) Serialize(v any) (any, error) {
	return c.schema.Dump(context.Background(), v)
}

func (c nestedConverter) Deserialize(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an object, got %T", v)
	}
	res, _ := c.schema.Load(context.Background(), m)
	if !res.IsValid() {
		return nil, &catalyst.FieldError{Code: catalyst.CodeNested, Message: i18n.T(catalyst.CodeNested, nil), Nested: res}
	}
	return res.ValidData, nil
}

// Nested declares an embedded object field governed by its own schema. An
// invalid child surfaces as a single field error carrying the child's full
// result.
func Nested(schema *catalyst.Schema) *Spec { return newSpec(nestedConverter{schema: schema}) }

// ---- NestedMany ----

type nestedManyConverter struct {
	schema *catalyst.Schema
}

func (c nestedManyConverter) Serialize(v any) (any, error) {
	elems, err := asSlice(v)
	if err != nil {
		return nil, err
	}
	return c.schema.DumpMany(context.Background(), elems)
}

func (c nestedManyConverter) Deserialize(v any) (any, error) {
	elems, err := asSlice(v)
	if err != nil {
		return nil, err
	}
	res, _ := c.schema.LoadMany(context.Background(), elems)
	if !res.IsValid() {
		return nil, &catalyst.FieldError{Code: catalyst.CodeNested, Message: i18n.T(catalyst.CodeNested, nil), Nested: res}
	}
	out := make([]any, 0, len(elems))
	for _, key := range res.FieldOrder() {
		out = append(out, res.ValidData[key])
	}
	return out, nil
}

// NestedMany declares a list of embedded objects, each loaded through the
// child schema with per-index error aggregation.
func NestedMany(schema *catalyst.Schema) *Spec { return newSpec(nestedManyConverter{schema: schema}) }
