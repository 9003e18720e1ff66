package catalyst

import (
	"context"
	"fmt"
	"strconv"

	"github.com/catalystgo/catalyst/i18n"
)

// LoadHook transforms the mapping around a load pass. PreLoad sees the raw
// input, PostLoad the valid data of a fully valid result.
type LoadHook func(ctx context.Context, data map[string]any) (map[string]any, error)

// DumpHook transforms values around a dump pass. PreDump sees the source
// object, PostDump the assembled output mapping.
type DumpHook func(ctx context.Context, v any) (any, error)

// Rule is a named cross-field check over the valid data of a load. Rules run
// only when the per-field pass produced no errors; on failure the rule's
// fields move from valid to invalid.
type Rule struct {
	Name   string
	Fields []string
	Check  func(ctx context.Context, valid map[string]any) error
}

// Schema is an ordered collection of Fields with dump/load orchestration.
// It is immutable after New and safe for concurrent use across independent
// dump/load calls.
type Schema struct {
	fields map[string]*Field
	order  []string

	raiseError bool
	collectAll bool
	rules      []Rule

	preLoad  LoadHook
	postLoad LoadHook
	preDump  DumpHook
	postDump func(ctx context.Context, out map[string]any) (map[string]any, error)
}

// Option configures a Schema at construction time.
type Option func(*Schema)

// RaiseError makes Load return an *InvalidError alongside a non-valid
// result. The full field pass always completes first; this is a reporting
// choice, not a short-circuit.
func RaiseError() Option { return func(s *Schema) { s.raiseError = true } }

// CollectAll gathers every failing validator message per field instead of
// stopping at the first.
func CollectAll() Option { return func(s *Schema) { s.collectAll = true } }

// WithRule appends a cross-field rule.
func WithRule(r Rule) Option { return func(s *Schema) { s.rules = append(s.rules, r) } }

// WithPreLoad installs a hook run over the raw input before the field pass.
func WithPreLoad(h LoadHook) Option { return func(s *Schema) { s.preLoad = h } }

// WithPostLoad installs a hook run over the valid data of a valid result.
func WithPostLoad(h LoadHook) Option { return func(s *Schema) { s.postLoad = h } }

// WithPreDump installs a hook run over the source object before dumping.
func WithPreDump(h DumpHook) Option { return func(s *Schema) { s.preDump = h } }

// WithPostDump installs a hook run over the assembled dump output.
func WithPostDump(h func(ctx context.Context, out map[string]any) (map[string]any, error)) Option {
	return func(s *Schema) { s.postDump = h }
}

// New builds a Schema from fields in declaration order. Field names must be
// unique; declaration order defines both dump-key order and error-iteration
// order.
func New(fields []*Field, opts ...Option) (*Schema, error) {
	s := &Schema{fields: make(map[string]*Field, len(fields))}
	for _, f := range fields {
		if f == nil || f.conv == nil {
			return nil, &FieldError{Code: CodeConfig, Message: "nil field or converter"}
		}
		if _, dup := s.fields[f.name]; dup {
			return nil, &FieldError{Code: CodeConfig, Message: fmt.Sprintf("duplicate field %q", f.name)}
		}
		s.fields[f.name] = f
		s.order = append(s.order, f.name)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(fields []*Field, opts ...Option) *Schema {
	s, err := New(fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string { return append([]string(nil), s.order...) }

// FieldByName returns the named field, or nil.
func (s *Schema) FieldByName(name string) *Field { return s.fields[name] }

// Only derives a schema restricted to the named fields, keeping the original
// declaration order and options. Unknown names are configuration errors.
func (s *Schema) Only(names ...string) (*Schema, error) {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := s.fields[n]; !ok {
			return nil, &FieldError{Code: CodeConfig, Message: fmt.Sprintf("field %q does not exist", n)}
		}
		keep[n] = struct{}{}
	}
	return s.filtered(func(name string) bool {
		_, ok := keep[name]
		return ok
	}), nil
}

// Exclude derives a schema without the named fields; unknown names are
// ignored (set subtraction, like the original include/exclude filtering).
func (s *Schema) Exclude(names ...string) *Schema {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	return s.filtered(func(name string) bool {
		_, ok := drop[name]
		return !ok
	})
}

func (s *Schema) filtered(keep func(string) bool) *Schema {
	out := &Schema{
		fields:     map[string]*Field{},
		raiseError: s.raiseError,
		collectAll: s.collectAll,
		rules:      s.rules,
		preLoad:    s.preLoad,
		postLoad:   s.postLoad,
		preDump:    s.preDump,
		postDump:   s.postDump,
	}
	for _, name := range s.order {
		if keep(name) {
			out.fields[name] = s.fields[name]
			out.order = append(out.order, name)
		}
	}
	return out
}

// Dump reads the schema's fields off obj in declaration order and assembles
// the plain output mapping. Dump has no error channel of its own: converter
// or hook failures are programmer errors and propagate unmodified.
func (s *Schema) Dump(ctx context.Context, obj any) (map[string]any, error) {
	if s.preDump != nil {
		v, err := s.preDump(ctx, obj)
		if err != nil {
			return nil, fmt.Errorf("catalyst: pre_dump: %w", err)
		}
		obj = v
	}
	out := make(map[string]any, len(s.order))
	for _, name := range s.order {
		f := s.fields[name]
		if f.noDump {
			continue
		}
		v, ok, err := f.serialize(obj)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out[f.key] = v
	}
	if s.postDump != nil {
		v, err := s.postDump(ctx, out)
		if err != nil {
			return nil, fmt.Errorf("catalyst: post_dump: %w", err)
		}
		out = v
	}
	return out, nil
}

// DumpMany dumps a slice of objects.
func (s *Schema) DumpMany(ctx context.Context, objs []any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(objs))
	for i, obj := range objs {
		m, err := s.Dump(ctx, obj)
		if err != nil {
			return nil, fmt.Errorf("catalyst: dump item %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Load walks the schema's fields over data in declaration order, classifying
// each into exactly one of valid/invalid (or skipping absent optionals), and
// never aborts on a field failure. With RaiseError configured a non-valid
// result is additionally returned as an *InvalidError, after the full pass.
func (s *Schema) Load(ctx context.Context, data map[string]any) (*LoadResult, error) {
	res := s.load(ctx, data)
	if s.raiseError && !res.IsValid() {
		return res, &InvalidError{Result: res}
	}
	return res, nil
}

// LoadMany loads a slice of raw mappings, aggregating per-index results into
// a LoadResult keyed by the element index. Each element's own LoadResult is
// embedded under Errors for invalid elements.
func (s *Schema) LoadMany(ctx context.Context, items []any) (*LoadResult, error) {
	res := NewResult()
	for i, item := range items {
		key := strconv.Itoa(i)
		m, ok := item.(map[string]any)
		if !ok {
			res.AddInvalid(key, item, &FieldError{Code: CodeConversion, Message: fmt.Sprintf("expected object, got %T", item)})
			continue
		}
		r := s.load(ctx, m)
		if r.IsValid() {
			res.AddValid(key, r.ValidData)
			continue
		}
		res.AddInvalid(key, item, &FieldError{Code: CodeNested, Message: i18n.T(CodeNested, nil), Nested: r})
	}
	if s.raiseError && !res.IsValid() {
		return res, &InvalidError{Result: res}
	}
	return res, nil
}

func (s *Schema) load(ctx context.Context, data map[string]any) *LoadResult {
	res := NewResult()
	if data == nil {
		data = map[string]any{}
	}
	if s.preLoad != nil {
		next, err := s.preLoad(ctx, data)
		if err != nil {
			res.AddInvalid("pre_load", data, &FieldError{Code: CodeProcess, Message: err.Error(), Cause: err, Rule: "pre_load"})
			return res
		}
		data = next
	}

	for _, name := range s.order {
		f := s.fields[name]
		if f.noLoad {
			continue
		}
		raw, present := data[f.key]
		v, fe, skip := f.deserialize(raw, present, s.collectAll)
		if skip {
			continue
		}
		if fe == nil {
			res.AddValid(name, v)
			continue
		}
		if !present {
			raw = Missing
		}
		res.AddInvalid(name, raw, fe)
	}

	// cross-field rules depend on a clean field pass
	if res.IsValid() {
		for _, rule := range s.rules {
			if rule.Check == nil {
				continue
			}
			err := rule.Check(ctx, res.ValidData)
			if err == nil {
				continue
			}
			fe := &FieldError{Code: CodeProcess, Message: err.Error(), Cause: err, Rule: rule.Name}
			moved := 0
			for _, name := range rule.Fields {
				if res.moveInvalid(name, fe) {
					moved++
				}
			}
			if moved == 0 {
				res.AddInvalid(rule.Name, Missing, fe)
			}
		}
	}

	if res.IsValid() && s.postLoad != nil {
		next, err := s.postLoad(ctx, res.ValidData)
		if err != nil {
			res.AddInvalid("post_load", Missing, &FieldError{Code: CodeProcess, Message: err.Error(), Cause: err, Rule: "post_load"})
			return res
		}
		res.ValidData = next
	}
	return res
}
