package dsl

import (
	"context"

	"github.com/catalystgo/catalyst"
)

// Builder accumulates field declarations and schema options. Obtain one with
// Object(), chain Field calls, and finish with Build or MustBuild.
type Builder struct {
	fields []*catalyst.Field
	opts   []catalyst.Option
}

// Object starts an empty schema builder.
func Object() *Builder { return &Builder{} }

// Field declares a named field from a Spec and returns a step for chaining
// per-field settings. Declaration order is preserved.
func (b *Builder) Field(name string, spec *Spec) *fieldStep {
	return &fieldStep{b: b, name: name, spec: spec}
}

// RaiseError makes Load additionally return an *InvalidError on non-valid
// results.
func (b *Builder) RaiseError() *Builder { return b.opt(catalyst.RaiseError()) }

// CollectAll gathers every failing validator message per field.
func (b *Builder) CollectAll() *Builder { return b.opt(catalyst.CollectAll()) }

// Rule appends a named cross-field check over the valid data.
func (b *Builder) Rule(name string, fields []string, check func(ctx context.Context, valid map[string]any) error) *Builder {
	return b.opt(catalyst.WithRule(catalyst.Rule{Name: name, Fields: fields, Check: check}))
}

// PreLoad installs a hook over the raw input before the field pass.
func (b *Builder) PreLoad(h catalyst.LoadHook) *Builder { return b.opt(catalyst.WithPreLoad(h)) }

// PostLoad installs a hook over the valid data of a valid result.
func (b *Builder) PostLoad(h catalyst.LoadHook) *Builder { return b.opt(catalyst.WithPostLoad(h)) }

// PreDump installs a hook over the source object before dumping.
func (b *Builder) PreDump(h catalyst.DumpHook) *Builder { return b.opt(catalyst.WithPreDump(h)) }

// PostDump installs a hook over the assembled dump output.
func (b *Builder) PostDump(h func(ctx context.Context, out map[string]any) (map[string]any, error)) *Builder {
	return b.opt(catalyst.WithPostDump(h))
}

func (b *Builder) opt(o catalyst.Option) *Builder {
	b.opts = append(b.opts, o)
	return b
}

// Build assembles the schema. Configuration problems (duplicate names, nil
// converters) surface here.
func (b *Builder) Build() (*catalyst.Schema, error) {
	return catalyst.New(b.fields, b.opts...)
}

// MustBuild is Build with a panic on configuration errors, for schemas
// declared at package init.
func (b *Builder) MustBuild() *catalyst.Schema {
	return catalyst.MustNew(b.fields, b.opts...)
}

// fieldStep is the chaining handle for the most recently declared field. Its
// setters refine that field; Field/Build/MustBuild seal it and move on.
type fieldStep struct {
	b    *Builder
	name string
	spec *Spec
	opts []catalyst.FieldOption
}

// Required makes an absent load key an error instead of a skip.
func (fs *fieldStep) Required() *fieldStep { return fs.fieldOpt(catalyst.Required()) }

// Optional is the default; it exists to make intent explicit in long chains.
func (fs *fieldStep) Optional() *fieldStep { return fs }

// Key sets the raw-data key when it differs from the field name.
func (fs *fieldStep) Key(key string) *fieldStep { return fs.fieldOpt(catalyst.WithKey(key)) }

// Attr sets the dump-side attribute path (dotted for nested access).
func (fs *fieldStep) Attr(path string) *fieldStep { return fs.fieldOpt(catalyst.WithAttr(path)) }

// AllowNil accepts nil as a valid loaded value.
func (fs *fieldStep) AllowNil() *fieldStep { return fs.fieldOpt(catalyst.AllowNil()) }

// Default substitutes v when the key is absent from the load input.
func (fs *fieldStep) Default(v any) *fieldStep { return fs.fieldOpt(catalyst.LoadDefault(v)) }

// DumpDefault substitutes v when the source attribute is missing on dump.
func (fs *fieldStep) DumpDefault(v any) *fieldStep { return fs.fieldOpt(catalyst.DumpDefault(v)) }

// NoDump excludes the field from the dump pass.
func (fs *fieldStep) NoDump() *fieldStep { return fs.fieldOpt(catalyst.NoDump()) }

// NoLoad excludes the field from the load pass.
func (fs *fieldStep) NoLoad() *fieldStep { return fs.fieldOpt(catalyst.NoLoad()) }

// Validate appends validators to this field.
func (fs *fieldStep) Validate(vs ...catalyst.Validator) *fieldStep {
	return fs.fieldOpt(catalyst.WithValidators(vs...))
}

func (fs *fieldStep) fieldOpt(o catalyst.FieldOption) *fieldStep {
	fs.opts = append(fs.opts, o)
	return fs
}

// seal materializes the pending field onto the builder.
func (fs *fieldStep) seal() *Builder {
	opts := fs.spec.options()
	opts = append(opts, fs.opts...)
	fs.b.fields = append(fs.b.fields, catalyst.NewField(fs.name, fs.spec.conv, opts...))
	return fs.b
}

// Field seals the current field and declares the next one.
func (fs *fieldStep) Field(name string, spec *Spec) *fieldStep {
	return fs.seal().Field(name, spec)
}

// RaiseError seals the current field and forwards to the builder.
func (fs *fieldStep) RaiseError() *Builder { return fs.seal().RaiseError() }

// CollectAll seals the current field and forwards to the builder.
func (fs *fieldStep) CollectAll() *Builder { return fs.seal().CollectAll() }

// Rule seals the current field and forwards to the builder.
func (fs *fieldStep) Rule(name string, fields []string, check func(ctx context.Context, valid map[string]any) error) *Builder {
	return fs.seal().Rule(name, fields, check)
}

// PreLoad seals the current field and forwards to the builder.
func (fs *fieldStep) PreLoad(h catalyst.LoadHook) *Builder { return fs.seal().PreLoad(h) }

// PostLoad seals the current field and forwards to the builder.
func (fs *fieldStep) PostLoad(h catalyst.LoadHook) *Builder { return fs.seal().PostLoad(h) }

// PreDump seals the current field and forwards to the builder.
func (fs *fieldStep) PreDump(h catalyst.DumpHook) *Builder { return fs.seal().PreDump(h) }

// PostDump seals the current field and forwards to the builder.
func (fs *fieldStep) PostDump(h func(ctx context.Context, out map[string]any) (map[string]any, error)) *Builder {
	return fs.seal().PostDump(h)
}

// Build seals the current field and assembles the schema.
func (fs *fieldStep) Build() (*catalyst.Schema, error) { return fs.seal().Build() }

// MustBuild seals the current field and assembles the schema, panicking on
// configuration errors.
func (fs *fieldStep) MustBuild() *catalyst.Schema { return fs.seal().MustBuild() }
