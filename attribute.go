package catalyst

import (
	"reflect"
	"strings"
)

// AttributeSource is the capability a dump source object must provide:
// named attribute lookup. The second return reports whether the attribute
// exists at all (a nil value is still "exists").
type AttributeSource interface {
	Get(name string) (any, bool)
}

// Getter adapts a plain map to an AttributeSource.
type Getter map[string]any

func (g Getter) Get(name string) (any, bool) {
	v, ok := g[name]
	return v, ok
}

// GetterFunc adapts a lookup function to an AttributeSource.
type GetterFunc func(name string) (any, bool)

func (f GetterFunc) Get(name string) (any, bool) { return f(name) }

// SourceOf wraps an arbitrary object as an AttributeSource. Maps are looked
// up by key, structs (and struct pointers) by exported field, anything
// already implementing AttributeSource is used as-is.
func SourceOf(obj any) AttributeSource {
	switch s := obj.(type) {
	case AttributeSource:
		return s
	case map[string]any:
		return Getter(s)
	}
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return GetterFunc(func(string) (any, bool) { return nil, false })
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return mapSource{rv: rv}
	}
	if rv.Kind() == reflect.Struct {
		return structSource{rv: rv}
	}
	return GetterFunc(func(string) (any, bool) { return nil, false })
}

type mapSource struct{ rv reflect.Value }

func (m mapSource) Get(name string) (any, bool) {
	v := m.rv.MapIndex(reflect.ValueOf(name))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

type structSource struct{ rv reflect.Value }

func (s structSource) Get(name string) (any, bool) {
	rt := s.rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		if key == name || sf.Name == name {
			return s.rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// resolveStructKey resolves the attribute name for a struct field:
// `catalyst` tag first, then `json` tag, then the lower-cased field name.
// A "-" tag disables the field.
func resolveStructKey(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("catalyst"); ok {
		name := strings.Split(tag, ",")[0]
		if name != "" {
			return name
		}
	}
	if tag, ok := sf.Tag.Lookup("json"); ok {
		name := strings.Split(tag, ",")[0]
		if name != "" {
			return name
		}
	}
	return strings.ToLower(sf.Name[:1]) + sf.Name[1:]
}

// lookupPath resolves a dotted attribute path ("a.b.c") against obj,
// descending through nested maps and structs. Missing segments report
// found=false; they are not errors at this level (the field's dump-default
// policy decides).
func lookupPath(obj any, path string) (any, bool) {
	cur := obj
	for _, part := range strings.Split(path, ".") {
		if cur == nil {
			return nil, false
		}
		v, ok := SourceOf(cur).Get(part)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}
