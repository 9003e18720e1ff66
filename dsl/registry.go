package dsl

import (
	"fmt"
	"sort"
	"sync"
)

// registry maps spec names to factories so schemas can be assembled from
// configuration (field type named in a file rather than in code).
var registry = struct {
	sync.RWMutex
	factories map[string]func() *Spec
}{factories: map[string]func() *Spec{}}

// Register installs a named Spec factory. Re-registering a name replaces the
// previous factory; registration is safe for concurrent use.
func Register(name string, factory func() *Spec) {
	registry.Lock()
	defer registry.Unlock()
	registry.factories[name] = factory
}

// Of builds a fresh Spec for a registered name. Unknown names panic, the
// same way a misdeclared schema would.
func Of(name string) *Spec {
	registry.RLock()
	factory, ok := registry.factories[name]
	registry.RUnlock()
	if !ok {
		panic(fmt.Sprintf("dsl: unknown spec %q (known: %v)", name, Names()))
	}
	return factory()
}

// Names lists the registered spec names, sorted.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.factories))
	for name := range registry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("string", String)
	Register("bool", Bool)
	Register("int", Int)
	Register("float", Float)
	Register("raw", Raw)
	Register("uuid", UUID)
	Register("decimal", func() *Spec { return Decimal() })
	Register("datetime", func() *Spec { return DateTime() })
	Register("date", func() *Spec { return Date() })
	Register("time", func() *Spec { return Time() })
	Register("timestamp", Timestamp)
}
