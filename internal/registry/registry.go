// Package registry is the static registry of command documentation providers.
// Projects that bind commands through the manifest's simple "commands" list
// register a provider here under the command name, replacing the runtime
// class discovery the original workflow relied on.
package registry

import "sort"

// Method is one public method of a command provider, paired with its raw
// structured documentation comment. An empty Doc means the method is
// undocumented and contributes nothing to the generated document.
type Method struct {
	Name string
	Doc  string
}

// Provider exposes the documented methods of one command, in declaration
// order.
type Provider interface {
	Methods() []Method
}

// MethodSet is a literal Provider backed by a slice, for providers declared
// as package-level values.
type MethodSet []Method

// Methods returns the set in its declared order.
func (s MethodSet) Methods() []Method { return s }

// providers maps command or type names to their providers. Register during
// init; lookups are read-only afterward.
var providers = map[string]Provider{}

// Register binds a provider to a name. Registering the same name twice
// replaces the earlier provider; duplicate registration is not guarded.
func Register(name string, p Provider) {
	providers[name] = p
}

// Lookup returns the provider registered under name.
func Lookup(name string) (Provider, bool) {
	p, ok := providers[name]
	return p, ok
}

// Names returns all registered names, sorted.
func Names() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
