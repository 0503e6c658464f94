// Package registry resolves suite identifiers from run-lists to modules.
//
// Go has no runtime import by name, so suite files register their symbols
// with a Registry from an init function and the runner resolves identifiers
// against it:
//
//	func init() {
//	    registry.Register("smoke", "login_suite", LoginSuite{})
//	}
//
// Any Resolver can stand in for the default registry.
package registry

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// ErrModuleNotFound is returned when an identifier does not resolve to a registered module
var ErrModuleNotFound = errors.New("module not found")

// Symbol is a named value exported by a module
type Symbol struct {
	Name  string
	Value any
}

// Module is the namespace a suite identifier resolves to
type Module struct {
	Group   string
	Name    string
	Symbols []Symbol
}

// Resolver turns a suite identifier, read from the run-list of group, into a module
type Resolver interface {
	Resolve(group, identifier string) (*Module, error)
}

// Registry is an in-process Resolver that modules register into
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

var defaultRegistry = NewRegistry()

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Default returns the global default registry
func Default() *Registry {
	return defaultRegistry
}

// Register adds symbols to a module of the default registry
func Register(group, module string, values ...any) {
	defaultRegistry.Register(group, module, values...)
}

// Register adds values as symbols of group/module, creating the module on first use.
// Symbols are named after their type; suite prototypes are usually passed as
// zero values (LoginSuite{}) or typed nil pointers ((*LoginSuite)(nil)).
func (r *Registry) Register(group, module string, values ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := moduleKey(group, module)
	m, ok := r.modules[key]
	if !ok {
		m = &Module{Group: group, Name: normalizeName(module)}
		r.modules[key] = m
	}
	for _, v := range values {
		m.Symbols = append(m.Symbols, Symbol{Name: symbolName(v), Value: v})
	}
}

// Resolve looks up identifier within group. An identifier may carry its own
// group ("group/suite") and a source file extension ("suite.go"); both are
// stripped before the lookup.
func (r *Registry) Resolve(group, identifier string) (*Module, error) {
	g, name := SplitIdentifier(group, identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modules[moduleKey(g, name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrModuleNotFound, g, name)
	}
	return m, nil
}

// Modules returns all registered modules ordered by group and name
func (r *Registry) Modules() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Module, 0, len(r.modules))
	for _, m := range r.modules {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Group != result[j].Group {
			return result[i].Group < result[j].Group
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Clear removes all registered modules
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = make(map[string]*Module)
}

// SplitIdentifier returns the group and module name an identifier addresses.
// A leading path segment overrides the run-list's group.
func SplitIdentifier(group, identifier string) (string, string) {
	identifier = strings.TrimSpace(identifier)
	if i := strings.LastIndex(identifier, "/"); i >= 0 {
		if g := identifier[:i]; g != "" {
			group = path.Base(g)
		}
		identifier = identifier[i+1:]
	}
	return group, normalizeName(identifier)
}

func normalizeName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func moduleKey(group, module string) string {
	return group + "/" + normalizeName(module)
}

func symbolName(v any) string {
	if v == nil {
		return "<nil>"
	}
	if t, ok := v.(reflect.Type); ok {
		return t.String()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
