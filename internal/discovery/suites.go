package discovery

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/testvibe/testvibe/pkg/registry"
	"github.com/testvibe/testvibe/pkg/suite"
)

// ErrNoSuitesFound is returned when a module exports no suite type
var ErrNoSuitesFound = errors.New("no suites found")

var suiteInterface = reflect.TypeOf((*suite.Suite)(nil)).Elem()

// Class is a suite type found in a module
type Class struct {
	Name   string       // Type name
	Symbol string       // Module symbol the type was found under
	Type   reflect.Type // Struct type; *Type implements suite.Suite
}

// New creates a fresh instance of the suite. Embedded pointer fields, such
// as an embedded *suite.Base, are allocated so promoted methods have a receiver.
func (c Class) New() suite.Suite {
	v := reflect.New(c.Type)
	allocEmbedded(v.Elem(), map[reflect.Type]bool{c.Type: true})
	return v.Interface().(suite.Suite)
}

func allocEmbedded(v reflect.Value, seen map[reflect.Type]bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		fv := v.Field(i)
		switch f.Type.Kind() {
		case reflect.Ptr:
			elem := f.Type.Elem()
			if elem.Kind() != reflect.Struct || seen[elem] || !fv.CanSet() {
				continue
			}
			if fv.IsNil() {
				fv.Set(reflect.New(elem))
			}
			seen[elem] = true
			allocEmbedded(fv.Elem(), seen)
		case reflect.Struct:
			allocEmbedded(fv, seen)
		}
	}
}

// Case is a test case method declared on a suite type
type Case struct {
	Name   string
	Method reflect.Method // Method of *Type; Func takes the receiver first
}

// SuiteDiscovery finds suite types in modules and test cases on suite types
type SuiteDiscovery struct{}

// NewSuiteDiscovery creates a new SuiteDiscovery
func NewSuiteDiscovery() *SuiteDiscovery {
	return &SuiteDiscovery{}
}

// Classes returns the suite types exported by m in registration order.
// A symbol denotes a suite type when it is a struct value, a pointer to one or
// a reflect.Type of one, and a pointer to that struct implements suite.Suite.
func (d *SuiteDiscovery) Classes(m *registry.Module) ([]Class, error) {
	seen := make(map[reflect.Type]bool)
	var classes []Class

	for _, sym := range m.Symbols {
		t, ok := classType(sym.Value)
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		classes = append(classes, Class{Name: t.Name(), Symbol: sym.Name, Type: t})
	}

	if len(classes) == 0 {
		return nil, fmt.Errorf("%w in %s/%s", ErrNoSuitesFound, m.Group, m.Name)
	}
	return classes, nil
}

// Cases returns the test cases of c: exported methods declared on the type
// itself which are not reserved by the framework. Methods promoted from an
// embedded field count as inherited and are skipped.
func (d *SuiteDiscovery) Cases(c Class) []Case {
	inherited := promotedMethods(c.Type)
	pt := reflect.PointerTo(c.Type)

	var cases []Case
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if !m.IsExported() {
			continue
		}
		if suite.IsReserved(m.Name) {
			continue
		}
		if inherited[m.Name] {
			continue
		}
		cases = append(cases, Case{Name: m.Name, Method: m})
	}
	return cases
}

func classType(v any) (reflect.Type, bool) {
	var t reflect.Type
	switch x := v.(type) {
	case nil:
		return nil, false
	case reflect.Type:
		t = x
	default:
		t = reflect.TypeOf(v)
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, reflect.PointerTo(t).Implements(suiteInterface)
}

// promotedMethods collects the names of methods t gets from its embedded fields
func promotedMethods(t reflect.Type) map[string]bool {
	names := make(map[string]bool)
	collect := func(ft reflect.Type) {
		for i := 0; i < ft.NumMethod(); i++ {
			names[ft.Method(i).Name] = true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		collect(f.Type)
		if f.Type.Kind() != reflect.Ptr && f.Type.Kind() != reflect.Interface {
			collect(reflect.PointerTo(f.Type))
		}
	}
	return names
}
