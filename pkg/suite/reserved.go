package suite

import (
	"reflect"
	"sort"
)

// hooks are the optional lifecycle methods a suite may declare itself
var hooks = []string{"SetUp", "TearDown", "Params"}

// reserved holds every framework-owned method name: the methods of *Base and the hooks
var reserved = func() map[string]struct{} {
	names := make(map[string]struct{})
	t := reflect.TypeOf(&Base{})
	for i := 0; i < t.NumMethod(); i++ {
		names[t.Method(i).Name] = struct{}{}
	}
	for _, h := range hooks {
		names[h] = struct{}{}
	}
	return names
}()

// IsReserved reports whether name belongs to the framework and can never be a test case
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// ReservedNames returns the reserved method names, sorted
func ReservedNames() []string {
	names := make([]string, 0, len(reserved))
	for name := range reserved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
