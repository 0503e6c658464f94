package asserts

import (
	"math"
	"reflect"
	"strings"
	"time"
)

const (
	reasonNotOrdered    = "values are not ordered"
	reasonNotCollection = "not a collection"
)

// isNumeric reports whether v holds an integer or floating point value.
// Booleans and complex numbers are not numbers.
func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNumber(v any) bool {
	return v != nil && isNumeric(reflect.ValueOf(v))
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func asFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	}
	return v.Float()
}

// compareNumbers orders two numeric values of any kind. Integers are compared
// exactly; as soon as a float is involved both sides are compared as float64.
// ok is false when a NaN is involved.
func compareNumbers(a, b reflect.Value) (cmp int, ok bool) {
	switch {
	case isSigned(a) && isSigned(b):
		return compareOrdered(a.Int(), b.Int()), true
	case isUnsigned(a) && isUnsigned(b):
		return compareOrdered(a.Uint(), b.Uint()), true
	case isSigned(a) && isUnsigned(b):
		if a.Int() < 0 {
			return -1, true
		}
		return compareOrdered(uint64(a.Int()), b.Uint()), true
	case isUnsigned(a) && isSigned(b):
		if b.Int() < 0 {
			return 1, true
		}
		return compareOrdered(a.Uint(), uint64(b.Int())), true
	}
	fa, fb := asFloat(a), asFloat(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, false
	}
	return compareOrdered(fa, fb), true
}

func compareOrdered[T int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// equalValues is value equality: numbers compare by value across kinds,
// everything else by reflect.DeepEqual.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isNumeric(va) && isNumeric(vb) {
		cmp, ok := compareNumbers(va, vb)
		return ok && cmp == 0
	}
	return reflect.DeepEqual(a, b)
}

// isNull reports whether v is nil or a nil reference
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isBool reports whether v is of boolean kind and equal to want
func isBool(v any, want bool) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Bool && rv.Bool() == want
}

// contains reports membership of v in collection. reason is set when the
// collection can't hold members at all.
func contains(v, collection any) (found bool, reason string) {
	if collection == nil {
		return false, reasonNotCollection
	}
	rc := reflect.ValueOf(collection)
	switch rc.Kind() {
	case reflect.String:
		if v == nil {
			return false, ""
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.String {
			return false, "member of a string must be a string"
		}
		return strings.Contains(rc.String(), rv.String()), ""
	case reflect.Slice, reflect.Array:
		for i := 0; i < rc.Len(); i++ {
			if equalValues(v, rc.Index(i).Interface()) {
				return true, ""
			}
		}
		return false, ""
	case reflect.Map:
		iter := rc.MapRange()
		for iter.Next() {
			if equalValues(v, iter.Key().Interface()) {
				return true, ""
			}
		}
		return false, ""
	}
	return false, reasonNotCollection
}

var timeType = reflect.TypeOf(time.Time{})

// compare orders a against b. ok is false when the pair has no ordering.
func compare(a, b any) (cmp int, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isNumeric(va) && isNumeric(vb):
		return compareNumbers(va, vb)
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return compareOrdered(va.String(), vb.String()), true
	case va.Type() == timeType && vb.Type() == timeType:
		ta, tb := a.(time.Time), b.(time.Time)
		switch {
		case ta.Before(tb):
			return -1, true
		case ta.After(tb):
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
