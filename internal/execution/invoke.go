package execution

import (
	"fmt"
	"math"
	"reflect"

	"github.com/testvibe/testvibe/pkg/asserts"
	"github.com/testvibe/testvibe/pkg/suite"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// invoke runs one test case on instance with the literal arguments args,
// wrapped in the SetUp and TearDown hooks of the suite. TearDown runs even
// when the case failed; a failing SetUp skips the case and TearDown.
func invoke(instance suite.Suite, m reflect.Method, args []any) error {
	in, err := buildArgs(m, reflect.ValueOf(instance), args)
	if err != nil {
		return err
	}

	if s, ok := instance.(suite.SetUpper); ok {
		if err := protect(func() error { s.SetUp(); return nil }); err != nil {
			return fmt.Errorf("set up: %w", err)
		}
	}

	err = protect(func() error {
		return returnedError(m.Func.Call(in))
	})

	if t, ok := instance.(suite.TearDowner); ok {
		tdErr := protect(func() error { t.TearDown(); return nil })
		if err == nil && tdErr != nil {
			err = fmt.Errorf("tear down: %w", tdErr)
		}
	}
	return err
}

// buildArgs converts args to the parameter types of m, receiver first
func buildArgs(m reflect.Method, receiver reflect.Value, args []any) ([]reflect.Value, error) {
	mt := m.Type
	params := mt.NumIn() - 1

	if mt.IsVariadic() {
		if len(args) < params-1 {
			return nil, fmt.Errorf("%w: %s takes at least %d arguments, %d given", asserts.ErrArity, m.Name, params-1, len(args))
		}
	} else if len(args) != params {
		return nil, fmt.Errorf("%w: %s takes %d arguments, %d given", asserts.ErrArity, m.Name, params, len(args))
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, receiver)
	for i, arg := range args {
		var t reflect.Type
		if mt.IsVariadic() && i >= params-1 {
			t = mt.In(mt.NumIn() - 1).Elem()
		} else {
			t = mt.In(i + 1)
		}
		v, err := convertArg(arg, t)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", m.Name, i+1, err)
		}
		in = append(in, v)
	}
	return in, nil
}

func convertArg(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", t)
	}

	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case numericKind(v.Kind()) != 0 && numericKind(t.Kind()) != 0:
		out, ok := convertNumber(v, t)
		if !ok {
			return reflect.Value{}, fmt.Errorf("cannot use %v (%T) as %s without losing its value", arg, arg, t)
		}
		return out, nil
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", arg, t)
}

const (
	signed = iota + 1
	unsigned
	float
)

func numericKind(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	}
	return 0
}

// convertNumber converts v to t only when the value survives unchanged:
// floats must be integral to become integers and every value must fit t
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()

	switch numericKind(t.Kind()) {
	case float:
		var f float64
		switch numericKind(v.Kind()) {
		case signed:
			f = float64(v.Int())
		case unsigned:
			f = float64(v.Uint())
		default:
			f = v.Float()
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, false
		}
		out.SetFloat(f)

	case signed:
		var i int64
		switch numericKind(v.Kind()) {
		case signed:
			i = v.Int()
		case unsigned:
			u := v.Uint()
			if u > math.MaxInt64 {
				return reflect.Value{}, false
			}
			i = int64(u)
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, false
			}
			i = int64(f)
		}
		if out.OverflowInt(i) {
			return reflect.Value{}, false
		}
		out.SetInt(i)

	case unsigned:
		var u uint64
		switch numericKind(v.Kind()) {
		case signed:
			i := v.Int()
			if i < 0 {
				return reflect.Value{}, false
			}
			u = uint64(i)
		case unsigned:
			u = v.Uint()
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, false
			}
			u = uint64(f)
		}
		if out.OverflowUint(u) {
			return reflect.Value{}, false
		}
		out.SetUint(u)
	}
	return out, true
}

// returnedError extracts a non-nil error returned as the last result of a case
func returnedError(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	last := out[len(out)-1]
	if last.Type() != errorType || last.IsNil() {
		return nil
	}
	return last.Interface().(error)
}
