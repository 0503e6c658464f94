package asserts

import (
	"errors"
	"fmt"
)

// Failure is returned (and, at the suite layer, raised) when an assertion does not hold.
// Actual is the first operand, Expected the second one (the collection for
// membership checks). Unary assertions leave Expected nil.
type Failure struct {
	Kind     Kind
	Actual   any
	Expected any
	Reason   string
}

// Error renders the failed relation, e.g. `assert Equal failed: 1 == 3`
func (f *Failure) Error() string {
	var msg string
	if f.Kind.unary() {
		msg = fmt.Sprintf("assert %s failed: %#v %s", f.Kind.String(), f.Actual, f.Kind.operator())
	} else {
		msg = fmt.Sprintf("assert %s failed: %#v %s %#v", f.Kind.String(), f.Actual, f.Kind.operator(), f.Expected)
	}
	if f.Reason != "" {
		msg += " (" + f.Reason + ")"
	}
	return msg
}

// Is matches a Kind sentinel
func (f *Failure) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == f.Kind
}

// AsFailure extracts the assertion failure from an error chain
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
