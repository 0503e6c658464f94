package execution

import (
	"github.com/pkg/errors"

	"github.com/testvibe/testvibe/pkg/asserts"
	"github.com/testvibe/testvibe/pkg/suite"
)

// protect calls fn and turns a panic into an error. A raised assertion
// failure is returned as is, any other panic is wrapped with a stack trace.
func protect(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case *asserts.Failure:
			err = v
		case error:
			err = errors.Wrap(v, "panic")
		default:
			err = errors.Errorf("panic: %v", v)
		}
	}()
	return fn()
}

// counters reads the tally of instance, zero if the suite cannot report it
func counters(instance suite.Suite) (c asserts.Counters) {
	defer func() {
		_ = recover()
	}()
	return instance.Counters()
}
