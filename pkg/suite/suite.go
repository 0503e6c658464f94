// Package suite provides the base every test suite embeds.
//
// A suite is a struct embedding Base; its own exported methods are its test
// cases:
//
//	type Login struct{ suite.Base }
//
//	func (s *Login) RejectsEmptyPassword() {
//	    s.AssertEqual(login("bob", ""), ErrEmptyPassword)
//	}
//
// Assertions raise (panic with) an *asserts.Failure which halts the running
// test case after the counters have been updated. The runner recovers it at
// the invocation boundary.
package suite

import "github.com/testvibe/testvibe/pkg/asserts"

// Suite is the capability set the runner relies on. *Base implements it, so
// does every struct embedding Base.
type Suite interface {
	Assert(name string, args ...any)
	Check(name string, args ...any) error
	Counters() asserts.Counters
	ResetCounters()
}

// SetUpper is implemented by suites that prepare state before each test case
type SetUpper interface {
	SetUp()
}

// TearDowner is implemented by suites that clean up after each test case.
// TearDown also runs when the test case failed.
type TearDowner interface {
	TearDown()
}

// Parametrized is implemented by suites whose test cases declare parameters.
// Params maps a test case name to the literal arguments it is invoked with.
type Parametrized interface {
	Params() map[string][]any
}
