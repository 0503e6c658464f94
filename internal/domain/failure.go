package domain

import (
	"fmt"
	"strings"

	"github.com/testvibe/testvibe/pkg/asserts"
)

// TestFailure represents a failed test case
type TestFailure struct {
	Group      string
	Identifier string
	Suite      string
	TestName   string
	Kind       string // Assertion kind, empty for errors that are not assertion failures
	Message    string
	Actual     string
	Expected   string
	Trace      []string // Detailed error output, with the stack trace of a recovered panic
}

// NewTestFailure builds the failure record of a failed case
func NewTestFailure(r SuiteResult, c CaseResult) TestFailure {
	f := TestFailure{
		Group:      r.Group,
		Identifier: r.Identifier,
		Suite:      r.Suite,
		TestName:   c.Name,
	}
	if c.Err != nil {
		f.Message = c.Err.Error()
	}
	if af, ok := asserts.AsFailure(c.Err); ok {
		f.Kind = af.Kind.String()
		f.Actual = fmt.Sprintf("%#v", af.Actual)
		f.Expected = fmt.Sprintf("%#v", af.Expected)
		return f
	}
	if c.Err != nil {
		if detailed := fmt.Sprintf("%+v", c.Err); detailed != f.Message {
			f.Trace = strings.Split(strings.TrimPrefix(detailed, f.Message+"\n"), "\n")
		}
	}
	return f
}
