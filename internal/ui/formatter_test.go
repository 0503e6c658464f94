package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/testvibe/testvibe/internal/domain"
	"github.com/testvibe/testvibe/pkg/asserts"
)

func init() {
	color.NoColor = true
}

func TestFormatter_PrintSummary(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewFormatter(&buf)

		f.PrintSummary(domain.RunSummary{
			Suites: []domain.SuiteResult{{
				Group: "smoke", Identifier: "login.go", Suite: "LoginSuite",
				Cases:    []domain.CaseResult{{Name: "Works", Passed: true}},
				Counters: asserts.Counters{Passed: 2, Asserted: 2},
			}},
			Duration: 1500 * time.Millisecond,
		})

		out := buf.String()
		for _, want := range []string{"Test Execution Statistics", "Assertions (passed/total)", "2/2", "1.50s", "All tests passed"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("failures are printed as a tree", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewFormatter(&buf)

		failure := &asserts.Failure{Kind: asserts.KindEqual, Actual: 1, Expected: 2}
		f.PrintSummary(domain.RunSummary{
			Suites: []domain.SuiteResult{{
				Group: "smoke", Identifier: "login.go", Suite: "LoginSuite",
				Cases: []domain.CaseResult{
					{Name: "Works", Passed: true},
					{Name: "RejectsEmptyPassword", Err: failure},
				},
				Err:      failure,
				Skipped:  1,
				Counters: asserts.Counters{Passed: 1, Asserted: 2},
			}},
			Aborted: true,
		})

		out := buf.String()
		for _, want := range []string{
			"1 suite(s) failed with 1 test case failure(s)",
			"└── smoke",
			"    └── login.go",
			"        └── LoginSuite",
			"            └── RejectsEmptyPassword",
			failure.Error(),
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("aborted without failed cases", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintSummary(domain.RunSummary{Aborted: true})
		if !strings.Contains(buf.String(), "Run aborted") {
			t.Errorf("expected aborted notice, got:\n%s", buf.String())
		}
	})
}

func TestFormatter_PrintFailures(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.PrintFailures([]domain.TestFailure{
		{Group: "smoke", Identifier: "a.go", Suite: "A", TestName: "One"},
		{Group: "smoke", Identifier: "a.go", Suite: "A", TestName: "Two"},
		{Group: "regression", Identifier: "b.go", Suite: "B", TestName: "Three"},
	})

	expected := strings.Join([]string{
		"├── smoke",
		"│   └── a.go",
		"│       └── A",
		"│           ├── One",
		"│           └── Two",
		"└── regression",
		"    └── b.go",
		"        └── B",
		"            └── Three",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("unexpected tree:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestFormatter_PrintList(t *testing.T) {
	runlists := []domain.ListedRunList{{
		Group: "smoke",
		Path:  "smoke/RUNLIST",
		Suites: []domain.ListedSuite{
			{Identifier: "login.go", Classes: []domain.ListedClass{{Name: "LoginSuite", Cases: []string{"Works"}}}},
			{Identifier: "gone.go", Err: errors.New("module not found")},
		},
	}}

	t.Run("without cases", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintList(runlists, false)

		out := buf.String()
		if !strings.Contains(out, "Found 1 run-list(s) with 2 suite(s)") {
			t.Errorf("missing header, got:\n%s", out)
		}
		if !strings.Contains(out, "LoginSuite") || strings.Contains(out, "Works") {
			t.Errorf("expected classes without cases, got:\n%s", out)
		}
		if !strings.Contains(out, "gone.go [module not found]") {
			t.Errorf("expected resolution error, got:\n%s", out)
		}
	})

	t.Run("with cases", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintList(runlists, true)
		if !strings.Contains(buf.String(), "└── Works") {
			t.Errorf("expected test cases, got:\n%s", buf.String())
		}
	})
}
