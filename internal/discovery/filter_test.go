package discovery

import (
	"testing"

	"github.com/testvibe/testvibe/internal/domain"
)

func TestFilter_Match(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name       string
		group      string
		identifier string
		pattern    string
		expected   bool
	}{
		{"empty pattern matches all", "smoke", "login.go", "", true},
		{"wildcard on suite name", "smoke", "login_suite.go", "login*", true},
		{"wildcard miss", "smoke", "logout.go", "login*", false},
		{"group glob", "smoke", "login.go", "smoke/*", true},
		{"group glob other group", "regression", "login.go", "smoke/*", false},
		{"identifier carries group", "regression", "smoke/login.go", "smoke/*", true},
		{"doublestar", "smoke", "login.go", "**/log*", true},
		{"substring", "smoke", "payment_refund.go", "refund", true},
		{"substring miss", "smoke", "payment.go", "refund", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Match(tt.group, tt.identifier, tt.pattern); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFilter_FilterRunLists(t *testing.T) {
	filter := NewFilter()
	runlists := []domain.RunList{
		{Group: "smoke", Suites: []string{"login.go", "logout.go", "orders.go"}},
		{Group: "regression", Suites: []string{"orders.go"}},
	}

	t.Run("empty pattern keeps everything", func(t *testing.T) {
		if got := filter.FilterRunLists(runlists, ""); len(got) != 2 {
			t.Errorf("expected 2 run-lists, got %d", len(got))
		}
	})

	t.Run("drops emptied run-lists", func(t *testing.T) {
		got := filter.FilterRunLists(runlists, "log*")
		if len(got) != 1 {
			t.Fatalf("expected 1 run-list, got %d", len(got))
		}
		if len(got[0].Suites) != 2 {
			t.Errorf("expected 2 suites, got %v", got[0].Suites)
		}
		if len(runlists[0].Suites) != 3 {
			t.Error("input run-lists must not be modified")
		}
	})
}
