package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"myproject", true},
		{"My_Project2", true},
		{"my-project", false},
		{"my project", false},
		{"", false},
		{"../escape", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.name, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName for %q, got %v", tt.name, err)
			}
		})
	}
}

func TestScaffolder_StartProject(t *testing.T) {
	base := t.TempDir()
	s := New(base, "logs")

	dir, err := s.StartProject("shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join(base, "shop") {
		t.Errorf("unexpected project dir %s", dir)
	}

	if info, err := os.Stat(filepath.Join(dir, "logs")); err != nil || !info.IsDir() {
		t.Error("expected logs directory")
	}

	settings, err := os.ReadFile(filepath.Join(dir, "settings.env"))
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if !strings.Contains(string(settings), "PROJECT_NAME=shop") {
		t.Errorf("expected project name in settings, got:\n%s", settings)
	}
	if strings.Contains(string(settings), placeholder) {
		t.Error("placeholder left in settings")
	}

	main, err := os.ReadFile(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatalf("failed to read main.go: %v", err)
	}
	if !strings.Contains(string(main), "testvibe.Main()") {
		t.Errorf("expected main to call testvibe.Main, got:\n%s", main)
	}

	t.Run("existing directory", func(t *testing.T) {
		_, err := s.StartProject("shop")
		var exists *ExistsError
		if !errors.As(err, &exists) {
			t.Fatalf("expected ExistsError, got %v", err)
		}
		if err.Error() != "command error: '"+dir+"' already exists" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("invalid name creates nothing", func(t *testing.T) {
		if _, err := s.StartProject("bad-name"); !errors.Is(err, ErrInvalidName) {
			t.Errorf("expected ErrInvalidName, got %v", err)
		}
		if _, err := os.Stat(filepath.Join(base, "bad-name")); !os.IsNotExist(err) {
			t.Error("directory created for invalid name")
		}
	})
}

func TestScaffolder_AddTestGroup(t *testing.T) {
	base := t.TempDir()
	s := New(base, "logs")

	dir, err := s.AddTestGroup("smoke")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runlist, err := os.ReadFile(filepath.Join(dir, "RUNLIST"))
	if err != nil {
		t.Fatalf("failed to read RUNLIST: %v", err)
	}
	if !strings.Contains(string(runlist), "\nexample_testsuite.go\n") {
		t.Errorf("expected example suite entry, got:\n%s", runlist)
	}

	suite, err := os.ReadFile(filepath.Join(dir, "example_testsuite.go"))
	if err != nil {
		t.Fatalf("failed to read example suite: %v", err)
	}
	for _, want := range []string{"package smoke", `testvibe.Register("smoke", "example_testsuite", ExampleTestSuite{})`} {
		if !strings.Contains(string(suite), want) {
			t.Errorf("expected %q in example suite, got:\n%s", want, suite)
		}
	}

	if _, err := s.AddTestGroup("smoke"); err == nil {
		t.Error("expected error for existing group")
	}
}
