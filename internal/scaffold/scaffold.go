// Package scaffold creates new test projects and test groups on disk
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

//go:embed templates
var templates embed.FS

// placeholder is replaced with the project or group name in every template
const placeholder = "<Example>"

// ErrInvalidName is returned for names that are not valid identifiers
var ErrInvalidName = errors.New("unsupported characters in name")

var validName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ExistsError is returned when the directory to create already exists
type ExistsError struct {
	Path string // Absolute path
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("command error: '%s' already exists", e.Path)
}

// file maps a template to the file it produces
type file struct {
	template string
	target   string
}

var (
	projectFiles = []file{
		{"templates/settings.env", "settings.env"},
		{"templates/main.go.tmpl", "main.go"},
	}
	groupFiles = []file{
		{"templates/RUNLIST", "RUNLIST"},
		{"templates/example_testsuite.go.tmpl", "example_testsuite.go"},
	}
)

// Scaffolder creates projects and groups below a base directory
type Scaffolder struct {
	baseDir string
	logDir  string
}

// New creates a Scaffolder working in baseDir. logDir names the log
// directory created inside new projects.
func New(baseDir, logDir string) *Scaffolder {
	return &Scaffolder{baseDir: baseDir, logDir: logDir}
}

// ValidateName checks that name only holds letters, digits and underscores
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// StartProject creates the project directory name with its log directory,
// settings file and main package. It returns the absolute project path.
func (s *Scaffolder) StartProject(name string) (string, error) {
	dir, err := s.create(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Join(dir, s.logDir), 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	if err := write(dir, name, projectFiles); err != nil {
		return "", err
	}
	return dir, nil
}

// AddTestGroup creates the group directory name with a run-list and an
// example suite. It returns the absolute group path.
func (s *Scaffolder) AddTestGroup(name string) (string, error) {
	dir, err := s.create(name)
	if err != nil {
		return "", err
	}
	if err := write(dir, name, groupFiles); err != nil {
		return "", err
	}
	return dir, nil
}

func (s *Scaffolder) create(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	dir, err := filepath.Abs(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); err == nil {
		return "", &ExistsError{Path: dir}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

func write(dir, name string, files []file) error {
	for _, f := range files {
		content, err := templates.ReadFile(f.template)
		if err != nil {
			return fmt.Errorf("read template %s: %w", f.template, err)
		}
		out := strings.ReplaceAll(string(content), placeholder, name)
		if err := os.WriteFile(filepath.Join(dir, f.target), []byte(out), 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.target, err)
		}
	}
	return nil
}
