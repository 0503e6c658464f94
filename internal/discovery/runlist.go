package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/testvibe/testvibe/internal/domain"
)

// ErrNoRunlistsFound is returned when neither the working directory nor any
// of its immediate subdirectories holds a run-list
var ErrNoRunlistsFound = errors.New("no runlists found")

// RunListResolver locates and parses run-list files
type RunListResolver struct {
	fileName      string
	commentPrefix string
}

// NewRunListResolver creates a new RunListResolver for run-lists named fileName
func NewRunListResolver(fileName, commentPrefix string) *RunListResolver {
	return &RunListResolver{fileName: fileName, commentPrefix: commentPrefix}
}

// Find returns the run-list paths to execute from dir. A run-list directly in
// dir is used alone; otherwise every immediate subdirectory holding one
// contributes it. Paths are returned sorted.
func (r *RunListResolver) Find(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("working directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("working directory is not a directory: %s", dir)
	}

	top := filepath.Join(dir, r.fileName)
	if isFile(top) {
		return []string{top}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	seen := make(map[string]bool)
	var runlists []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name(), r.fileName)
		if seen[path] || !isFile(path) {
			continue
		}
		seen[path] = true
		runlists = append(runlists, path)
	}

	if len(runlists) == 0 {
		return nil, ErrNoRunlistsFound
	}
	sort.Strings(runlists)
	return runlists, nil
}

// Parse reads a run-list and returns its suite identifiers. Lines starting
// with the comment prefix are dropped, everything else is kept verbatim.
func (r *RunListResolver) Parse(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading runlist %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	if text == "" {
		return nil, nil
	}

	var suites []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if strings.HasPrefix(line, r.commentPrefix) {
			continue
		}
		suites = append(suites, line)
	}
	return suites, nil
}

// Load finds and parses every run-list reachable from dir. The group of a
// run-list in a subdirectory is that subdirectory's name, a run-list in dir
// belongs to defaultGroup.
func (r *RunListResolver) Load(dir, defaultGroup string) ([]domain.RunList, error) {
	paths, err := r.Find(dir)
	if err != nil {
		return nil, err
	}

	runlists := make([]domain.RunList, 0, len(paths))
	for _, path := range paths {
		suites, err := r.Parse(path)
		if err != nil {
			return nil, err
		}
		group := defaultGroup
		if parent := filepath.Dir(path); filepath.Clean(parent) != filepath.Clean(dir) {
			group = filepath.Base(parent)
		}
		runlists = append(runlists, domain.RunList{Path: path, Group: group, Suites: suites})
	}
	return runlists, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
