package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	WorkDir     string
	ProjectName string

	// Run-list conventions
	RunListFile   string
	CommentPrefix string

	// Logging
	LogDir  string
	LogFile string
	Debug   bool

	// SettingsFile is searched in the working directory and its parent
	SettingsFile string
	// SettingsPath is the settings file that was loaded, empty if none
	SettingsPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	WorkDir   string
	Verbose   bool
	Filter    string
	KeepGoing bool
	View      bool
	TestCases bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		WorkDir:       DefaultWorkDir,
		RunListFile:   DefaultRunListFile,
		CommentPrefix: DefaultCommentPrefix,
		LogDir:        DefaultLogDir,
		LogFile:       DefaultLogFile,
		Debug:         DefaultDebug,
		SettingsFile:  DefaultSettingsFile,
	}
}

// Load creates a config, applies flags and reads the optional settings file
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags
	if err := cfg.LoadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetWorkDir returns the working directory, using the flag if provided
func (c *Config) GetWorkDir() string {
	if c.Flags.WorkDir != "" {
		return filepath.Clean(c.Flags.WorkDir)
	}
	return filepath.Clean(c.WorkDir)
}

// GetGroupName returns the group a top-level run-list belongs to: the base name
// of the working directory.
func (c *Config) GetGroupName() string {
	dir := c.GetWorkDir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return filepath.Base(dir)
}

// GetLogPath returns the full path of the log file. The log directory lives
// next to the settings file when one was loaded, in the working directory otherwise.
func (c *Config) GetLogPath() string {
	root := c.GetWorkDir()
	if c.SettingsPath != "" {
		root = filepath.Dir(c.SettingsPath)
	}
	if filepath.IsAbs(c.LogDir) {
		return filepath.Join(c.LogDir, c.LogFile)
	}
	return filepath.Join(root, c.LogDir, c.LogFile)
}

// LoadSettings reads the settings file when present. A missing file leaves the
// defaults in place.
func (c *Config) LoadSettings() error {
	dir := c.GetWorkDir()
	candidates := []string{
		filepath.Join(dir, c.SettingsFile),
		filepath.Join(dir, "..", c.SettingsFile),
	}

	for _, path := range candidates {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read settings %s: %w", path, err)
		}
		c.SettingsPath = filepath.Clean(path)
		return c.apply(values)
	}
	return nil
}

func (c *Config) apply(values map[string]string) error {
	if name, ok := values[SettingProjectName]; ok {
		c.ProjectName = name
	}
	if dir, ok := values[SettingLogDir]; ok && dir != "" {
		c.LogDir = dir
	}
	if raw, ok := values[SettingLogLevelDebug]; ok {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", SettingLogLevelDebug, raw, err)
		}
		c.Debug = debug
	}
	return nil
}

// Exists reports whether path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
