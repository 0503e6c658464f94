package cli

import "github.com/testvibe/testvibe/internal/config"

// Flags holds command-line flags
type Flags struct {
	WorkDir   string
	Verbose   bool
	Filter    string
	KeepGoing bool
	View      bool
	TestCases bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		WorkDir:   f.WorkDir,
		Verbose:   f.Verbose,
		Filter:    f.Filter,
		KeepGoing: f.KeepGoing,
		View:      f.View,
		TestCases: f.TestCases,
	}
}
