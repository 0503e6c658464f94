// Package testvibe is the entry point of test projects.
//
// A project's main package imports its test groups, whose init functions
// register their suites, and hands control to Main:
//
//	func main() {
//	    testvibe.Main()
//	}
package testvibe

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/testvibe/testvibe/internal/cli"
	"github.com/testvibe/testvibe/internal/cli/commands"
	"github.com/testvibe/testvibe/pkg/registry"
	"github.com/testvibe/testvibe/pkg/suite"
)

// Version is reported by the --version flag
var Version = "dev"

// TestSuite is the base every test suite embeds
type TestSuite = suite.Base

// Register adds suite prototypes to module of group in the default registry.
// It is meant to be called from the init function of the suite's file.
func Register(group, module string, suites ...any) {
	registry.Register(group, module, suites...)
}

// Main runs the command line with the suites of the default registry and
// exits the process
func Main() {
	os.Exit(Run(os.Args))
}

// Run runs the command line args, program name first, and returns the exit code
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name := "testvibe"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	root := commands.NewRootCommand(name, Version, registry.Default(), nil)
	root.SetArgs(args)
	return cli.Execute(ctx, root, os.Stderr)
}
