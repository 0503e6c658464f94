package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testvibe/testvibe/internal/scaffold"
)

// StartProjectCommand handles the startproject command
type StartProjectCommand struct {
	scaffolder *scaffold.Scaffolder
	out        io.Writer
}

// NewStartProjectCommand creates a new StartProjectCommand
func NewStartProjectCommand(scaffolder *scaffold.Scaffolder, out io.Writer) *StartProjectCommand {
	return &StartProjectCommand{scaffolder: scaffolder, out: out}
}

// Execute runs the command
func (sc *StartProjectCommand) Execute(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir, err := sc.scaffolder.StartProject(name)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Fprintf(sc.out, "✓ Created project %s\n", dir)
	fmt.Fprintf(sc.out, "  cd %s && go mod init %s\n", name, name)
	fmt.Fprintf(sc.out, "  then add test groups with: addtestgroup <name>\n")
	return nil
}

// AddTestGroupCommand handles the addtestgroup command
type AddTestGroupCommand struct {
	scaffolder *scaffold.Scaffolder
	out        io.Writer
}

// NewAddTestGroupCommand creates a new AddTestGroupCommand
func NewAddTestGroupCommand(scaffolder *scaffold.Scaffolder, out io.Writer) *AddTestGroupCommand {
	return &AddTestGroupCommand{scaffolder: scaffolder, out: out}
}

// Execute runs the command
func (ac *AddTestGroupCommand) Execute(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir, err := ac.scaffolder.AddTestGroup(name)
	if err != nil {
		return err
	}

	project := filepath.Base(filepath.Dir(dir))
	green := color.New(color.FgGreen)
	green.Fprintf(ac.out, "✓ Created test group %s\n", dir)
	fmt.Fprintf(ac.out, "  register its suites by importing it from main.go: _ \"%s/%s\"\n", project, name)
	return nil
}
