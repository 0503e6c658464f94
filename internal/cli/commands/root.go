package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/testvibe/testvibe/internal/cli"
	"github.com/testvibe/testvibe/internal/config"
	"github.com/testvibe/testvibe/pkg/registry"
)

// NewRootCommand creates the root command with every subcommand registered
func NewRootCommand(name, version string, resolver registry.Resolver, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           name,
		Short:         "Run-list driven test runner",
		Long:          `Create test projects and test groups, then run the suites listed in their RUNLIST files and report every failed assertion.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	if out != nil {
		rootCmd.SetOut(out)
	}

	cfg := config.New()
	var flags cli.Flags

	cmds := NewCommands(cfg, resolver, out)
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}
