package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testvibe/testvibe/internal/cli"
	"github.com/testvibe/testvibe/internal/config"
	"github.com/testvibe/testvibe/internal/discovery"
	"github.com/testvibe/testvibe/internal/scaffold"
	"github.com/testvibe/testvibe/internal/ui"
	"github.com/testvibe/testvibe/pkg/registry"
)

// Commands holds all CLI commands
type Commands struct {
	Run          *RunCommand
	List         *ListCommand
	StartProject *StartProjectCommand
	AddTestGroup *AddTestGroupCommand
}

// NewCommands creates all commands with dependencies. Suite identifiers are
// resolved with resolver, reports are written to out.
func NewCommands(cfg *config.Config, resolver registry.Resolver, out io.Writer) *Commands {
	if out == nil {
		out = color.Output
	}

	runlists := discovery.NewRunListResolver(cfg.RunListFile, cfg.CommentPrefix)
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter(out)
	errorViewer := ui.NewErrorViewer()
	scaffolder := scaffold.New(config.DefaultWorkDir, cfg.LogDir)

	return &Commands{
		Run:          NewRunCommand(cfg, resolver, runlists, filter, formatter, errorViewer),
		List:         NewListCommand(cfg, resolver, runlists, filter, formatter),
		StartProject: NewStartProjectCommand(scaffolder, out),
		AddTestGroup: NewAddTestGroupCommand(scaffolder, out),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	startProjectCmd := &cobra.Command{
		Use:   "startproject <name>",
		Short: "Create a new test project",
		Long:  "Create a project directory with a log directory, a settings file and a main package running the suites",
		Args:  cobra.ExactArgs(1),
		RunE:  c.StartProject.Execute,
	}
	rootCmd.AddCommand(startProjectCmd)

	addTestGroupCmd := &cobra.Command{
		Use:   "addtestgroup <name>",
		Short: "Add a test group to the current project",
		Long:  "Create a test group directory with a RUNLIST and an example test suite",
		Args:  cobra.ExactArgs(1),
		RunE:  c.AddTestGroup.Execute,
	}
	rootCmd.AddCommand(addTestGroupCmd)

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the suites of the RUNLIST files",
		Long:    "Run the RUNLIST of the working directory, or the RUNLIST of every test group below it, suite by suite",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE:    c.Run.Execute,
	}
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log to stdout instead of showing progress bars")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only run suites matching the pattern (supports wildcards, e.g. 'smoke/*' or 'login*')")
	runCmd.Flags().BoolVar(&flags.KeepGoing, "keep-going", false, "Continue with the next suite after a failure")
	runCmd.Flags().BoolVar(&flags.View, "view", false, "Open the failure viewer when the run finishes with failures")
	runCmd.Flags().StringVarP(&flags.WorkDir, "dir", "C", "", "Directory to look for RUNLIST files in")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List run-lists and their suites",
		Long:    "Resolve every RUNLIST entry and list the suites it contains without running them",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE:    c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only list suites matching the pattern")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List the test cases of every suite")
	listCmd.Flags().StringVarP(&flags.WorkDir, "dir", "C", "", "Directory to look for RUNLIST files in")
	rootCmd.AddCommand(listCmd)
}
