package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/testvibe/testvibe/internal/cli"
	"github.com/testvibe/testvibe/internal/config"
	"github.com/testvibe/testvibe/internal/discovery"
	"github.com/testvibe/testvibe/internal/execution"
	"github.com/testvibe/testvibe/internal/logger"
	"github.com/testvibe/testvibe/internal/ui"
	"github.com/testvibe/testvibe/pkg/registry"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	resolver  registry.Resolver
	runlists  *discovery.RunListResolver
	filter    *discovery.Filter
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	resolver registry.Resolver,
	runlists *discovery.RunListResolver,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		resolver:  resolver,
		runlists:  runlists,
		filter:    filter,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	log, closeLog, err := logger.New(rc.config)
	if err != nil {
		return err
	}
	defer closeLog()

	runlists, err := rc.runlists.Load(rc.config.GetWorkDir(), rc.config.GetGroupName())
	if err != nil {
		return err
	}

	runlists = rc.filter.FilterRunLists(runlists, rc.config.Flags.Filter)
	if len(runlists) == 0 {
		color.Yellow("No suites to execute")
		return nil
	}

	dispatcher := execution.NewDispatcher(rc.resolver, log)
	dispatcher.SetKeepGoing(rc.config.Flags.KeepGoing)
	if !rc.config.Flags.Verbose {
		dispatcher.SetProgress(ui.NewProgressBar())
	}

	log.Info("starting test run", zap.String("dir", rc.config.GetWorkDir()), zap.Int("runlists", len(runlists)))
	summary, err := dispatcher.Run(cmd.Context(), runlists)

	// Resolution errors stop the run before a suite fails
	if errors.Is(err, registry.ErrModuleNotFound) || errors.Is(err, discovery.ErrNoSuitesFound) {
		return err
	}

	rc.formatter.PrintSummary(summary)

	failures := summary.Failures()
	if rc.config.Flags.View && len(failures) > 0 {
		if viewErr := rc.viewer.View(failures); viewErr != nil {
			return viewErr
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d test case(s) failed: %w", len(failures), cli.ErrTestsFailed)
	}
	return err
}
