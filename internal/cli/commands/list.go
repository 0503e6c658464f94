package commands

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testvibe/testvibe/internal/config"
	"github.com/testvibe/testvibe/internal/discovery"
	"github.com/testvibe/testvibe/internal/domain"
	"github.com/testvibe/testvibe/internal/ui"
	"github.com/testvibe/testvibe/pkg/registry"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	resolver  registry.Resolver
	runlists  *discovery.RunListResolver
	discovery *discovery.SuiteDiscovery
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	resolver registry.Resolver,
	runlists *discovery.RunListResolver,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		resolver:  resolver,
		runlists:  runlists,
		discovery: discovery.NewSuiteDiscovery(),
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	runlists, err := lc.runlists.Load(lc.config.GetWorkDir(), lc.config.GetGroupName())
	if err != nil {
		return err
	}

	runlists = lc.filter.FilterRunLists(runlists, lc.config.Flags.Filter)
	if len(runlists) == 0 {
		color.Yellow("No suites found")
		return nil
	}

	lc.formatter.PrintList(lc.resolve(runlists), lc.config.Flags.TestCases)
	return nil
}

// resolve looks up the suite classes and test cases of every run-list entry.
// Entries that fail to resolve are listed with their error.
func (lc *ListCommand) resolve(runlists []domain.RunList) []domain.ListedRunList {
	listed := make([]domain.ListedRunList, 0, len(runlists))
	for _, rl := range runlists {
		lr := domain.ListedRunList{Group: rl.Group, Path: rl.Path}
		for _, id := range rl.Suites {
			if strings.TrimSpace(id) == "" {
				continue
			}
			ls := domain.ListedSuite{Identifier: id}

			m, err := lc.resolver.Resolve(rl.Group, id)
			if err != nil {
				ls.Err = err
				lr.Suites = append(lr.Suites, ls)
				continue
			}
			classes, err := lc.discovery.Classes(m)
			if err != nil {
				ls.Err = err
				lr.Suites = append(lr.Suites, ls)
				continue
			}
			for _, class := range classes {
				listedClass := domain.ListedClass{Name: class.Name}
				for _, c := range lc.discovery.Cases(class) {
					listedClass.Cases = append(listedClass.Cases, c.Name)
				}
				ls.Classes = append(ls.Classes, listedClass)
			}
			lr.Suites = append(lr.Suites, ls)
		}
		listed = append(listed, lr)
	}
	return listed
}
