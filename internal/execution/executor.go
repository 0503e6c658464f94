package execution

import (
	"context"

	"github.com/testvibe/testvibe/internal/domain"
)

// Executor executes run-lists and returns their results
type Executor interface {
	Run(ctx context.Context, runlists []domain.RunList) (domain.RunSummary, error)
}

// Progress is fed while a run-list executes. Start is called once per
// run-list with its number of entries, Update after every test case with the
// number of finished entries and the case tallies of the run-list so far.
type Progress interface {
	Start(group string, total int)
	Update(completed, passed, failed int)
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(string, int)    {}
func (nopProgress) Update(int, int, int) {}
func (nopProgress) Finish()              {}
