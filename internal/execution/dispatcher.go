package execution

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/testvibe/testvibe/internal/discovery"
	"github.com/testvibe/testvibe/internal/domain"
	"github.com/testvibe/testvibe/pkg/registry"
	"github.com/testvibe/testvibe/pkg/suite"
)

var _ Executor = (*Dispatcher)(nil)

// Dispatcher runs the suites of run-lists one after another.
//
// Every run-list entry is resolved to a module, every suite class of the
// module gets one fresh instance and every test case of the class is invoked
// on that instance, so assertion counters accumulate across its cases. The
// first failure stops the batch unless keep-going is set, in which case only
// the failing suite stops.
type Dispatcher struct {
	resolver  registry.Resolver
	discovery *discovery.SuiteDiscovery
	log       *zap.Logger
	progress  Progress
	keepGoing bool
}

// NewDispatcher creates a new Dispatcher resolving identifiers with resolver
func NewDispatcher(resolver registry.Resolver, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		resolver:  resolver,
		discovery: discovery.NewSuiteDiscovery(),
		log:       log,
		progress:  nopProgress{},
	}
}

// SetProgress sets the progress hook of the dispatcher
func (d *Dispatcher) SetProgress(p Progress) {
	if p == nil {
		p = nopProgress{}
	}
	d.progress = p
}

// SetKeepGoing makes the dispatcher continue with the next suite after a failure
func (d *Dispatcher) SetKeepGoing(keepGoing bool) {
	d.keepGoing = keepGoing
}

// Run executes runlists in order. Resolution errors and, unless keep-going is
// set, the first failing test case abort the run; the returned summary holds
// every suite executed up to that point.
func (d *Dispatcher) Run(ctx context.Context, runlists []domain.RunList) (domain.RunSummary, error) {
	var summary domain.RunSummary
	start := time.Now()

	for _, rl := range runlists {
		if err := d.runList(ctx, rl, &summary); err != nil {
			summary.Aborted = true
			summary.Duration = time.Since(start)
			return summary, err
		}
	}
	summary.Duration = time.Since(start)
	return summary, nil
}

func (d *Dispatcher) runList(ctx context.Context, rl domain.RunList, summary *domain.RunSummary) error {
	d.log.Info("running runlist", zap.String("group", rl.Group), zap.String("path", rl.Path), zap.Int("suites", len(rl.Suites)))

	d.progress.Start(rl.Group, len(rl.Suites))
	defer d.progress.Finish()

	var completed, passed, failed int
	for _, id := range rl.Suites {
		if strings.TrimSpace(id) == "" {
			completed++
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		m, err := d.resolver.Resolve(rl.Group, id)
		if err != nil {
			d.log.Error("cannot resolve suite", zap.String("group", rl.Group), zap.String("identifier", id), zap.Error(err))
			return err
		}
		classes, err := d.discovery.Classes(m)
		if err != nil {
			d.log.Error("no suite classes", zap.String("group", rl.Group), zap.String("identifier", id), zap.Error(err))
			return err
		}

		for _, class := range classes {
			result := d.runSuite(ctx, rl.Group, id, class, func(c domain.CaseResult) {
				if c.Passed {
					passed++
				} else {
					failed++
				}
				d.progress.Update(completed, passed, failed)
			})
			summary.Suites = append(summary.Suites, result)

			if result.Err == nil {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !d.keepGoing {
				return result.Err
			}
		}
		completed++
		d.progress.Update(completed, passed, failed)
	}
	return nil
}

// runSuite invokes every test case of class on one fresh instance
func (d *Dispatcher) runSuite(ctx context.Context, group, id string, class discovery.Class, onCase func(domain.CaseResult)) domain.SuiteResult {
	start := time.Now()
	log := d.log.With(zap.String("group", group), zap.String("identifier", id), zap.String("suite", class.Name))

	instance := class.New()
	cases := d.discovery.Cases(class)

	var params map[string][]any
	if p, ok := instance.(suite.Parametrized); ok {
		params = p.Params()
	}

	result := domain.SuiteResult{
		Group:      group,
		Identifier: id,
		Suite:      class.Name,
	}

	log.Debug("running suite", zap.Int("cases", len(cases)))
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			result.Err = err
			result.Skipped = len(cases) - i
			break
		}

		caseStart := time.Now()
		err := invoke(instance, c.Method, params[c.Name])
		cr := domain.CaseResult{
			Name:     c.Name,
			Passed:   err == nil,
			Err:      err,
			Duration: time.Since(caseStart),
		}
		result.Cases = append(result.Cases, cr)
		onCase(cr)

		if err != nil {
			log.Error("test case failed", zap.String("case", c.Name), zap.Error(err))
			result.Err = err
			result.Skipped = len(cases) - i - 1
			break
		}
		log.Debug("test case passed", zap.String("case", c.Name), zap.Duration("duration", cr.Duration))
	}

	result.Counters = counters(instance)
	result.Duration = time.Since(start)
	log.Info("suite finished",
		zap.Bool("failed", result.Failed()),
		zap.Int("passed", result.Counters.Passed),
		zap.Int("asserted", result.Counters.Asserted),
		zap.Duration("duration", result.Duration),
	)
	return result
}
