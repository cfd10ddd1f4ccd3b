package execution

import (
	"context"
	"time"

	"apirunner/internal/domain"
)

// Unit is the work of one test case: requests plus assertions.
// A nil return means the case passed.
type Unit func(ctx context.Context) error

// Case is a named unit of work
type Case struct {
	Name string
	Unit Unit
}

// Reporter receives progress notifications while a suite runs
type Reporter interface {
	SuiteStarted(total int)
	CaseFinished(result domain.TestResult)
}

type nullReporter struct{}

func (nullReporter) SuiteStarted(int)               {}
func (nullReporter) CaseFinished(domain.TestResult) {}

// Runner executes a single test case
type Runner struct {
	reporter Reporter
	timeout  time.Duration
	now      func() time.Time
}

// NewRunner creates a new Runner. A zero timeout disables the case deadline.
func NewRunner(reporter Reporter, timeout time.Duration) *Runner {
	if reporter == nil {
		reporter = nullReporter{}
	}
	return &Runner{
		reporter: reporter,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Run executes c exactly once, appends its result to run and returns it.
// Failures are recorded, never propagated.
func (r *Runner) Run(ctx context.Context, run *Run, c Case) domain.TestResult {
	start := r.now()
	out := settleWithin(ctx, c.Unit, r.timeout)
	end := r.now()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	result := domain.TestResult{
		Name:      c.Name,
		Status:    domain.StatusPass,
		Duration:  elapsed,
		Timestamp: end,
	}
	if !out.OK() {
		result.Status = domain.StatusFail
		result.Error = out.Message()
	}

	run.Results.Append(result)
	r.reporter.CaseFinished(result)
	return result
}
