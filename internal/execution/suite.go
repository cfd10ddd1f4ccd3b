package execution

import (
	"context"
	"time"

	"github.com/google/uuid"

	"apirunner/internal/domain"
	"apirunner/internal/report"
)

// State is the lifecycle position of a Run
type State int

const (
	NotStarted State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Completed:
		return "COMPLETED"
	default:
		return "NOT_STARTED"
	}
}

// Run holds the state of one suite execution
type Run struct {
	ID        string
	Results   *report.Accumulator
	StartTime time.Time
	EndTime   time.Time
	state     State
}

// NewRun creates an empty run with a fresh ID
func NewRun() *Run {
	return &Run{
		ID:      uuid.NewString(),
		Results: report.NewAccumulator(),
	}
}

// State returns the lifecycle state of the run
func (r *Run) State() State {
	return r.state
}

// Input returns the report generator input for the run
func (r *Run) Input() report.Input {
	return report.Input{
		RunID:     r.ID,
		Results:   r.Results,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ReportGenerator turns a finished run into a report and a verdict
type ReportGenerator interface {
	Generate(ctx context.Context, in report.Input) (domain.Document, bool)
}

// Progress tracks how many cases have settled
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Suite runs an ordered list of cases one at a time
type Suite struct {
	runner    *Runner
	generator ReportGenerator
	progress  Progress
	reporter  Reporter
	now       func() time.Time
}

// NewSuite creates a new Suite
func NewSuite(runner *Runner, generator ReportGenerator, reporter Reporter) *Suite {
	if reporter == nil {
		reporter = nullReporter{}
	}
	return &Suite{
		runner:    runner,
		generator: generator,
		reporter:  reporter,
		now:       time.Now,
	}
}

// SetProgress sets the progress bar for the suite
func (s *Suite) SetProgress(progress Progress) {
	s.progress = progress
}

// Execute runs every case in order, then generates the report.
// The returned verdict is true iff no case failed.
func (s *Suite) Execute(ctx context.Context, cases []Case) (*Run, bool) {
	run := NewRun()
	run.state = Running
	run.StartTime = s.now()
	s.reporter.SuiteStarted(len(cases))

	for _, c := range cases {
		s.runner.Run(ctx, run, c)
		if s.progress != nil {
			s.progress.Update(run.Results.Passed(), run.Results.Failed())
		}
	}
	if s.progress != nil {
		s.progress.Finish()
	}

	run.EndTime = s.now()
	run.state = Completed

	_, ok := s.generator.Generate(ctx, run.Input())
	return run, ok
}
