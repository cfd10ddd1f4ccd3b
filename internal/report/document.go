package report

import (
	"fmt"
	"runtime"
	"time"

	"apirunner/internal/domain"
)

// Input is everything the generator needs from a finished run
type Input struct {
	RunID     string
	Results   *Accumulator
	StartTime time.Time
	EndTime   time.Time
}

// Summary derives the run statistics for the input
func (in Input) Summary() Summary {
	return Summarize(in.Results, in.StartTime, in.EndTime)
}

// CurrentEnvironment describes the running process
func CurrentEnvironment(now time.Time) domain.Environment {
	return domain.Environment{
		RuntimeVersion: runtime.Version(),
		Platform:       runtime.GOOS,
		Architecture:   runtime.GOARCH,
		Timestamp:      domain.FormatTime(now),
	}
}

// BuildDocument converts a finished run into its persisted form.
// Building twice from the same input yields identical summary and results.
func BuildDocument(in Input, env domain.Environment) domain.Document {
	s := in.Summary()

	entries := make([]domain.DocumentEntry, 0, in.Results.Total())
	for _, r := range in.Results.All() {
		entries = append(entries, toEntry(r))
	}

	digests := make([]domain.FailureDigest, 0, len(in.Results.Digests()))
	digests = append(digests, in.Results.Digests()...)

	return domain.Document{
		RunID: in.RunID,
		Summary: domain.DocumentSummary{
			ExecutionTime: fmt.Sprintf("%dms", s.DurationMillis()),
			TotalTests:    s.Total,
			PassedTests:   s.Passed,
			FailedTests:   s.Failed,
			SuccessRate:   s.SuccessRateText(),
			FinalResult:   s.FinalResult(),
			StartTime:     domain.FormatTime(s.StartTime),
			EndTime:       domain.FormatTime(s.EndTime),
			Duration:      s.DurationMillis(),
		},
		TestResults: entries,
		Errors:      digests,
		Environment: env,
	}
}

func toEntry(r domain.TestResult) domain.DocumentEntry {
	entry := domain.DocumentEntry{
		TestName:  r.Name,
		Status:    r.Status,
		Duration:  fmt.Sprintf("%dms", r.DurationMillis()),
		Timestamp: domain.FormatTime(r.Timestamp),
	}
	if r.Error != "" {
		msg := r.Error
		entry.Error = &msg
	}
	return entry
}

// ViewFromDocument rebuilds the console view of a persisted report
func ViewFromDocument(doc *domain.Document) (View, error) {
	start, err := parseTime(doc.Summary.StartTime)
	if err != nil {
		return View{}, fmt.Errorf("summary start time: %w", err)
	}
	end, err := parseTime(doc.Summary.EndTime)
	if err != nil {
		return View{}, fmt.Errorf("summary end time: %w", err)
	}

	acc := NewAccumulator()
	for i, e := range doc.TestResults {
		ts, err := parseTime(e.Timestamp)
		if err != nil {
			return View{}, fmt.Errorf("test result %d timestamp: %w", i+1, err)
		}
		d, err := time.ParseDuration(e.Duration)
		if err != nil {
			return View{}, fmt.Errorf("test result %d duration: %w", i+1, err)
		}
		r := domain.TestResult{Name: e.TestName, Status: e.Status, Duration: d, Timestamp: ts}
		if e.Error != nil {
			r.Error = *e.Error
		}
		acc.Append(r)
	}

	return View{
		Summary:  Summarize(acc, start, end),
		Results:  acc.All(),
		Failures: acc.Digests(),
	}, nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
