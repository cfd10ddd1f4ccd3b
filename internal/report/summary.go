package report

import (
	"fmt"
	"time"
)

const (
	// ResultAllPassed is the final result text of a run without failures
	ResultAllPassed = "ALL TESTS PASSED"
	// ResultNoTests is the final result text of a run that executed nothing
	ResultNoTests = "NO TESTS EXECUTED"
)

// Summary holds the run-level statistics derived from an Accumulator
type Summary struct {
	StartTime   time.Time
	EndTime     time.Time
	Total       int
	Passed      int
	Failed      int
	SuccessRate float64 // percent
}

// Summarize derives the run statistics. A run without results has a 0% success rate.
func Summarize(acc *Accumulator, start, end time.Time) Summary {
	s := Summary{
		StartTime: start,
		EndTime:   end,
		Total:     acc.Total(),
		Passed:    acc.Passed(),
		Failed:    acc.Failed(),
	}
	if s.Total > 0 {
		s.SuccessRate = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

// Duration returns the wall-clock length of the run, never negative
func (s Summary) Duration() time.Duration {
	d := s.EndTime.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// DurationMillis returns Duration in whole milliseconds
func (s Summary) DurationMillis() int64 {
	return s.Duration().Milliseconds()
}

// OK is the run verdict: true iff nothing failed
func (s Summary) OK() bool {
	return s.Failed == 0
}

// SuccessRateText renders the success rate with one decimal and a % suffix
func (s Summary) SuccessRateText() string {
	return fmt.Sprintf("%.1f%%", s.SuccessRate)
}

// FinalResult renders the verdict line text
func (s Summary) FinalResult() string {
	switch {
	case s.Failed > 0:
		return fmt.Sprintf("%d TEST(S) FAILED", s.Failed)
	case s.Total == 0:
		return ResultNoTests
	default:
		return ResultAllPassed
	}
}
