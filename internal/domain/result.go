package domain

import "time"

// Status is the outcome of a single test case
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// ISOTimeLayout renders timestamps the way the persisted report expects them (UTC, millisecond precision)
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// TestResult represents the outcome of one executed test case.
// It is created once by the runner and never modified afterwards.
type TestResult struct {
	Name      string
	Status    Status
	Duration  time.Duration
	Timestamp time.Time
	Error     string // empty unless Status is FAIL
}

// Passed reports whether the case passed
func (r TestResult) Passed() bool {
	return r.Status == StatusPass
}

// DurationMillis returns the duration in whole milliseconds, never negative
func (r TestResult) DurationMillis() int64 {
	ms := r.Duration.Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// FormatTime formats t as an ISO-8601 UTC timestamp with milliseconds
func FormatTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}
