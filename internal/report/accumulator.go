package report

import "apirunner/internal/domain"

// Accumulator collects the results of a single run in execution order.
// Results can only be appended; nothing is ever removed or rewritten.
type Accumulator struct {
	results  []domain.TestResult
	failures []domain.FailureDigest
	passed   int
	failed   int
}

// NewAccumulator creates an empty Accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Append records a result. Repeated names are kept as separate entries.
func (a *Accumulator) Append(result domain.TestResult) {
	a.results = append(a.results, result)
	if result.Passed() {
		a.passed++
		return
	}
	a.failed++
	if result.Error != "" {
		a.failures = append(a.failures, domain.FailureDigest{TestName: result.Name, Error: result.Error})
	}
}

// All returns every recorded result in insertion order. Callers must not modify it.
func (a *Accumulator) All() []domain.TestResult {
	return a.results
}

// Failures returns the FAIL entries in their original order
func (a *Accumulator) Failures() []domain.TestResult {
	var failed []domain.TestResult
	for _, r := range a.results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Digests returns the failure digests (name + message) in execution order
func (a *Accumulator) Digests() []domain.FailureDigest {
	return a.failures
}

// Total returns the number of recorded results
func (a *Accumulator) Total() int {
	return len(a.results)
}

// Passed returns the number of PASS results
func (a *Accumulator) Passed() int {
	return a.passed
}

// Failed returns the number of FAIL results
func (a *Accumulator) Failed() int {
	return a.failed
}
