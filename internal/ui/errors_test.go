package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apirunner/internal/domain"
)

func strPtr(s string) *string { return &s }

func failuresDocument() *domain.Document {
	return &domain.Document{
		RunID: "4f1c",
		Summary: domain.DocumentSummary{
			TotalTests:  3,
			FailedTests: 2,
			FinalResult: "2 TEST(S) FAILED",
		},
		TestResults: []domain.DocumentEntry{
			{TestName: "one", Status: domain.StatusPass, Duration: "3ms"},
			{TestName: "two", Status: domain.StatusFail, Duration: "5ms", Timestamp: "2026-10-15T09:30:00.005Z", Error: strPtr("status: expected 200, got 404")},
			{TestName: "three", Status: domain.StatusFail, Duration: "1ms"},
		},
	}
}

func TestFailed(t *testing.T) {
	failed := Failed(failuresDocument())
	require.Len(t, failed, 2)
	assert.Equal(t, "two", failed[0].TestName)
	assert.Equal(t, "three", failed[1].TestName)
}

func TestFailuresViewer_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	doc := &domain.Document{TestResults: []domain.DocumentEntry{{TestName: "one", Status: domain.StatusPass}}}

	require.NoError(t, NewFailuresViewer(&buf).View(doc))
	assert.Contains(t, buf.String(), "No test failures found!")
}

func TestFailureFormatting(t *testing.T) {
	doc := failuresDocument()
	failed := Failed(doc)

	assert.Equal(t, "[yellow]1.[white] two", listItemText(failed[0], 0))
	assert.Equal(t, "[yellow]5.[white] Test 5", listItemText(domain.DocumentEntry{}, 4))

	stats := formatFailureStats(failed[0], doc.RunID)
	assert.Contains(t, stats, "4f1c")
	assert.Contains(t, stats, "5ms")
	assert.Contains(t, formatFailureStats(failed[0], ""), "unknown run")

	details := formatFailureDetails(failed[0])
	assert.Contains(t, details, "✗ Test: two")
	assert.Contains(t, details, "status: expected 200, got 404")
	assert.Contains(t, formatFailureDetails(failed[1]), "test failed with no failure message")

	assert.Contains(t, headerText(doc, len(failed)), "Failed Tests (2 of 3)")
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 2)
	bar.Update(1, 0)
	bar.Update(1, 1)
	bar.Finish()

	assert.Contains(t, buf.String(), "Running cases")
	assert.Contains(t, buf.String(), "passed: 1")
}
