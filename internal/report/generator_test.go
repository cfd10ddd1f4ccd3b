package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apirunner/internal/domain"
	"apirunner/internal/logging"
)

type fakeRenderer struct {
	views     []View
	savedPath string
	saveErr   error
}

func (f *fakeRenderer) RenderReport(view View)     { f.views = append(f.views, view) }
func (f *fakeRenderer) ReportSaved(path string)    { f.savedPath = path }
func (f *fakeRenderer) ReportSaveFailed(err error) { f.saveErr = err }

type fakeStore struct {
	docs []domain.Document
	err  error
}

func (f *fakeStore) Save(doc *domain.Document, runStart time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.docs = append(f.docs, *doc)
	return "automation-reports/report.json", nil
}

type fakeHistory struct {
	recorded []string
	err      error
}

func (f *fakeHistory) Record(ctx context.Context, doc *domain.Document) error {
	f.recorded = append(f.recorded, doc.RunID)
	return f.err
}

func sampleInput() Input {
	start := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	acc := NewAccumulator()
	acc.Append(domain.TestResult{Name: "one", Status: domain.StatusPass, Duration: 5 * time.Millisecond, Timestamp: start.Add(5 * time.Millisecond)})
	acc.Append(domain.TestResult{Name: "two", Status: domain.StatusFail, Duration: 7 * time.Millisecond, Timestamp: start.Add(12 * time.Millisecond), Error: "boom"})
	acc.Append(domain.TestResult{Name: "three", Status: domain.StatusPass, Duration: 0, Timestamp: start.Add(12 * time.Millisecond)})
	return Input{RunID: "run-1", Results: acc, StartTime: start, EndTime: start.Add(20 * time.Millisecond)}
}

func TestBuildDocument(t *testing.T) {
	in := sampleInput()
	env := domain.Environment{RuntimeVersion: "go1.22", Platform: "linux", Architecture: "amd64", Timestamp: "2026-10-15T10:00:01.000Z"}
	doc := BuildDocument(in, env)

	assert.Equal(t, "run-1", doc.RunID)
	assert.Equal(t, domain.DocumentSummary{
		ExecutionTime: "20ms",
		TotalTests:    3,
		PassedTests:   2,
		FailedTests:   1,
		SuccessRate:   "66.7%",
		FinalResult:   "1 TEST(S) FAILED",
		StartTime:     "2026-10-15T10:00:00.000Z",
		EndTime:       "2026-10-15T10:00:00.020Z",
		Duration:      20,
	}, doc.Summary)

	require.Len(t, doc.TestResults, 3)
	assert.Equal(t, "5ms", doc.TestResults[0].Duration)
	assert.Nil(t, doc.TestResults[0].Error)
	require.NotNil(t, doc.TestResults[1].Error)
	assert.Equal(t, "boom", *doc.TestResults[1].Error)
	assert.Equal(t, domain.StatusFail, doc.TestResults[1].Status)
	assert.Equal(t, "0ms", doc.TestResults[2].Duration)
	assert.Equal(t, []domain.FailureDigest{{TestName: "two", Error: "boom"}}, doc.Errors)
	assert.Equal(t, env, doc.Environment)

	for i := 1; i < len(doc.TestResults); i++ {
		assert.LessOrEqual(t, doc.TestResults[i-1].Timestamp, doc.TestResults[i].Timestamp)
	}
}

func TestBuildDocument_Idempotent(t *testing.T) {
	in := sampleInput()
	first := BuildDocument(in, CurrentEnvironment(time.Now()))
	second := BuildDocument(in, CurrentEnvironment(time.Now().Add(time.Hour)))

	a, err := json.Marshal([]interface{}{first.Summary, first.TestResults})
	require.NoError(t, err)
	b, err := json.Marshal([]interface{}{second.Summary, second.TestResults})
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuildDocument_NoTests(t *testing.T) {
	start := time.Now()
	doc := BuildDocument(Input{Results: NewAccumulator(), StartTime: start, EndTime: start}, domain.Environment{})

	assert.Equal(t, "0.0%", doc.Summary.SuccessRate)
	assert.Equal(t, ResultNoTests, doc.Summary.FinalResult)
	assert.NotNil(t, doc.TestResults)
	assert.NotNil(t, doc.Errors)
}

func TestGenerator_Generate(t *testing.T) {
	logging.SetLogger(logging.Discard())

	t.Run("renders then saves", func(t *testing.T) {
		r, s, h := &fakeRenderer{}, &fakeStore{}, &fakeHistory{}
		doc, ok := NewGenerator(r, s, h).Generate(context.Background(), sampleInput())

		assert.False(t, ok)
		require.Len(t, r.views, 1)
		assert.Equal(t, 3, r.views[0].Summary.Total)
		assert.Len(t, r.views[0].Failures, 1)
		assert.Equal(t, "automation-reports/report.json", r.savedPath)
		require.Len(t, s.docs, 1)
		assert.Equal(t, doc.Summary, s.docs[0].Summary)
		assert.Equal(t, []string{"run-1"}, h.recorded)
	})

	t.Run("save failure does not change the verdict", func(t *testing.T) {
		start := time.Now()
		acc := NewAccumulator()
		acc.Append(domain.TestResult{Name: "ok", Status: domain.StatusPass, Timestamp: start})
		in := Input{RunID: "run-2", Results: acc, StartTime: start, EndTime: start}

		r := &fakeRenderer{}
		writeErr := errors.New("permission denied")
		doc, ok := NewGenerator(r, &fakeStore{err: writeErr}, nil).Generate(context.Background(), in)

		assert.True(t, ok)
		assert.Equal(t, ResultAllPassed, doc.Summary.FinalResult)
		assert.Equal(t, writeErr, r.saveErr)
		assert.Empty(t, r.savedPath)
		require.Len(t, r.views, 1)
	})

	t.Run("history failure is not fatal", func(t *testing.T) {
		h := &fakeHistory{err: errors.New("connection refused")}
		_, ok := NewGenerator(&fakeRenderer{}, &fakeStore{}, h).Generate(context.Background(), sampleInput())
		assert.False(t, ok)
		assert.Len(t, h.recorded, 1)
	})
}

func TestViewFromDocument(t *testing.T) {
	in := sampleInput()
	doc := BuildDocument(in, domain.Environment{})

	view, err := ViewFromDocument(&doc)
	require.NoError(t, err)
	assert.Equal(t, in.Summary(), view.Summary)
	assert.Equal(t, in.Results.Digests(), view.Failures)
	require.Len(t, view.Results, 3)
	assert.Equal(t, 7*time.Millisecond, view.Results[1].Duration)
	assert.True(t, in.Results.All()[1].Timestamp.Equal(view.Results[1].Timestamp))

	doc.Summary.StartTime = "yesterday"
	_, err = ViewFromDocument(&doc)
	assert.ErrorContains(t, err, "summary start time")
}
