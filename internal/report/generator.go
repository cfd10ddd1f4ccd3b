package report

import (
	"context"
	"time"

	"apirunner/internal/domain"
	"apirunner/internal/logging"
)

// View is the data rendered on the console for a finished run
type View struct {
	Summary  Summary
	Results  []domain.TestResult
	Failures []domain.FailureDigest
}

// Renderer displays a finished run to the user
type Renderer interface {
	RenderReport(view View)
	ReportSaved(path string)
	ReportSaveFailed(err error)
}

// Store persists report documents
type Store interface {
	Save(doc *domain.Document, runStart time.Time) (string, error)
}

// HistoryRecorder keeps a long-lived record of past runs
type HistoryRecorder interface {
	Record(ctx context.Context, doc *domain.Document) error
}

// Generator renders and persists the report of a finished run
type Generator struct {
	renderer Renderer
	store    Store
	history  HistoryRecorder
	now      func() time.Time
}

// NewGenerator creates a new Generator. history may be nil.
func NewGenerator(renderer Renderer, store Store, history HistoryRecorder) *Generator {
	return &Generator{
		renderer: renderer,
		store:    store,
		history:  history,
		now:      time.Now,
	}
}

// Generate shows the console report, then persists the structured document.
// Persistence failures are reported but never change the returned verdict.
func (g *Generator) Generate(ctx context.Context, in Input) (domain.Document, bool) {
	summary := in.Summary()

	g.renderer.RenderReport(View{
		Summary:  summary,
		Results:  in.Results.All(),
		Failures: in.Results.Digests(),
	})

	doc := BuildDocument(in, CurrentEnvironment(g.now()))

	path, err := g.store.Save(&doc, in.StartTime)
	if err != nil {
		logging.Logger.Error("Failed to save JSON report", "run_id", in.RunID, "error", err)
		g.renderer.ReportSaveFailed(err)
	} else {
		g.renderer.ReportSaved(path)
	}

	if g.history != nil {
		if err := g.history.Record(ctx, &doc); err != nil {
			logging.Logger.Warn("Failed to record run history", "run_id", in.RunID, "error", err)
		}
	}

	return doc, summary.OK()
}
