package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"apirunner/internal/domain"
)

// FailuresViewer displays the failed cases of a persisted report in an interactive TUI
type FailuresViewer struct {
	out io.Writer
}

// NewFailuresViewer creates a new FailuresViewer. Messages outside the TUI go to out.
func NewFailuresViewer(out io.Writer) *FailuresViewer {
	return &FailuresViewer{out: out}
}

// Failed returns the FAIL entries of doc in execution order
func Failed(doc *domain.Document) []domain.DocumentEntry {
	var failed []domain.DocumentEntry
	for _, e := range doc.TestResults {
		if e.Status == domain.StatusFail {
			failed = append(failed, e)
		}
	}
	return failed
}

// View opens the viewer. It returns immediately when the report has no failures.
func (fv *FailuresViewer) View(doc *domain.Document) error {
	failed := Failed(doc)
	if len(failed) == 0 {
		fmt.Fprintln(fv.out, color.GreenString("✓ No test failures found!"))
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, e := range failed {
		list.AddItem(listItemText(e, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(doc, len(failed)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failed) {
			return
		}
		statsView.SetText(formatFailureStats(failed[index], doc.RunID))
		detailsView.SetText(formatFailureDetails(failed[index])).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(doc *domain.Document, failed int) string {
	return fmt.Sprintf(" Failed Tests (%d of %d) | %s | ↑↓ navigate, → details, ← back, Ctrl+C exit ",
		failed, doc.Summary.TotalTests, doc.Summary.FinalResult)
}

func listItemText(e domain.DocumentEntry, index int) string {
	name := e.TestName
	if name == "" {
		name = fmt.Sprintf("Test %d", index+1)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(name))
}

// formatFailureStats formats the header line above the details pane
func formatFailureStats(e domain.DocumentEntry, runID string) string {
	if runID == "" {
		runID = "unknown run"
	}
	return fmt.Sprintf("[cyan]run:[white] [yellow]%s[white]\n[cyan]at:[white] %s  [cyan]took:[white] %s\n",
		runID, e.Timestamp, e.Duration)
}

// formatFailureDetails formats a failed case using tview color tags
func formatFailureDetails(e domain.DocumentEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(e.TestName))

	msg := "test failed with no failure message"
	if e.Error != nil && *e.Error != "" {
		msg = *e.Error
	}
	fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n", tview.Escape(msg))
	return b.String()
}
