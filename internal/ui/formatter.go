package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"apirunner/internal/domain"
	"apirunner/internal/report"
	"apirunner/internal/storage"
)

const (
	ruleWidth    = 60
	subRuleWidth = 40

	passGlyph = "✅"
	failGlyph = "❌"
)

// Console prints suite progress and the finished report
type Console struct {
	out io.Writer
}

// NewConsole creates a Console writing to w. A nil w means stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{out: w}
}

// SuiteStarted prints the start banner
func (c *Console) SuiteStarted(total int) {
	fmt.Fprintln(c.out, color.CyanString("Starting API Test Suite..."))
	fmt.Fprintln(c.out)
}

// CaseFinished prints one line per settled case
func (c *Console) CaseFinished(result domain.TestResult) {
	if result.Passed() {
		fmt.Fprintf(c.out, "%s %s - %s (%dms)\n", passGlyph, result.Name, color.GreenString("PASSED"), result.DurationMillis())
		return
	}
	fmt.Fprintf(c.out, "%s %s - %s (%dms)\n", failGlyph, result.Name, color.RedString("FAILED"), result.DurationMillis())
	if result.Error != "" {
		fmt.Fprintf(c.out, "   Error: %s\n", result.Error)
	}
}

// RenderReport prints the full console report of a finished run
func (c *Console) RenderReport(view report.View) {
	s := view.Summary

	fmt.Fprintln(c.out)
	c.rule("=", ruleWidth)
	fmt.Fprintln(c.out, color.New(color.Bold).Sprint(center("TEST EXECUTION REPORT", ruleWidth)))
	c.rule("=", ruleWidth)
	c.summaryTable(s)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "DETAILED TEST RESULTS:")
	c.rule("-", subRuleWidth)
	for i, result := range view.Results {
		glyph := passGlyph
		if !result.Passed() {
			glyph = failGlyph
		}
		fmt.Fprintf(c.out, "%d. %s %s\n", i+1, glyph, result.Name)
		fmt.Fprintf(c.out, "   Duration: %dms\n", result.DurationMillis())
		fmt.Fprintf(c.out, "   Time: %s\n", domain.FormatTime(result.Timestamp))
		if result.Error != "" {
			fmt.Fprintf(c.out, "   Error: %s\n", color.RedString(result.Error))
		}
		fmt.Fprintln(c.out)
	}

	if s.Failed > 0 {
		fmt.Fprintln(c.out, color.RedString("FAILED TESTS SUMMARY:"))
		c.rule("-", subRuleWidth)
		for i, f := range view.Failures {
			fmt.Fprintf(c.out, "%d. %s: %s\n", i+1, f.TestName, f.Error)
		}
		fmt.Fprintln(c.out)
	}

	c.rule("=", ruleWidth)
	verdict := color.GreenString(s.FinalResult())
	if !s.OK() {
		verdict = color.RedString(s.FinalResult())
	}
	fmt.Fprintf(c.out, "FINAL RESULT: %s\n", verdict)
	c.rule("=", ruleWidth)
}

// ReportSaved prints where the structured report was written
func (c *Console) ReportSaved(path string) {
	fmt.Fprintf(c.out, "\n📄 JSON Test Report saved: %s\n", path)
}

// ReportSaveFailed prints a report persistence error
func (c *Console) ReportSaveFailed(err error) {
	fmt.Fprintln(c.out, color.RedString("Error saving JSON report: %v", err))
}

// PrintHistory prints recorded runs, newest first
func (c *Console) PrintHistory(entries []storage.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(c.out, color.YellowString("No recorded runs."))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run ID", "Started", "Duration", "Total", "Passed", "Failed", "Success Rate", "Result"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Total", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Success Rate", Align: text.AlignRight},
	})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.RunID,
			domain.FormatTime(e.StartedAt),
			fmt.Sprintf("%dms", e.EndedAt.Sub(e.StartedAt).Milliseconds()),
			e.TotalTests,
			e.PassedTests,
			e.FailedTests,
			e.SuccessRate,
			e.FinalResult,
		})
	}
	t.Render()
}

func (c *Console) summaryTable(s report.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.AppendRows([]table.Row{
		{"Execution Time", fmt.Sprintf("%dms", s.DurationMillis())},
		{"Total Tests", s.Total},
		{"Passed", s.Passed},
		{"Failed", s.Failed},
		{"Success Rate", s.SuccessRateText()},
	})
	t.Render()
}

func (c *Console) rule(char string, width int) {
	fmt.Fprintln(c.out, strings.Repeat(char, width))
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
