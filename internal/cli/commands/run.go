package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"apirunner/internal/bookstore"
	"apirunner/internal/config"
	"apirunner/internal/execution"
	"apirunner/internal/httpclient"
	"apirunner/internal/logging"
	"apirunner/internal/report"
	"apirunner/internal/storage"
	"apirunner/internal/ui"
)

// ErrTestsFailed is returned by the run command when at least one case failed
var ErrTestsFailed = errors.New("one or more tests failed")

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	out    io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, out io.Writer) *RunCommand {
	return &RunCommand{
		config: cfg,
		out:    out,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.config

	client := httpclient.New(cfg.RequestTimeout, cfg.RequestsPerSecond)
	books := bookstore.NewSuite(client, cfg.BaseURL, cfg.Author, cfg.ExpectedBooks)
	cases := books.Cases()

	var history report.HistoryRecorder
	if store := rc.openHistory(); store != nil {
		defer store.Close()
		history = store
	}

	console := ui.NewConsole(rc.out)
	generator := report.NewGenerator(console, storage.NewJSONStorage(cfg), history)

	suite := execution.NewSuite(execution.NewRunner(console, cfg.CaseTimeout), generator, console)
	if cfg.Flags.Progress {
		if bar := ui.TerminalProgress(len(cases)); bar != nil {
			suite.SetProgress(bar)
		}
	}

	logging.Logger.Debug("Starting run", "base_url", cfg.BaseURL, "cases", len(cases))
	run, ok := suite.Execute(cmd.Context(), cases)
	logging.Logger.Debug("Run finished", "run_id", run.ID, "passed", run.Results.Passed(), "failed", run.Results.Failed())

	if !ok {
		return ErrTestsFailed
	}
	return nil
}

// openHistory returns the run history store, or nil when history is disabled
// or the DSN cannot be used.
func (rc *RunCommand) openHistory() *storage.HistoryStore {
	if !rc.config.HistoryEnabled() {
		return nil
	}
	store, err := storage.NewHistoryStore(rc.config.HistoryDSN)
	if err != nil {
		logging.Logger.Warn("Run history disabled", "error", err)
		return nil
	}
	return store
}
