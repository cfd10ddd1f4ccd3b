package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"apirunner/internal/config"
	"apirunner/internal/storage"
	"apirunner/internal/ui"
)

// ErrHistoryDisabled is returned by the history command when no DSN is configured
var ErrHistoryDisabled = errors.New("run history is disabled: set --history-dsn or APIRUNNER_HISTORY_DSN")

// HistoryCommand handles the history command
type HistoryCommand struct {
	config *config.Config
	out    io.Writer
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, out io.Writer) *HistoryCommand {
	return &HistoryCommand{
		config: cfg,
		out:    out,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	if !hc.config.HistoryEnabled() {
		return ErrHistoryDisabled
	}

	store, err := storage.NewHistoryStore(hc.config.HistoryDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), hc.config.Flags.HistoryLimit)
	if err != nil {
		return err
	}
	ui.NewConsole(hc.out).PrintHistory(entries)
	return nil
}
