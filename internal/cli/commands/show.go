package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"apirunner/internal/config"
	"apirunner/internal/domain"
	"apirunner/internal/report"
	"apirunner/internal/storage"
	"apirunner/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config *config.Config
	out    io.Writer
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, out io.Writer) *ShowCommand {
	return &ShowCommand{
		config: cfg,
		out:    out,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	doc, _, err := loadReport(storage.NewJSONStorage(sc.config), sc.config.Flags.ReportFile)
	if err != nil {
		return err
	}

	view, err := report.ViewFromDocument(doc)
	if err != nil {
		return err
	}
	ui.NewConsole(sc.out).RenderReport(view)
	return nil
}

// loadReport loads path, or the latest report in the store when path is empty
func loadReport(st storage.Storage, path string) (*domain.Document, string, error) {
	if path == "" {
		latest, err := st.Latest()
		if err != nil {
			return nil, "", err
		}
		path = latest
	}

	doc, err := st.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load report %s: %w", path, err)
	}
	return doc, path, nil
}
