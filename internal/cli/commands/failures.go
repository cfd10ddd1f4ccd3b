package commands

import (
	"io"

	"github.com/spf13/cobra"

	"apirunner/internal/config"
	"apirunner/internal/logging"
	"apirunner/internal/storage"
	"apirunner/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config *config.Config
	out    io.Writer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, out io.Writer) *FailuresCommand {
	return &FailuresCommand{
		config: cfg,
		out:    out,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	doc, path, err := loadReport(storage.NewJSONStorage(fc.config), fc.config.Flags.ReportFile)
	if err != nil {
		return err
	}

	logging.Logger.Debug("Viewing failures", "report", path, "run_id", doc.RunID)
	return ui.NewFailuresViewer(fc.out).View(doc)
}
