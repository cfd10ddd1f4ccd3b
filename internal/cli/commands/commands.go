package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"apirunner/internal/cli"
	"apirunner/internal/config"
	"apirunner/internal/logging"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Show     *ShowCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands. cfg is filled in from flags, files and
// the environment before any command executes.
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	if out == nil {
		out = os.Stdout
	}
	return &Commands{
		Run:      NewRunCommand(cfg, out),
		Show:     NewShowCommand(cfg, out),
		Failures: NewFailuresCommand(cfg, out),
		History:  NewHistoryCommand(cfg, out),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file (default: apirunner.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flags.ReportsDir, "reports-dir", "", "Directory holding the JSON test reports")
	rootCmd.PersistentFlags().StringVar(&flags.HistoryDSN, "history-dsn", "", "MySQL DSN for the run history table")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logging.Setup(os.Stderr, flags.Verbose)

		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the API test suite",
		Long:  "Run the book store API test cases in order, print the report and save it as JSON",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.BaseURL, "base-url", "u", "", "Base URL of the API under test")
	runCmd.Flags().DurationVar(&flags.CaseTimeout, "case-timeout", 0, "Fail a test case that runs longer than this (0 disables)")
	runCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar while the suite runs")
	rootCmd.AddCommand(runCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print a saved test report",
		Long:  "Render the console report of the latest (or a given) JSON test report without running the suite",
		Args:  cobra.NoArgs,
		RunE:  c.Show.Execute,
	}
	showCmd.Flags().StringVarP(&flags.ReportFile, "report", "r", "", "Report file to show (default: latest)")
	rootCmd.AddCommand(showCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display the failed test cases of the latest (or a given) report in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	failuresCmd.Flags().StringVarP(&flags.ReportFile, "report", "r", "", "Report file to view (default: latest)")
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List the most recent runs recorded in the MySQL history table",
		Args:  cobra.NoArgs,
		RunE:  c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&flags.HistoryLimit, "limit", "n", config.DefaultHistoryLimit, "Number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
