package cli

import (
	"time"

	"apirunner/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile   string
	BaseURL      string
	ReportsDir   string
	HistoryDSN   string
	CaseTimeout  time.Duration
	ReportFile   string
	HistoryLimit int
	Progress     bool
	Verbose      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:   f.ConfigFile,
		BaseURL:      f.BaseURL,
		ReportsDir:   f.ReportsDir,
		HistoryDSN:   f.HistoryDSN,
		CaseTimeout:  f.CaseTimeout,
		ReportFile:   f.ReportFile,
		HistoryLimit: f.HistoryLimit,
		Progress:     f.Progress,
		Verbose:      f.Verbose,
	}
}
