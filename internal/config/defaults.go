package config

import "time"

const (
	// DefaultBaseURL is the root of the API under test
	DefaultBaseURL = "https://demoqa.com"
	// DefaultReportsDir is the directory, relative to the working directory, reports are written to
	DefaultReportsDir = "automation-reports"
	// DefaultAuthor is the author the assertion case looks up
	DefaultAuthor = "Addy Osmani"
	// DefaultExpectedBooks is the catalogue size the assertion case expects
	DefaultExpectedBooks = 8
	// DefaultRequestTimeout bounds a single HTTP request
	DefaultRequestTimeout = 30 * time.Second
	// DefaultHistoryLimit is the number of runs the history command lists
	DefaultHistoryLimit = 20
	// DefaultEnvFile is loaded before reading APIRUNNER_* variables
	DefaultEnvFile = ".env"
)

// DefaultConfigFiles are searched in order when no --config flag is given
var DefaultConfigFiles = []string{
	"apirunner.yaml",
	"apirunner.yml",
}
