package storage

import (
	"errors"
	"time"

	"apirunner/internal/config"
	"apirunner/internal/domain"
)

// ErrNoReports is returned when the reports directory holds no report
var ErrNoReports = errors.New("no test reports found")

// Storage persists and loads run reports (e.g. for the show and failures commands).
type Storage interface {
	Save(doc *domain.Document, runStart time.Time) (string, error)
	Load(path string) (*domain.Document, error)
	// Latest returns the path of the most recent report.
	Latest() (string, error)
}

// JSONStorage stores each run's report as its own JSON file under the reports directory.
type JSONStorage struct {
	dir string
}

// NewJSONStorage returns a Storage that reads/writes the config's reports directory.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{dir: cfg.ReportsDir}
}

// Dir returns the reports directory
func (s *JSONStorage) Dir() string {
	return s.dir
}
