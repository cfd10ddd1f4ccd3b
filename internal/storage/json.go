package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"apirunner/internal/domain"
)

const (
	reportPrefix = "test-report-"
	reportSuffix = ".json"
)

// ReportFileName returns the file name of the report for a run started at runStart.
func ReportFileName(runStart time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(domain.FormatTime(runStart))
	return reportPrefix + stamp + reportSuffix
}

// Save writes doc under the reports directory, creating it if needed, and returns the written path.
func (s *JSONStorage) Save(doc *domain.Document, runStart time.Time) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(s.dir, ReportFileName(runStart))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Load reads a report from path.
func (s *JSONStorage) Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &doc, nil
}

// Latest returns the newest report in the reports directory. Report names
// embed the run start time, so lexical order is chronological order.
func (s *JSONStorage) Latest() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoReports
		}
		return "", fmt.Errorf("read reports dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), reportPrefix) && strings.HasSuffix(e.Name(), reportSuffix) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", ErrNoReports
	}
	sort.Strings(names)
	return filepath.Join(s.dir, names[len(names)-1]), nil
}
