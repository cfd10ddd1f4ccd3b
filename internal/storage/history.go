package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"apirunner/internal/domain"
)

const createHistoryTable = `CREATE TABLE IF NOT EXISTS api_test_runs (
	run_id        VARCHAR(36)  NOT NULL PRIMARY KEY,
	started_at    DATETIME(3)  NOT NULL,
	ended_at      DATETIME(3)  NOT NULL,
	total_tests   INT          NOT NULL,
	passed_tests  INT          NOT NULL,
	failed_tests  INT          NOT NULL,
	success_rate  VARCHAR(16)  NOT NULL,
	final_result  VARCHAR(64)  NOT NULL,
	report        JSON         NOT NULL
)`

const insertHistoryRun = `INSERT INTO api_test_runs
	(run_id, started_at, ended_at, total_tests, passed_tests, failed_tests, success_rate, final_result, report)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectRecentRuns = `SELECT run_id, started_at, ended_at, total_tests, passed_tests, failed_tests, success_rate, final_result
	FROM api_test_runs ORDER BY started_at DESC LIMIT ?`

// HistoryEntry is one recorded run
type HistoryEntry struct {
	RunID       string
	StartedAt   time.Time
	EndedAt     time.Time
	TotalTests  int
	PassedTests int
	FailedTests int
	SuccessRate string
	FinalResult string
}

// HistoryStore appends run summaries to a MySQL table
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore validates dsn and prepares a connection pool. No connection is made until first use.
func NewHistoryStore(dsn string) (*HistoryStore, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid history DSN: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create history connector: %w", err)
	}
	return &HistoryStore{db: sql.OpenDB(connector)}, nil
}

// Record stores doc as a new history row, creating the table if it does not exist.
func (h *HistoryStore) Record(ctx context.Context, doc *domain.Document) error {
	if _, err := h.db.ExecContext(ctx, createHistoryTable); err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	started, err := time.Parse(time.RFC3339, doc.Summary.StartTime)
	if err != nil {
		return fmt.Errorf("parse start time: %w", err)
	}
	ended, err := time.Parse(time.RFC3339, doc.Summary.EndTime)
	if err != nil {
		return fmt.Errorf("parse end time: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = h.db.ExecContext(ctx, insertHistoryRun,
		doc.RunID,
		started,
		ended,
		doc.Summary.TotalTests,
		doc.Summary.PassedTests,
		doc.Summary.FailedTests,
		doc.Summary.SuccessRate,
		doc.Summary.FinalResult,
		string(raw),
	)
	if err != nil {
		return fmt.Errorf("insert history row: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *HistoryStore) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := h.db.QueryContext(ctx, selectRecentRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.RunID, &e.StartedAt, &e.EndedAt, &e.TotalTests, &e.PassedTests, &e.FailedTests, &e.SuccessRate, &e.FinalResult); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the connection pool
func (h *HistoryStore) Close() error {
	return h.db.Close()
}
