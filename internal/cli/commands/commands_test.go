package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apirunner/internal/cli"
	"apirunner/internal/config"
	"apirunner/internal/logging"
	"apirunner/internal/storage"
)

func init() {
	color.NoColor = true
}

const bookStoreFixture = `{"books":[
	{"isbn":"9781449325862","title":"Git Pocket Guide","author":"Richard E. Silverman","pages":234},
	{"isbn":"9781449331818","title":"Learning JavaScript Design Patterns","author":"Addy Osmani","pages":254}
]}`

func newBookStore(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/BookStore/v1/Books":
			_, _ = w.Write([]byte(bookStoreFixture))
		case "/BookStore/v1/Book":
			_, _ = w.Write([]byte(`{"isbn":"` + r.URL.Query().Get("ISBN") + `"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func testConfig(t *testing.T, baseURL string, expectedBooks int) *config.Config {
	t.Helper()
	logging.SetLogger(logging.Discard())

	cfg := config.New()
	cfg.BaseURL = baseURL
	cfg.ExpectedBooks = expectedBooks
	cfg.RequestTimeout = 2 * time.Second
	cfg.ReportsDir = filepath.Join(t.TempDir(), "automation-reports")
	return cfg
}

func TestRunCommand_AllPassed(t *testing.T) {
	srv := newBookStore(t)
	cfg := testConfig(t, srv.URL, 2)

	var out bytes.Buffer
	require.NoError(t, NewRunCommand(cfg, &out).Execute(testCommand(), nil))

	console := out.String()
	assert.Contains(t, console, "Starting API Test Suite...")
	assert.Contains(t, console, "✅ Get Books API - PASSED")
	assert.Contains(t, console, "✅ Books API Assertions - PASSED")
	assert.Contains(t, console, "✅ Get Book by ISBN - PASSED")
	assert.Contains(t, console, "FINAL RESULT: ALL TESTS PASSED")
	assert.Contains(t, console, "JSON Test Report saved:")

	path, err := storage.NewJSONStorage(cfg).Latest()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	summary := raw["summary"].(map[string]interface{})
	assert.Equal(t, float64(3), summary["totalTests"])
	assert.Equal(t, "100.0%", summary["successRate"])
	assert.Equal(t, "ALL TESTS PASSED", summary["finalResult"])
}

func TestRunCommand_Failures(t *testing.T) {
	srv := newBookStore(t)
	cfg := testConfig(t, srv.URL, 8)

	var out bytes.Buffer
	err := NewRunCommand(cfg, &out).Execute(testCommand(), nil)
	assert.ErrorIs(t, err, ErrTestsFailed)

	console := out.String()
	assert.Contains(t, console, "❌ Books API Assertions - FAILED")
	assert.Contains(t, console, "book count: expected 8, got 2")
	assert.Contains(t, console, "FAILED TESTS SUMMARY:")
	assert.Contains(t, console, "FINAL RESULT: 1 TEST(S) FAILED")
}

func TestRunCommand_ReportWriteFailureKeepsVerdict(t *testing.T) {
	srv := newBookStore(t)
	cfg := testConfig(t, srv.URL, 2)

	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg.ReportsDir = blocker

	var out bytes.Buffer
	require.NoError(t, NewRunCommand(cfg, &out).Execute(testCommand(), nil))
	assert.Contains(t, out.String(), "FINAL RESULT: ALL TESTS PASSED")
	assert.Contains(t, out.String(), "Error saving JSON report:")
}

func TestShowCommand(t *testing.T) {
	srv := newBookStore(t)
	cfg := testConfig(t, srv.URL, 2)
	require.NoError(t, NewRunCommand(cfg, &bytes.Buffer{}).Execute(testCommand(), nil))

	var out bytes.Buffer
	require.NoError(t, NewShowCommand(cfg, &out).Execute(testCommand(), nil))
	assert.Contains(t, out.String(), "TEST EXECUTION REPORT")
	assert.Contains(t, out.String(), "3. ✅ Get Book by ISBN")
	assert.Contains(t, out.String(), "FINAL RESULT: ALL TESTS PASSED")
}

func TestShowCommand_NoReports(t *testing.T) {
	cfg := testConfig(t, "http://unused", 0)
	err := NewShowCommand(cfg, &bytes.Buffer{}).Execute(testCommand(), nil)
	assert.ErrorIs(t, err, storage.ErrNoReports)
}

func TestFailuresCommand_NoFailures(t *testing.T) {
	srv := newBookStore(t)
	cfg := testConfig(t, srv.URL, 2)
	require.NoError(t, NewRunCommand(cfg, &bytes.Buffer{}).Execute(testCommand(), nil))

	var out bytes.Buffer
	require.NoError(t, NewFailuresCommand(cfg, &out).Execute(testCommand(), nil))
	assert.Contains(t, out.String(), "No test failures found!")
}

func TestHistoryCommand_Disabled(t *testing.T) {
	cfg := testConfig(t, "http://unused", 0)
	err := NewHistoryCommand(cfg, &bytes.Buffer{}).Execute(testCommand(), nil)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestRegister(t *testing.T) {
	root := &cobra.Command{Use: "apirunner"}
	cfg := config.New()
	var flags cli.Flags

	NewCommands(cfg, &bytes.Buffer{}).Register(root, &flags, cfg)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"run", "show", "failures", "history"}, names)

	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	assert.NotNil(t, run.Flags().Lookup("base-url"))
	assert.NotNil(t, run.Flags().Lookup("case-timeout"))
	assert.NotNil(t, root.PersistentFlags().Lookup("reports-dir"))
}
