package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Target API
	BaseURL       string `yaml:"base_url"`
	Author        string `yaml:"author"`
	ExpectedBooks int    `yaml:"expected_books"`

	// Transport settings
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`

	// Execution settings; zero disables the per-case deadline
	CaseTimeout time.Duration `yaml:"case_timeout"`

	// Output settings
	ReportsDir string `yaml:"reports_dir"`
	HistoryDSN string `yaml:"history_dsn"`

	// Command flags
	Flags Flags `yaml:"-"`
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Author:         DefaultAuthor,
		ExpectedBooks:  DefaultExpectedBooks,
		RequestTimeout: DefaultRequestTimeout,
		ReportsDir:     DefaultReportsDir,
		Flags:          Flags{HistoryLimit: DefaultHistoryLimit},
	}
}

// Load builds the config from defaults, the config file, .env and
// APIRUNNER_* variables, then applies flag overrides, in that order.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	if err := cfg.loadFile(flags.ConfigFile); err != nil {
		return nil, err
	}

	// .env might not exist, that's okay - use the process environment
	_ = godotenv.Load(DefaultEnvFile)
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.Apply(flags)
	return cfg, nil
}

// Apply copies non-empty flag values over the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.ReportsDir != "" {
		c.ReportsDir = flags.ReportsDir
	}
	if flags.HistoryDSN != "" {
		c.HistoryDSN = flags.HistoryDSN
	}
	if flags.CaseTimeout > 0 {
		c.CaseTimeout = flags.CaseTimeout
	}
	if c.Flags.HistoryLimit <= 0 {
		c.Flags.HistoryLimit = DefaultHistoryLimit
	}
}

// loadFile reads path, or the first default config file found when path is empty.
// A missing default file is not an error.
func (c *Config) loadFile(path string) error {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		for _, name := range DefaultConfigFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("read config file %s: %w", name, err)
			}
		}
		if path == "" {
			return nil
		}
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("APIRUNNER_BASE_URL"); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup("APIRUNNER_REPORTS_DIR"); ok && v != "" {
		c.ReportsDir = v
	}
	if v, ok := lookup("APIRUNNER_HISTORY_DSN"); ok && v != "" {
		c.HistoryDSN = v
	}
	if v, ok := lookup("APIRUNNER_CASE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid APIRUNNER_CASE_TIMEOUT %q: %w", v, err)
		}
		c.CaseTimeout = d
	}
	if v, ok := lookup("APIRUNNER_EXPECTED_BOOKS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid APIRUNNER_EXPECTED_BOOKS %q: %w", v, err)
		}
		c.ExpectedBooks = n
	}
	return nil
}

// GetReportsDir returns the absolute reports directory. Relative paths
// resolve against the working directory.
func (c *Config) GetReportsDir() string {
	if abs, err := filepath.Abs(c.ReportsDir); err == nil {
		return abs
	}
	return c.ReportsDir
}

// HistoryEnabled reports whether run history should be recorded
func (c *Config) HistoryEnabled() bool {
	return c.HistoryDSN != ""
}
