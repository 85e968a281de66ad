package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "NETFLIXGRAPH_CONFIG"

// Config holds all netflixgraph configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type InputConfig struct {
	RawFile     string `yaml:"raw_file"`
	CleanedFile string `yaml:"cleaned_file"`
	DateColumn  int    `yaml:"date_column"`
	DBPath      string `yaml:"db_path"`
	DBTable     string `yaml:"db_table"`
	DBColumn    string `yaml:"db_column"`
}

type OutputConfig struct {
	DOTFile            string `yaml:"dot_file"`
	HighlightThreshold int    `yaml:"highlight_threshold"`
	RankDir            string `yaml:"rank_dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file at path and merges it with defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault resolves the config path (environment first, then path) and
// loads it. With neither set the defaults are returned.
func LoadOrDefault(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return Load(expanded)
}

// Write marshals cfg as YAML into path, creating parent directories.
func Write(path string, cfg *Config) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Input.DateColumn < 0 {
		return fmt.Errorf("input.date_column must be >= 0, got %d", c.Input.DateColumn)
	}
	if c.Output.HighlightThreshold < 0 {
		return fmt.Errorf("output.highlight_threshold must be >= 0, got %d", c.Output.HighlightThreshold)
	}
	switch strings.ToUpper(c.Output.RankDir) {
	case "LR", "RL", "TB", "BT":
	default:
		return fmt.Errorf("output.rank_dir must be one of LR, RL, TB, BT, got %q", c.Output.RankDir)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return l, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
