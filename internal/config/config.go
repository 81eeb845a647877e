// Package config resolves the configuration directory, config file, and derived paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// DefaultTaskFile is the task file used when nothing else is configured.
	DefaultTaskFile = "todos.json"

	// ConfigFile is the optional TOML settings filename inside Dir.
	ConfigFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// Environment overrides.
	EnvFile        = "TODO_FILE"
	EnvMetricsFile = "TODO_METRICS_FILE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File is the task file loaded and saved by list commands.
	File string

	// MetricsFile is where a Prometheus textfile is written after each run.
	// Empty disables metrics output.
	MetricsFile string

	// RemoteList names the Google Tasks list used by push and pull.
	// Empty means the account's default list.
	RemoteList string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileSettings mirrors config.toml.
type fileSettings struct {
	File        string `toml:"file"`
	MetricsFile string `toml:"metrics_file"`
	RemoteList  string `toml:"remote_list"`
}

// New creates a Config for configDir, or the default directory when empty.
// Settings are layered: defaults, then config.toml, then environment.
// Callers apply flag overrides on the returned value.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, File: DefaultTaskFile}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	cfg.loadEnv()
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) loadFile() error {
	var s fileSettings
	_, err := toml.DecodeFile(c.ConfigPath(), &s)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config file %s: %w", c.ConfigPath(), err)
	}

	if s.File != "" {
		c.File = s.File
	}
	if s.MetricsFile != "" {
		c.MetricsFile = s.MetricsFile
	}
	if s.RemoteList != "" {
		c.RemoteList = s.RemoteList
	}
	return nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvFile); v != "" {
		c.File = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}
}

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
