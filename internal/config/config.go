package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for the Socket CLI and
// SDK defaults. Fields are pointers so "unset" is distinguishable from the
// zero value when layering file, env and flag sources.
type FileConfig struct {
	Token         *string `yaml:"token"`
	BaseURL       *string `yaml:"base_url"`
	Retries       *int    `yaml:"retries"`
	RetryDelayMs  *int    `yaml:"retry_delay_ms"`
	NoUpdateCheck *bool   `yaml:"no_update_check"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .socket.yml/.yaml and socket.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".socket.yml", ".socket.yaml", "socket.yml", "socket.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "socket", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// FromEnv builds a FileConfig from environment variables. Env values win
// over file values when the caller layers them.
func FromEnv() FileConfig {
	var cfg FileConfig
	if v := os.Getenv("SOCKET_SECURITY_API_KEY"); v != "" {
		cfg.Token = &v
	}
	if v := os.Getenv("SOCKET_API_BASE_URL"); v != "" {
		cfg.BaseURL = &v
	}
	return cfg
}

// GetToken returns the configured token or empty string.
func (fc FileConfig) GetToken() string {
	if fc.Token == nil {
		return ""
	}
	return *fc.Token
}

// GetBaseURL returns the configured base URL or empty string.
func (fc FileConfig) GetBaseURL() string {
	if fc.BaseURL == nil {
		return ""
	}
	return *fc.BaseURL
}

// GetRetries returns the configured retry count, or 0 when unset.
func (fc FileConfig) GetRetries() int {
	if fc.Retries == nil {
		return 0
	}
	return *fc.Retries
}

// IsUpdateCheckEnabled returns true unless the config disables it.
func (fc FileConfig) IsUpdateCheckEnabled() bool {
	if fc.NoUpdateCheck == nil {
		return true
	}
	return !*fc.NoUpdateCheck
}
