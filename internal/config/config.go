package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shopfilter needs to start.
type Config struct {
	BaseURL     string // Storefront API base, e.g. https://shop.test/
	StartURL    string // Listing page URL the filters start from
	LogFile     string
	MetricsAddr string // Empty disables the /metrics listener
}

// BaseURLEnv overrides the configured API base URL.
const BaseURLEnv = "SHOPFILTER_BASE_URL"

const (
	defaultConfigPath = "~/.config/shopfilter/config.toml"
	defaultBaseURL    = "http://127.0.0.1:3000/"
	defaultStartURL   = "http://127.0.0.1:3000/products"
	defaultLogFile    = "~/.local/state/shopfilter/shopfilter.log"
)

// Load locates and parses the config, falling back to defaults when missing.
// BaseURLEnv takes precedence over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{BaseURL: defaultBaseURL, StartURL: defaultStartURL, LogFile: mustExpand(defaultLogFile)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL     string `toml:"base_url"`
		StartURL    string `toml:"start_url"`
		LogFile     string `toml:"log_file"`
		MetricsAddr string `toml:"metrics_addr"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(raw.StartURL); v != "" {
		cfg.StartURL = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(BaseURLEnv)); v != "" {
		cfg.BaseURL = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
