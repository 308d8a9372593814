package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/harrisonrobin/habitick/pkg/auth"
)

const (
	xdgAppName = "habitick"
	configFile = "config.json"
)

// Config holds the credential pair and API root. Environment variables
// override whatever the config file has.
type Config struct {
	UserID   string `json:"user_id" env:"HABITICA_USER_ID"`
	APIToken string `json:"api_token" env:"HABITICA_API_TOKEN"`
	BaseURL  string `json:"base_url,omitempty" env:"HABITICA_API_URL"`
}

func GetConfigPath() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName, configFile), nil
}

// Load reads the config file if present, then applies environment overrides.
// A missing file is not an error; the environment alone can carry a full
// credential pair.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

// Credentials returns the credential pair for the request layer.
func (c *Config) Credentials() auth.Credentials {
	return auth.Credentials{UserID: c.UserID, APIToken: c.APIToken}
}
