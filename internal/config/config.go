package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Backend API settings
	API APIConfig `yaml:"api"`

	// Local draft database settings
	Database DatabaseConfig `yaml:"database"`

	// Defaults pre-filled into the wizard's identity step
	User UserConfig `yaml:"user"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`        // Marketplace backend base URL
	TimeoutSeconds int    `yaml:"timeout_seconds"` // Per-request timeout
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to the encrypted drafts database
}

type UserConfig struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Country   string `yaml:"country"` // lowercase ISO code, e.g. "us"
}

// DefaultConfigPath returns ~/.config/gigpost/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "gigpost", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "gigpost", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8000/api/v1",
			TimeoutSeconds: 60,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(homeDir, ".config", "gigpost", "gigpost.db"),
		},
		User: UserConfig{
			Country: "us",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't
// exist. The GIGPOST_API_URL environment variable beats the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if url := os.Getenv("GIGPOST_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories the config points at
func (c *Config) EnsureDirectories() error {
	dbDir := filepath.Dir(c.Database.Path)
	return os.MkdirAll(dbDir, 0700)
}
