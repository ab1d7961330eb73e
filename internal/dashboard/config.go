package dashboard

import (
	"fmt"
	"os"
	"time"

	"goods/internal/client"

	"gopkg.in/yaml.v3"
)

// Config is read from the dashboard YAML file.
type Config struct {
	BackendURL string        `yaml:"backend_url"`
	Timeout    time.Duration `yaml:"timeout"`
	Limit      int           `yaml:"limit"`
}

func DefaultConfig() Config {
	return Config{
		BackendURL: "http://localhost:8080",
		Timeout:    client.DefaultTimeout,
		Limit:      DefaultLimit,
	}
}

// LoadConfig overlays the file at path on the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Limit < 1 || cfg.Limit > MaxLimit {
		return cfg, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
	}
	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("timeout must be positive")
	}
	return cfg, nil
}
