package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the client configuration.
type Config struct {
	AppEnv       string `yaml:"app_env"`
	BackendURL   string `yaml:"backend_url"`
	AnonKey      string `yaml:"anon_key"`
	ListenAddr   string `yaml:"listen_addr"`
	CacheBackend string `yaml:"cache_backend"`
	CachePath    string `yaml:"cache_path"`
}

// LoadConfig loads configuration from an optional YAML file (CONFIG_FILE)
// with environment variables taking precedence.
func LoadConfig() (*Config, error) {
	basePath := getEnv("DATA_DIR", "/var/lib/adjaoko")

	cfg := &Config{
		AppEnv:       "development",
		ListenAddr:   ":8080",
		CacheBackend: "sqlite",
		CachePath:    filepath.Join(basePath, "cache.db"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.BackendURL = getEnv("BACKEND_URL", cfg.BackendURL)
	cfg.AnonKey = getEnv("BACKEND_ANON_KEY", cfg.AnonKey)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.CacheBackend = getEnv("CACHE_BACKEND", cfg.CacheBackend)
	cfg.CachePath = getEnv("CACHE_PATH", cfg.CachePath)

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL must be set")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("BACKEND_ANON_KEY must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
