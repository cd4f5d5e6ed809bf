package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scraper  ScraperConfig  `yaml:"scraper"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

type ScraperConfig struct {
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxReviews     int    `yaml:"max_reviews"`
}

type AnalysisConfig struct {
	DisableLinguisticHelper bool `yaml:"disable_linguistic_helper"`
	MinReviews              int  `yaml:"min_reviews"`
}

const defaultUserAgent = "Mozilla/5.0 (compatible; shopverdict/1.0)"

// Load reads configuration from the given path, or the defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	applyDefaults(&config)

	if config.Scraper.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("scraper.timeout_seconds must not be negative")
	}
	if config.Scraper.MaxReviews < 0 {
		return nil, fmt.Errorf("scraper.max_reviews must not be negative")
	}
	return &config, nil
}

// LoadFromEnv loads configuration from environment variables (fallback).
func LoadFromEnv() *Config {
	config := Default()
	if ua := os.Getenv("SHOPVERDICT_USER_AGENT"); ua != "" {
		config.Scraper.UserAgent = ua
	}
	if t := os.Getenv("SHOPVERDICT_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			config.Scraper.TimeoutSeconds = secs
		}
	}
	config.Analysis.DisableLinguisticHelper = os.Getenv("SHOPVERDICT_NO_HELPER") == "true"
	return config
}

func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Scraper.UserAgent == "" {
		config.Scraper.UserAgent = defaultUserAgent
	}
	if config.Scraper.TimeoutSeconds == 0 {
		config.Scraper.TimeoutSeconds = 20
	}
	if config.Scraper.MaxReviews == 0 {
		config.Scraper.MaxReviews = 100
	}
	if config.Analysis.MinReviews == 0 {
		config.Analysis.MinReviews = 1
	}
}

// FindConfigPath returns the path to the config file, trying the
// current directory then the executable directory.
func FindConfigPath() string {
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		configPath := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}
	return "config.yaml"
}
