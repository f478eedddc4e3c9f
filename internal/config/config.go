// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir  string `yaml:"data_dir"`
		Port     int    `yaml:"port"`
		RawDumps bool   `yaml:"raw_dumps"`
	} `yaml:"app"`

	Portal struct {
		Name       string   `yaml:"name"`     // getonbrd.com
		BaseURL    string   `yaml:"base_url"` // https://www.getonbrd.com
		Categories []string `yaml:"categories"`
	} `yaml:"portal"`

	Scraping struct {
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		MaxJobAgeDays     int     `yaml:"max_job_age_days"`
		DelayMinMs        int     `yaml:"delay_min_ms"`
		DelayMaxMs        int     `yaml:"delay_max_ms"`
		BatchSize         int     `yaml:"batch_size"`
		BatchPauseSeconds int     `yaml:"batch_pause_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"scraping"`

	Classifier struct {
		MinScore int `yaml:"min_score"`
	} `yaml:"classifier"`

	Polling struct {
		IntervalMinutes int `yaml:"interval_minutes"`
	} `yaml:"polling"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Portal.Name == "" {
		cfg.Portal.Name = "getonbrd.com"
	}
	if cfg.Portal.BaseURL == "" {
		cfg.Portal.BaseURL = "https://www.getonbrd.com"
	}
	if len(cfg.Portal.Categories) == 0 {
		cfg.Portal.Categories = []string{"programming"}
	}
	if cfg.Scraping.TimeoutSeconds <= 0 {
		cfg.Scraping.TimeoutSeconds = 10
	}
	if cfg.Scraping.MaxJobAgeDays <= 0 {
		cfg.Scraping.MaxJobAgeDays = 30
	}
	if cfg.Scraping.DelayMinMs <= 0 {
		cfg.Scraping.DelayMinMs = 1000
	}
	if cfg.Scraping.DelayMaxMs < cfg.Scraping.DelayMinMs {
		cfg.Scraping.DelayMaxMs = cfg.Scraping.DelayMinMs + 2000
	}
	if cfg.Scraping.BatchSize <= 0 {
		cfg.Scraping.BatchSize = 10
	}
	if cfg.Scraping.BatchPauseSeconds <= 0 {
		cfg.Scraping.BatchPauseSeconds = 15
	}
	if cfg.Scraping.RequestsPerSecond <= 0 {
		cfg.Scraping.RequestsPerSecond = 1
	}
	if cfg.Scraping.Burst <= 0 {
		cfg.Scraping.Burst = 1
	}
	if cfg.Classifier.MinScore <= 0 {
		cfg.Classifier.MinScore = 70
	}
}
