package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"trustlens/internal/images"
	"trustlens/internal/inspector"
	"trustlens/internal/webclient"
)

// Config is the file-level configuration for the service and CLI.
// Zero values fall back to component defaults, so a partial file is
// always valid.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Client struct {
		Backend        string `yaml:"backend"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Headless       *bool  `yaml:"headless"`
	} `yaml:"client"`

	Fetcher struct {
		UserAgent      string `yaml:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		MaxAttempts    int    `yaml:"max_attempts"`
		BackoffSeconds int    `yaml:"backoff_seconds"`
	} `yaml:"fetcher"`

	Whois struct {
		Retries      int `yaml:"retries"`
		DelaySeconds int `yaml:"delay_seconds"`
	} `yaml:"whois"`

	Wayback struct {
		AvailabilityURL string `yaml:"availability_url"`
		CDXURL          string `yaml:"cdx_url"`
		Retries         int    `yaml:"retries"`
		DelaySeconds    int    `yaml:"delay_seconds"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
	} `yaml:"wayback"`

	Images struct {
		Dir           string  `yaml:"dir"`
		RatePerSecond float64 `yaml:"rate_per_second"`
	} `yaml:"images"`

	Keywords []string `yaml:"keywords"`
}

// Load reads a YAML config file. A missing file is an error; use a nil
// *Config (or Default) when no file was given.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns a Config whose derived component configs all match
// their package defaults.
func Default() *Config {
	return &Config{}
}

// ListenAddr returns the HTTP listen address, defaulting to :8080.
func (c *Config) ListenAddr() string {
	if c != nil && c.Server.Addr != "" {
		return c.Server.Addr
	}
	return ":8080"
}

// WebClientConfig derives the web client settings.
func (c *Config) WebClientConfig() webclient.Config {
	wc := webclient.DefaultConfig()
	if c == nil {
		return wc
	}
	if c.Client.Backend != "" {
		wc.Backend = webclient.Backend(c.Client.Backend)
	}
	if c.Client.TimeoutSeconds > 0 {
		wc.Timeout = time.Duration(c.Client.TimeoutSeconds) * time.Second
	}
	if c.Client.Headless != nil {
		wc.Headless = *c.Client.Headless
	}
	return wc
}

// InspectorConfig derives the full pipeline settings.
func (c *Config) InspectorConfig() *inspector.Config {
	ic := inspector.DefaultConfig()
	if c == nil {
		return ic
	}
	if c.Fetcher.UserAgent != "" {
		ic.Fetcher.UserAgent = c.Fetcher.UserAgent
	}
	if c.Fetcher.TimeoutSeconds > 0 {
		ic.Fetcher.Timeout = time.Duration(c.Fetcher.TimeoutSeconds) * time.Second
	}
	if c.Fetcher.MaxAttempts > 0 {
		ic.Fetcher.MaxAttempts = c.Fetcher.MaxAttempts
	}
	if c.Fetcher.BackoffSeconds > 0 {
		ic.Fetcher.BackoffBase = time.Duration(c.Fetcher.BackoffSeconds) * time.Second
	}
	if c.Whois.Retries > 0 {
		ic.Whois.Retries = c.Whois.Retries
	}
	if c.Whois.DelaySeconds > 0 {
		ic.Whois.Delay = time.Duration(c.Whois.DelaySeconds) * time.Second
	}
	if c.Wayback.AvailabilityURL != "" {
		ic.Wayback.AvailabilityURL = c.Wayback.AvailabilityURL
	}
	if c.Wayback.CDXURL != "" {
		ic.Wayback.CDXURL = c.Wayback.CDXURL
	}
	if c.Wayback.Retries > 0 {
		ic.Wayback.Retries = c.Wayback.Retries
	}
	if c.Wayback.DelaySeconds > 0 {
		ic.Wayback.Delay = time.Duration(c.Wayback.DelaySeconds) * time.Second
	}
	if c.Wayback.TimeoutSeconds > 0 {
		ic.Wayback.Timeout = time.Duration(c.Wayback.TimeoutSeconds) * time.Second
	}
	if len(c.Keywords) > 0 {
		ic.Catalog = c.Keywords
	}
	return ic
}

// CollectorConfig derives the image download settings.
func (c *Config) CollectorConfig() images.CollectorConfig {
	cc := images.DefaultCollectorConfig()
	if c == nil {
		return cc
	}
	if c.Images.Dir != "" {
		cc.Dir = c.Images.Dir
	}
	if c.Images.RatePerSecond > 0 {
		cc.RatePerSecond = c.Images.RatePerSecond
	}
	return cc
}
