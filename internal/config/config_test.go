package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"trustlens/internal/config"
	"trustlens/internal/webclient"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  addr: ":9090"
client:
  backend: chromedp
  timeout_seconds: 45
  headless: false
fetcher:
  user_agent: "custom-agent/1.0"
  max_attempts: 5
  backoff_seconds: 2
whois:
  retries: 4
wayback:
  cdx_url: "http://cdx.local/search"
images:
  dir: "imgcache"
  rate_per_second: 2
keywords:
  - "first copy"
  - "no warranty"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.ListenAddr(); got != ":9090" {
		t.Errorf("ListenAddr() = %q", got)
	}

	wc := cfg.WebClientConfig()
	if wc.Backend != webclient.BackendChromedp {
		t.Errorf("backend = %q", wc.Backend)
	}
	if wc.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", wc.Timeout)
	}
	if wc.Headless {
		t.Error("headless should be overridden to false")
	}

	ic := cfg.InspectorConfig()
	if ic.Fetcher.UserAgent != "custom-agent/1.0" {
		t.Errorf("user agent = %q", ic.Fetcher.UserAgent)
	}
	if ic.Fetcher.MaxAttempts != 5 {
		t.Errorf("max attempts = %d", ic.Fetcher.MaxAttempts)
	}
	if ic.Fetcher.BackoffBase != 2*time.Second {
		t.Errorf("backoff = %v", ic.Fetcher.BackoffBase)
	}
	if ic.Whois.Retries != 4 {
		t.Errorf("whois retries = %d", ic.Whois.Retries)
	}
	if ic.Wayback.CDXURL != "http://cdx.local/search" {
		t.Errorf("cdx url = %q", ic.Wayback.CDXURL)
	}
	if len(ic.Catalog) != 2 || ic.Catalog[0] != "first copy" {
		t.Errorf("catalog = %v", ic.Catalog)
	}

	cc := cfg.CollectorConfig()
	if cc.Dir != "imgcache" {
		t.Errorf("images dir = %q", cc.Dir)
	}
	if cc.RatePerSecond != 2 {
		t.Errorf("rate = %v", cc.RatePerSecond)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "server:\n  addr: \":7000\"\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ListenAddr() != ":7000" {
		t.Errorf("ListenAddr() = %q", cfg.ListenAddr())
	}

	ic := cfg.InspectorConfig()
	if ic.Fetcher.MaxAttempts != 3 {
		t.Errorf("max attempts = %d, want default 3", ic.Fetcher.MaxAttempts)
	}
	if ic.Fetcher.Timeout != 10*time.Second {
		t.Errorf("fetch timeout = %v, want default 10s", ic.Fetcher.Timeout)
	}
	if ic.Catalog != nil {
		t.Errorf("catalog = %v, want nil for default", ic.Catalog)
	}
	if cfg.WebClientConfig().Backend != webclient.BackendNetHTTP {
		t.Errorf("backend = %q, want nethttp", cfg.WebClientConfig().Backend)
	}
}

func TestNilConfigDerivesDefaults(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	if cfg.ListenAddr() != ":8080" {
		t.Errorf("ListenAddr() = %q", cfg.ListenAddr())
	}
	if cfg.InspectorConfig() == nil {
		t.Fatal("InspectorConfig() = nil")
	}
	if cfg.WebClientConfig().Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.WebClientConfig().Timeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "server: [not a mapping")
	if _, err := config.Load(path); err == nil {
		t.Error("expected parse error")
	}
}
