package inspector

import (
	"trustlens/internal/fetcher"
	"trustlens/internal/wayback"
	"trustlens/internal/whois"
)

// Config bundles the per-component policies for one inspector instance.
type Config struct {
	Fetcher fetcher.Config
	Whois   whois.Config
	Wayback wayback.Config

	// Catalog overrides the risk keyword list; nil means the default.
	Catalog []string
}

// DefaultConfig returns a Config populated with each component's defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetcher: fetcher.DefaultConfig(),
		Whois:   whois.DefaultConfig(),
		Wayback: wayback.DefaultConfig(),
	}
}
