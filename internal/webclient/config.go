package webclient

import "time"

type Backend string

const (
	BackendNetHTTP  Backend = "nethttp"
	BackendChromedp Backend = "chromedp"
)

// Config is the minimal configuration required for constructing a WebClient.
type Config struct {
	// Backend selects the registered backend; empty means nethttp.
	Backend Backend

	// Timeout is the per-request timeout for the nethttp backend.
	Timeout time.Duration

	// IdleAfter is how long the chromedp backend waits for the network to
	// go quiet before capturing the rendered page.
	IdleAfter time.Duration

	// Headless controls whether the chromedp backend shows a browser window.
	Headless bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendNetHTTP,
		Timeout:   30 * time.Second,
		IdleAfter: 2 * time.Second,
		Headless:  true,
	}
}
