package webclient

import (
	"github.com/chromedp/chromedp"

	"trustlens/internal/interfaces"
)

// RegisterDefaultBackends registers the default nethttp and chromedp backends.
// Call this early in main() to make backends available to New.
func RegisterDefaultBackends() {
	RegisterBackend(string(BackendNetHTTP), func(cfg Config, logger interfaces.Logger) (interfaces.WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})

	RegisterBackend(string(BackendChromedp), func(cfg Config, logger interfaces.Logger) (interfaces.WebClient, error) {
		var opts []chromedp.ExecAllocatorOption
		if !cfg.Headless {
			opts = append(opts, chromedp.Flag("headless", false))
		}
		return NewChromeDPClient(cfg.IdleAfter, logger, opts...)
	})
}
