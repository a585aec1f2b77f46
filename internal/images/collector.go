package images

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"trustlens/internal/interfaces"
)

type CollectorConfig struct {
	// Dir is where downloads land; created on demand.
	Dir string

	// Timeout bounds a single image download.
	Timeout time.Duration

	// RatePerSecond throttles downloads so a page full of images does not
	// hammer its host. Zero or negative disables throttling.
	RatePerSecond float64
}

// DefaultCollectorConfig mirrors the historical defaults: a local
// downloaded_images directory and a short per-image timeout.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Dir:           "downloaded_images",
		Timeout:       5 * time.Second,
		RatePerSecond: 4,
	}
}

// Collector downloads a page's images to disk under hashed filenames.
type Collector struct {
	cfg     CollectorConfig
	wc      interfaces.WebClient
	limiter *rate.Limiter
	logger  interfaces.Logger
}

// NewCollector creates a Collector using the given webclient for downloads.
func NewCollector(cfg CollectorConfig, wc interfaces.WebClient, logger interfaces.Logger) *Collector {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	return &Collector{
		cfg:     cfg,
		wc:      wc,
		limiter: limiter,
		logger:  logger.With(interfaces.Field{Key: "component", Value: "image-collector"}),
	}
}

// HashFilename derives a stable, collision-safe filename for an image URL:
// the first 16 hex chars of its SHA-256 plus a .jpg suffix.
func HashFilename(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(sum[:])[:16] + ".jpg"
}

// Collect extracts the document's images and downloads each to the
// configured directory. Individual download failures are logged and
// skipped; the returned slice holds the filenames that were saved.
func (c *Collector) Collect(ctx context.Context, doc *goquery.Document, pageURL string) ([]string, error) {
	return c.CollectURLs(ctx, Extract(doc, pageURL))
}

// CollectURLs downloads already-resolved image URLs, same rules as Collect.
func (c *Collector) CollectURLs(ctx context.Context, urls []string) ([]string, error) {
	if err := os.MkdirAll(c.cfg.Dir, 0755); err != nil {
		return nil, err
	}

	saved := []string{}
	for _, imgURL := range urls {
		if err := c.limiter.Wait(ctx); err != nil {
			return saved, err
		}

		body, err := c.download(ctx, imgURL)
		if err != nil {
			c.logger.Warn("image download failed",
				interfaces.Field{Key: "url", Value: imgURL},
				interfaces.Field{Key: "error", Value: err.Error()})
			continue
		}

		name := HashFilename(imgURL)
		if err := os.WriteFile(filepath.Join(c.cfg.Dir, name), body, 0644); err != nil {
			c.logger.Warn("image write failed",
				interfaces.Field{Key: "file", Value: name},
				interfaces.Field{Key: "error", Value: err.Error()})
			continue
		}

		saved = append(saved, name)
		c.logger.Info("downloaded image", interfaces.Field{Key: "file", Value: name})
	}
	return saved, nil
}

func (c *Collector) download(ctx context.Context, imgURL string) ([]byte, error) {
	dctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.wc.Get(dctx, imgURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}
	return resp.Body, nil
}

type statusError struct{ code int }

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d from image host", e.code)
}
