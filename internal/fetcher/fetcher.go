package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/sethvargo/go-retry"

	"trustlens/internal/interfaces"
	"trustlens/internal/model"
)

// FetchError is the one hard failure of the pipeline: the page could not
// be retrieved or parsed. It aborts the whole inspection.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves a page and parses it into a text-queryable document.
type Fetcher struct {
	cfg    Config
	wc     interfaces.WebClient
	logger interfaces.Logger
}

// New creates a Fetcher with the given webclient and logger.
func New(cfg Config, wc interfaces.WebClient, logger interfaces.Logger) *Fetcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Fetcher{
		cfg:    cfg,
		wc:     wc,
		logger: logger.With(interfaces.Field{Key: "component", Value: "fetcher"}),
	}
}

func transientStatus(code int) bool {
	return code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable ||
		code == http.StatusGatewayTimeout
}

// Fetch performs one logical GET against pageURL and returns the parsed
// document. Transient upstream statuses are retried transparently with
// exponential backoff; everything else surfaces as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if f.wc == nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("webclient is nil")}
	}

	req := &model.Request{
		Method:  "GET",
		URL:     pageURL,
		Headers: http.Header{},
	}
	req.Headers.Set("User-Agent", f.cfg.UserAgent)

	var resp *model.Response
	backoff := retry.WithMaxRetries(uint64(f.cfg.MaxAttempts-1), retry.NewExponential(f.cfg.BackoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()

		r, err := f.wc.Do(attemptCtx, req)
		if err != nil {
			return fmt.Errorf("error GETting %s: %w", pageURL, err)
		}
		if transientStatus(r.StatusCode) {
			f.logger.Warn("transient upstream status, retrying",
				interfaces.Field{Key: "url", Value: pageURL},
				interfaces.Field{Key: "status", Value: r.StatusCode})
			return retry.RetryableError(fmt.Errorf("upstream status %d", r.StatusCode))
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("parse html: %w", err)}
	}

	f.logger.Info("fetched page",
		interfaces.Field{Key: "url", Value: pageURL},
		interfaces.Field{Key: "status", Value: resp.StatusCode},
		interfaces.Field{Key: "bytes", Value: len(resp.Body)})

	return doc, nil
}
