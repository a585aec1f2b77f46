// Package wayback derives a domain's archival history from the Internet
// Archive: a current-snapshot availability check plus a CDX change
// history collapsed by content digest. Like the registration lookup it
// soft-fails: no usable history means a zeroed record, never an error.
package wayback

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"trustlens/internal/interfaces"
	"trustlens/internal/model"
)

type Config struct {
	// AvailabilityURL is the snapshot availability endpoint.
	AvailabilityURL string

	// CDXURL is the change-history endpoint.
	CDXURL string

	// Retries is the total number of attempts; each attempt issues both
	// calls in sequence and both must succeed.
	Retries int

	// Delay is the fixed wait between attempts.
	Delay time.Duration

	// Timeout bounds each HTTP call.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		AvailabilityURL: "https://archive.org/wayback/available",
		CDXURL:          "https://web.archive.org/cdx/search/cdx",
		Retries:         3,
		Delay:           2 * time.Second,
		Timeout:         10 * time.Second,
	}
}

// CDX timestamps arrive in a compact form; the report renders them
// the same way the rest of the report renders dates.
const (
	cdxTimeFormat      = "20060102150405"
	snapshotTimeFormat = "2006-01-02 15:04:05"
)

// Client queries the archive endpoints for a domain's history.
type Client struct {
	cfg    Config
	wc     interfaces.WebClient
	logger interfaces.Logger
}

func NewClient(cfg Config, wc interfaces.WebClient, logger interfaces.Logger) *Client {
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}
	return &Client{
		cfg:    cfg,
		wc:     wc,
		logger: logger.With(interfaces.Field{Key: "component", Value: "wayback"}),
	}
}

// availability mirrors the wayback availability response; only decode
// success matters for the attempt, the derived fields all come from CDX.
type availability struct {
	ArchivedSnapshots struct {
		Closest struct {
			Available bool   `json:"available"`
			URL       string `json:"url"`
			Timestamp string `json:"timestamp"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// Lookup returns the domain's archive record. It never returns an error:
// exhausting all retries yields the zeroed record.
func (c *Client) Lookup(ctx context.Context, domain string) *model.ArchiveRecord {
	var record *model.ArchiveRecord
	backoff := retry.WithMaxRetries(uint64(c.cfg.Retries-1), retry.NewConstant(c.cfg.Delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		rec, err := c.attempt(ctx, domain)
		if err != nil {
			c.logger.Warn("archive history attempt failed",
				interfaces.Field{Key: "domain", Value: domain},
				interfaces.Field{Key: "error", Value: err.Error()})
			return retry.RetryableError(err)
		}
		record = rec
		return nil
	})
	if err != nil {
		c.logger.Warn("archive history exhausted retries",
			interfaces.Field{Key: "domain", Value: domain})
		return model.EmptyArchive()
	}
	return record
}

func (c *Client) attempt(ctx context.Context, domain string) (*model.ArchiveRecord, error) {
	availURL := fmt.Sprintf("%s?url=%s", c.cfg.AvailabilityURL, url.QueryEscape(domain))
	body, err := c.getJSON(ctx, availURL)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	var avail availability
	if err := json.Unmarshal(body, &avail); err != nil {
		return nil, fmt.Errorf("availability decode: %w", err)
	}

	historyURL := fmt.Sprintf("%s?url=%s&output=json&fl=timestamp&collapse=digest",
		c.cfg.CDXURL, url.QueryEscape(domain))
	body, err = c.getJSON(ctx, historyURL)
	if err != nil {
		return nil, fmt.Errorf("change history: %w", err)
	}

	// Row 0 is the CDX header; each data row is [timestamp], one per
	// digest-distinct snapshot.
	var rows [][]string
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("change history decode: %w", err)
	}
	if len(rows) <= 1 {
		return model.EmptyArchive(), nil
	}

	first, err := parseRow(rows[1])
	if err != nil {
		return nil, err
	}
	last, err := parseRow(rows[len(rows)-1])
	if err != nil {
		return nil, err
	}

	// CDX rows are expected oldest-first, but a reordered response must
	// not produce a negative span.
	span := int(last.Sub(first).Hours() / 24)
	if span < 0 {
		span = 0
	}

	return &model.ArchiveRecord{
		SnapshotsFound:   len(rows) - 1,
		FirstSnapshot:    first.Format(snapshotTimeFormat),
		LastSnapshot:     last.Format(snapshotTimeFormat),
		ChangePeriodDays: span,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.wc.Get(callCtx, rawURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func parseRow(row []string) (time.Time, error) {
	if len(row) == 0 {
		return time.Time{}, fmt.Errorf("empty cdx row")
	}
	ts, err := time.Parse(cdxTimeFormat, row[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", row[0], err)
	}
	return ts, nil
}
