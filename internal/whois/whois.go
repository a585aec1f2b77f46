// Package whois resolves domain registration data. Lookups are
// soft-failing: retry exhaustion yields a neutral record, never an error,
// so the pipeline keeps going without registration evidence.
package whois

import (
	"context"
	"time"

	likewhois "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/sethvargo/go-retry"

	"trustlens/internal/interfaces"
	"trustlens/internal/model"
	"trustlens/internal/urlutil"
)

type Config struct {
	// Retries is the total number of lookup attempts.
	Retries int

	// Delay is the fixed wait between attempts.
	Delay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Retries: 3,
		Delay:   2 * time.Second,
	}
}

// LookupFunc returns the raw WHOIS text for a domain. Injected in tests;
// production uses the likexian client.
type LookupFunc func(domain string) (string, error)

// Client performs registration lookups with retry.
type Client struct {
	cfg    Config
	lookup LookupFunc
	logger interfaces.Logger
	now    func() time.Time
}

// NewClient creates a registration lookup client. lookup may be nil, in
// which case the real WHOIS protocol client is used.
func NewClient(cfg Config, logger interfaces.Logger, lookup LookupFunc) *Client {
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}
	if lookup == nil {
		lookup = func(domain string) (string, error) {
			return likewhois.Whois(domain)
		}
	}
	return &Client{
		cfg:    cfg,
		lookup: lookup,
		logger: logger.With(interfaces.Field{Key: "component", Value: "whois"}),
		now:    time.Now,
	}
}

// Lookup resolves domain registration data. It never returns an error:
// after all retries fail the neutral record is substituted.
func (c *Client) Lookup(ctx context.Context, domain string) *model.RegistrationRecord {
	domain = urlutil.NormalizeDomain(domain)

	var info whoisparser.WhoisInfo
	backoff := retry.WithMaxRetries(uint64(c.cfg.Retries-1), retry.NewConstant(c.cfg.Delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		raw, err := c.lookup(domain)
		if err != nil {
			c.logger.Warn("whois lookup failed",
				interfaces.Field{Key: "domain", Value: domain},
				interfaces.Field{Key: "error", Value: err.Error()})
			return retry.RetryableError(err)
		}
		parsed, err := whoisparser.Parse(raw)
		if err != nil {
			c.logger.Warn("whois parse failed",
				interfaces.Field{Key: "domain", Value: domain},
				interfaces.Field{Key: "error", Value: err.Error()})
			return retry.RetryableError(err)
		}
		info = parsed
		return nil
	})
	if err != nil {
		c.logger.Warn("whois lookup exhausted retries",
			interfaces.Field{Key: "domain", Value: domain})
		return model.NeutralRegistration(domain)
	}

	return recordFromInfo(domain, info, c.now())
}

// recordFromInfo maps parsed WHOIS data onto a RegistrationRecord,
// substituting the neutral values for any field the registry does not
// publish. An absent country is "Unknown", not a failure.
func recordFromInfo(domain string, info whoisparser.WhoisInfo, now time.Time) *model.RegistrationRecord {
	rec := model.NeutralRegistration(domain)

	if info.Domain != nil {
		if info.Domain.CreatedDateInTime != nil {
			created := *info.Domain.CreatedDateInTime
			rec.CreationDate = created.Format("2006-01-02 15:04:05")
			rec.DomainAge = AgeYears(created, now)
		} else if info.Domain.CreatedDate != "" {
			rec.CreationDate = info.Domain.CreatedDate
		}
		if len(info.Domain.NameServers) > 0 {
			rec.NameServers = append([]string{}, info.Domain.NameServers...)
		}
	}
	if info.Registrar != nil && info.Registrar.Name != "" {
		rec.Registrar = info.Registrar.Name
	}
	if info.Registrant != nil && info.Registrant.Country != "" {
		rec.Country = info.Registrant.Country
	}
	return rec
}

// AgeYears returns the whole years between created and now, computed as
// floor(days/365) and floored at zero for future-dated records.
func AgeYears(created, now time.Time) int {
	days := int(now.Sub(created).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 365
}
