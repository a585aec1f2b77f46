package whois

import (
	"context"
	"errors"
	"testing"
	"time"

	whoisparser "github.com/likexian/whois-parser"

	"trustlens/internal/interfaces"
)

func testConfig() Config {
	return Config{Retries: 3, Delay: time.Millisecond}
}

func TestLookup_NeverFailsPastRetryBoundary(t *testing.T) {
	t.Parallel()
	attempts := 0
	c := NewClient(testConfig(), interfaces.NewTestLogger(false), func(domain string) (string, error) {
		attempts++
		return "", errors.New("connection reset")
	})

	rec := c.Lookup(context.Background(), "example-shop.test")
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if rec.Domain != "example-shop.test" {
		t.Errorf("unexpected domain %q", rec.Domain)
	}
	if rec.DomainAge != 0 || rec.CreationDate != "N/A" || rec.Country != "Unknown" || rec.Registrar != "N/A" {
		t.Errorf("expected neutral record, got %+v", rec)
	}
	if rec.NameServers == nil || len(rec.NameServers) != 0 {
		t.Errorf("expected empty name servers, got %v", rec.NameServers)
	}
}

func TestLookup_RetriesThenSucceedsOnGarbage(t *testing.T) {
	t.Parallel()
	// Unparseable responses count as failed attempts too.
	attempts := 0
	c := NewClient(testConfig(), interfaces.NewTestLogger(false), func(domain string) (string, error) {
		attempts++
		return "not whois data at all", nil
	})

	rec := c.Lookup(context.Background(), "example.test")
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if rec.Country != "Unknown" {
		t.Errorf("expected neutral record after parse failures, got %+v", rec)
	}
}

func TestLookup_NormalizesDomain(t *testing.T) {
	t.Parallel()
	var asked string
	c := NewClient(testConfig(), interfaces.NewTestLogger(false), func(domain string) (string, error) {
		asked = domain
		return "", errors.New("nope")
	})

	c.Lookup(context.Background(), "Example.COM")
	if asked != "example.com" {
		t.Errorf("expected normalized domain, lookup saw %q", asked)
	}
}

func TestRecordFromInfo_FullRecord(t *testing.T) {
	t.Parallel()
	created := time.Date(2020, 3, 15, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	info := whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{
			CreatedDate:       "2020-03-15T10:00:00Z",
			CreatedDateInTime: &created,
			NameServers:       []string{"ns1.host.test", "ns2.host.test"},
		},
		Registrar:  &whoisparser.Contact{Name: "Example Registrar Inc."},
		Registrant: &whoisparser.Contact{Country: "DE"},
	}

	rec := recordFromInfo("example.de", info, now)
	if rec.DomainAge != 4 {
		t.Errorf("expected age 4, got %d", rec.DomainAge)
	}
	if rec.CreationDate != "2020-03-15 10:00:00" {
		t.Errorf("unexpected creation date %q", rec.CreationDate)
	}
	if rec.Registrar != "Example Registrar Inc." {
		t.Errorf("unexpected registrar %q", rec.Registrar)
	}
	if rec.Country != "DE" {
		t.Errorf("unexpected country %q", rec.Country)
	}
	if len(rec.NameServers) != 2 {
		t.Errorf("unexpected name servers %v", rec.NameServers)
	}
}

func TestRecordFromInfo_MissingFieldsStayNeutral(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Registry publishes a creation date string the parser could not
	// turn into a time, and no country at all.
	info := whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{CreatedDate: "before 1995"},
	}

	rec := recordFromInfo("old.test", info, now)
	if rec.CreationDate != "before 1995" {
		t.Errorf("raw creation date should pass through, got %q", rec.CreationDate)
	}
	if rec.DomainAge != 0 {
		t.Errorf("age must stay 0 without a parsed date, got %d", rec.DomainAge)
	}
	if rec.Country != "Unknown" {
		t.Errorf("absent country must read Unknown, got %q", rec.Country)
	}
	if rec.Registrar != "N/A" {
		t.Errorf("absent registrar must read N/A, got %q", rec.Registrar)
	}
}

func TestAgeYears(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		created time.Time
		want    int
	}{
		{"two years", now.AddDate(-2, 0, -10), 2},
		{"under a year", now.AddDate(0, -6, 0), 0},
		{"exactly 365 days", now.AddDate(0, 0, -365), 1},
		{"future date", now.AddDate(0, 0, 30), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AgeYears(tc.created, now); got != tc.want {
				t.Errorf("AgeYears = %d, want %d", got, tc.want)
			}
		})
	}
}
