package inspector

import (
	"context"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"trustlens/internal/fetcher"
	"trustlens/internal/images"
	"trustlens/internal/interfaces"
	"trustlens/internal/keywords"
	"trustlens/internal/model"
	"trustlens/internal/score"
	"trustlens/internal/urlutil"
	"trustlens/internal/wayback"
	"trustlens/internal/whois"
)

// PageFetcher retrieves a URL and parses it into a document.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// RegistrationLookup resolves a domain's registration record. It never
// fails; exhausted lookups come back as a neutral record.
type RegistrationLookup interface {
	Lookup(ctx context.Context, domain string) *model.RegistrationRecord
}

// ArchiveLookup resolves a domain's archive history. Same total-success
// contract as RegistrationLookup.
type ArchiveLookup interface {
	Lookup(ctx context.Context, domain string) *model.ArchiveRecord
}

// Inspector runs the full pipeline: fetch, keyword detection, image
// extraction, registration and archive lookups, then scoring. It
// implements interfaces.Inspector.
type Inspector struct {
	fetcher PageFetcher
	whois   RegistrationLookup
	wayback ArchiveLookup
	catalog []string
	logger  interfaces.Logger

	wc interfaces.WebClient
}

var _ interfaces.Inspector = (*Inspector)(nil)

// New assembles an Inspector from a config and a shared web client. The
// web client is not closed by the inspector; ownership stays with the
// caller unless NewOwned was used.
func New(cfg *Config, wc interfaces.WebClient, logger interfaces.Logger) *Inspector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Inspector{
		fetcher: fetcher.New(cfg.Fetcher, wc, logger),
		whois:   whois.NewClient(cfg.Whois, logger, nil),
		wayback: wayback.NewClient(cfg.Wayback, wc, logger),
		catalog: cfg.Catalog,
		logger:  logger.With(interfaces.Field{Key: "component", Value: "inspector"}),
	}
}

// NewOwned is like New but the inspector takes ownership of the web
// client and closes it on Close.
func NewOwned(cfg *Config, wc interfaces.WebClient, logger interfaces.Logger) *Inspector {
	insp := New(cfg, wc, logger)
	insp.wc = wc
	return insp
}

// NewWithComponents wires an Inspector from pre-built parts. Nil catalog
// means the default risk keywords.
func NewWithComponents(pf PageFetcher, rl RegistrationLookup, al ArchiveLookup, catalog []string, logger interfaces.Logger) *Inspector {
	return &Inspector{
		fetcher: pf,
		whois:   rl,
		wayback: al,
		catalog: catalog,
		logger:  logger.With(interfaces.Field{Key: "component", Value: "inspector"}),
	}
}

// Inspect runs the pipeline against pageURL. It never returns an error:
// a failed fetch or an internal panic produces a report with Success
// false, everything downstream degrades to neutral records instead.
func (i *Inspector) Inspect(ctx context.Context, pageURL string) (report *model.InspectionReport) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("inspection panicked",
				interfaces.Field{Key: "url", Value: pageURL},
				interfaces.Field{Key: "panic", Value: fmt.Sprint(r)})
			report = model.FailedReport(fmt.Sprintf("internal error: %v", r))
		}
	}()

	doc, err := i.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		i.logger.Warn("page fetch failed",
			interfaces.Field{Key: "url", Value: pageURL},
			interfaces.Field{Key: "error", Value: err.Error()})
		return model.FailedReport(err.Error())
	}

	detected := keywords.Detect(doc, i.catalog)
	imgs := images.Extract(doc, pageURL)
	domain := urlutil.BareDomain(pageURL)

	var (
		wg  sync.WaitGroup
		reg *model.RegistrationRecord
		arc *model.ArchiveRecord
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				i.logger.Error("registration lookup panicked",
					interfaces.Field{Key: "domain", Value: domain},
					interfaces.Field{Key: "panic", Value: fmt.Sprint(r)})
				reg = model.NeutralRegistration(domain)
			}
		}()
		reg = i.whois.Lookup(ctx, domain)
	}()
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				i.logger.Error("archive lookup panicked",
					interfaces.Field{Key: "domain", Value: domain},
					interfaces.Field{Key: "panic", Value: fmt.Sprint(r)})
				arc = model.EmptyArchive()
			}
		}()
		arc = i.wayback.Lookup(ctx, domain)
	}()
	wg.Wait()

	trust := score.Trust(len(detected), reg.DomainAge, arc.SnapshotsFound, arc.ChangePeriodDays)

	i.logger.Info("inspection complete",
		interfaces.Field{Key: "url", Value: pageURL},
		interfaces.Field{Key: "trust_score", Value: trust},
		interfaces.Field{Key: "keywords", Value: len(detected)},
		interfaces.Field{Key: "images", Value: len(imgs)})

	return &model.InspectionReport{
		Success:          true,
		TrustScore:       trust,
		KeywordsDetected: detected,
		ImagesFound:      imgs,
		WhoisData:        reg,
		WaybackData:      arc,
	}
}

// Close releases the owned web client, if any.
func (i *Inspector) Close() error {
	if i.wc != nil {
		return i.wc.Close()
	}
	return nil
}
