package model

// InspectionReport is the single result shape produced by an inspection.
// It is constructed once per call, never mutated afterwards, and owned by
// the caller. On a hard failure only Success and Error carry meaning.
type InspectionReport struct {
	// Success is false when the page could not be fetched or an
	// unexpected internal failure aborted the pipeline.
	Success bool `json:"success"`

	// TrustScore is the combined heuristic score, always in [0, 100].
	TrustScore int `json:"trust_score"`

	// KeywordsDetected holds the catalog phrases found in the page text,
	// in catalog order.
	KeywordsDetected []string `json:"keywords_detected"`

	// ImagesFound holds the absolute image URLs in document order,
	// duplicates preserved.
	ImagesFound []string `json:"images_found"`

	// WhoisData is always populated on success; lookup exhaustion yields
	// a neutral record rather than a missing one.
	WhoisData *RegistrationRecord `json:"whois_data"`

	// WaybackData is always populated on success; same total-presence
	// rule as WhoisData.
	WaybackData *ArchiveRecord `json:"wayback_data"`

	// Error carries the human-readable failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// FailedReport builds the report shape for an aborted inspection.
func FailedReport(msg string) *InspectionReport {
	return &InspectionReport{
		Success: false,
		Error:   msg,
	}
}

// RegistrationRecord holds domain registration data derived from a
// WHOIS-style lookup.
type RegistrationRecord struct {
	Domain       string   `json:"domain"`
	DomainAge    int      `json:"domain_age"` // whole years, >= 0
	CreationDate string   `json:"creation_date"`
	Country      string   `json:"country"`
	Registrar    string   `json:"registrar"`
	NameServers  []string `json:"name_servers"`
}

// NeutralRegistration is the soft-failure record substituted when the
// registration lookup exhausts its retries.
func NeutralRegistration(domain string) *RegistrationRecord {
	return &RegistrationRecord{
		Domain:       domain,
		DomainAge:    0,
		CreationDate: "N/A",
		Country:      "Unknown",
		Registrar:    "N/A",
		NameServers:  []string{},
	}
}

// ArchiveRecord summarizes a domain's web-archive history.
type ArchiveRecord struct {
	SnapshotsFound   int    `json:"snapshots_found"`
	FirstSnapshot    string `json:"first_snapshot"`
	LastSnapshot     string `json:"last_snapshot"`
	ChangePeriodDays int    `json:"change_period_days"`
}

// EmptyArchive is the soft-failure record for a domain with no usable
// archive history.
func EmptyArchive() *ArchiveRecord {
	return &ArchiveRecord{
		SnapshotsFound:   0,
		FirstSnapshot:    "N/A",
		LastSnapshot:     "N/A",
		ChangePeriodDays: 0,
	}
}
