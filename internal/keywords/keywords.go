// Package keywords scans fetched documents for risk-indicator phrases.
// Detection is pure: no I/O, no score side effects. The trust-score
// penalty per match is applied by the score package.
package keywords

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trustlens/internal/model"
)

// Detect returns the subset of catalog phrases present in the document's
// visible text, in catalog order. Matching is case-insensitive substring
// search. A nil catalog means model.DefaultRiskKeywords.
func Detect(doc *goquery.Document, catalog []string) []string {
	if catalog == nil {
		catalog = model.DefaultRiskKeywords
	}

	text := strings.ToLower(doc.Text())

	found := []string{}
	for _, phrase := range catalog {
		if strings.Contains(text, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}
