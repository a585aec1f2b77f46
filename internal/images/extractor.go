// Package images extracts image URLs from fetched documents and
// optionally downloads them to disk. Extraction feeds the report;
// downloading is a separate analyst convenience with no score impact.
package images

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract returns the absolute URL of every img element that declares a
// src attribute, in document order, duplicates preserved. Relative
// sources are resolved against pageURL; elements without a src and
// sources that fail to parse are skipped.
func Extract(doc *goquery.Document, pageURL string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return []string{}
	}

	urls := []string{}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		src = strings.TrimSpace(src)
		if !ok || src == "" {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		urls = append(urls, base.ResolveReference(ref).String())
	})
	return urls
}
