package listing

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// LockSymbol replaces the link cell when a listing is closed.
	LockSymbol = "🔒"

	// ClosedMarker is the literal phrase upstream puts in the notes
	// column when applications are closed.
	ClosedMarker = "🔒 Closed 🔒"

	// continuationMarker in the company column means "same company as
	// the row above".
	continuationMarker = "↳"

	// placeholderCompany is attributed to rows that appear before any
	// real company name. Observable behavior, not an error.
	placeholderCompany = "N/A"
)

var brTag = regexp.MustCompile(`(?i)<\s*/?\s*br\s*/?\s*>`)

// ParseName strips markdown emphasis from a company cell and unwraps a
// [label](target) link down to its label. Idempotent.
func ParseName(raw string) string {
	name := strings.ReplaceAll(raw, "*", "")

	if strings.Contains(name, "](") {
		label := strings.SplitN(name, "](", 2)[0]
		if len(label) > 0 {
			label = label[1:] // leading "["
		}
		return label
	}
	return name
}

// ParseLink resolves a link cell to either a URL or the lock symbol.
// An empty or lock-bearing cell means the listing is closed. Cells that
// embed an <a href="..."> anchor yield the href with any utm_source
// tracking suffix cut off. Anything else passes through untouched.
func ParseLink(raw string) string {
	if raw == "" || strings.Contains(raw, LockSymbol) {
		return LockSymbol
	}

	if strings.Contains(raw, `<a href="`) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			if href, ok := doc.Find("a[href]").First().Attr("href"); ok {
				if i := strings.Index(href, "?utm_source"); i >= 0 {
					href = href[:i]
				}
				return href
			}
		}
	}
	return raw
}

// ParseLocations expands a location cell into one string per location.
// Multi-location cells come wrapped in <details><summary>N locations
// </summary>...</details> blocks with <br>-separated entries.
func ParseLocations(raw string) []string {
	s := brTag.ReplaceAllString(raw, "\n")
	s = strings.TrimSuffix(s, "</details>")
	if i := strings.Index(s, "</summary>"); i >= 0 {
		s = s[i+len("</summary>"):]
	}

	parts := strings.Split(strings.TrimSpace(s), "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
