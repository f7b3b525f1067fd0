// Package view derives the filtered, sorted dashboard model as a pure
// function of the listing snapshot, the persisted applied flags, and
// the filter criteria. Nothing here mutates its inputs; the UI gets a
// fresh Model on every change.
package view

import (
	"strings"

	"interning-engine/internal/listing"
)

// Tri-state and sponsorship filter values. "all" (or "") disables the
// axis entirely.
const (
	FilterAll = "all"
	FilterYes = "yes"
	FilterNo  = "no"

	// SponsorshipGreenCard keeps postings whose notes never mention a
	// citizenship requirement.
	SponsorshipGreenCard = "green_card"
)

type Criteria struct {
	Text        string
	Closed      string
	Applied     string
	Sponsorship string
	Flipped     bool
}

type Model struct {
	Companies    []listing.Company `json:"companies"`
	Total        int               `json:"total"`
	Shown        int               `json:"shown"`
	AppliedCount int               `json:"appliedCount"`
}

// Derive filters companies posting-by-posting and drops companies left
// with no postings. All axes AND together. Flipped reverses the final
// company order wholesale; there is no key-based sort.
func Derive(companies []listing.Company, applied map[string]bool, c Criteria) Model {
	m := Model{}

	for _, co := range companies {
		co.Applied = applied[co.Name]
		m.Total += len(co.Postings)
		if co.Applied {
			m.AppliedCount += len(co.Postings)
		}

		var kept []listing.Posting
		for _, p := range co.Postings {
			if matches(co, p, c) {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			continue
		}
		co.Postings = kept
		m.Companies = append(m.Companies, co)
		m.Shown += len(kept)
	}

	if c.Flipped {
		for i, j := 0, len(m.Companies)-1; i < j; i, j = i+1, j-1 {
			m.Companies[i], m.Companies[j] = m.Companies[j], m.Companies[i]
		}
	}
	return m
}

func matches(co listing.Company, p listing.Posting, c Criteria) bool {
	return matchesText(co, p, c.Text) &&
		matchesClosed(p, c.Closed) &&
		matchesApplied(co, c.Applied) &&
		matchesSponsorship(p, c.Sponsorship)
}

func matchesText(co listing.Company, p listing.Posting, text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(co.Name), text) {
		return true
	}
	for _, loc := range p.Locations {
		if strings.Contains(strings.ToLower(loc), text) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Notes), text)
}

func matchesClosed(p listing.Posting, closed string) bool {
	if closed == "" || closed == FilterAll {
		return true
	}
	return (closed == FilterYes) == strings.Contains(p.Notes, listing.ClosedMarker)
}

func matchesApplied(co listing.Company, appliedFilter string) bool {
	if appliedFilter == "" || appliedFilter == FilterAll {
		return true
	}
	return (appliedFilter == FilterYes) == co.Applied
}

// matchesSponsorship infers visa signals from free-text notes. The
// three non-"all" states are independent keyword conditions, not a
// partition: a posting can satisfy several or none of them.
func matchesSponsorship(p listing.Posting, sponsorship string) bool {
	notes := strings.ToLower(p.Notes)
	noSponsorship := strings.Contains(notes, "no sponsorship")
	citizen := strings.Contains(notes, "citizen")

	switch sponsorship {
	case "", FilterAll:
		return true
	case FilterYes:
		return !noSponsorship && !citizen
	case SponsorshipGreenCard:
		return !citizen
	case FilterNo:
		return noSponsorship
	default:
		return true
	}
}
