package listing

import (
	"strings"

	"github.com/gosimple/slug"
)

// Posting is one internship row after normalization. Notes may still
// contain markdown links or raw anchors; the UI renders them as-is.
type Posting struct {
	Company   string   `json:"company"`
	Notes     string   `json:"notes"`
	Locations []string `json:"locations"`
	Link      string   `json:"link"`
}

// Company aggregates consecutive postings that share a company cell or
// follow a continuation row. Applied is filled in from the store when a
// view is derived; LevelsURL from the static compensation table.
type Company struct {
	Name      string    `json:"name"`
	ID        string    `json:"id"`
	Applied   bool      `json:"applied"`
	LevelsURL string    `json:"levelsUrl,omitempty"`
	Postings  []Posting `json:"postings"`
}

// GroupRows walks the rows in source order keeping a "current company"
// cursor. A row updates the cursor only when its company cell is
// non-empty and not the continuation marker; grouping is adjacency
// based, so two separated runs of the same company stay one record only
// because the cursor maps back to the same name.
func GroupRows(rows [][]string) []Company {
	company := placeholderCompany

	var out []Company
	index := make(map[string]int)

	for _, row := range rows {
		if name := cell(row, 0); name != "" && name != continuationMarker {
			company = ParseName(name)
		}

		p := Posting{
			Company:   company,
			Notes:     strings.TrimSpace(cell(row, 1)),
			Locations: ParseLocations(cell(row, 2)),
			Link:      ParseLink(cell(row, 3)),
		}

		i, ok := index[company]
		if !ok {
			out = append(out, Company{Name: company, ID: slug.Make(company)})
			i = len(out) - 1
			index[company] = i
		}
		out[i].Postings = append(out[i].Postings, p)
	}
	return out
}
