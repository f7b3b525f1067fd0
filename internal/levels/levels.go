// Package levels holds the build-time compensation-reference table: a
// mapping from normalized company name to a levels.fyi page, consulted
// read-only when rendering outbound links.
package levels

import (
	_ "embed"
	"fmt"

	"github.com/tidwall/gjson"
)

//go:embed levels.fyi.json
var rawTable []byte

type Table struct {
	urls map[string]string
}

func Load() (*Table, error) {
	if !gjson.ValidBytes(rawTable) {
		return nil, fmt.Errorf("levels: embedded table is not valid JSON")
	}

	urls := make(map[string]string)
	gjson.ParseBytes(rawTable).ForEach(func(key, value gjson.Result) bool {
		urls[key.String()] = value.String()
		return true
	})
	return &Table{urls: urls}, nil
}

// URLFor returns the reference URL for a company, or "" when the table
// has no entry. A missing entry is not an error; the UI just renders no
// link.
func (t *Table) URLFor(company string) string {
	return t.urls[company]
}

func (t *Table) Len() int {
	return len(t.urls)
}
