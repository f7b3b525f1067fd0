package listing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument means the upstream README no longer carries the
// table markers (or the table itself). Callers surface this as a failed
// refresh; nothing is partially parsed.
var ErrMalformedDocument = errors.New("listing: malformed document")

// ExtractTable returns the table body strictly between the first start
// marker and the first end marker that follows it. The markdown header
// row and its dashed separator row are dropped.
func ExtractTable(doc, startMarker, endMarker string) (string, error) {
	i := strings.Index(doc, startMarker)
	if i < 0 {
		return "", fmt.Errorf("%w: start marker not found", ErrMalformedDocument)
	}
	rest := doc[i+len(startMarker):]

	j := strings.Index(rest, endMarker)
	if j < 0 {
		return "", fmt.Errorf("%w: end marker not found", ErrMalformedDocument)
	}

	body := strings.TrimSpace(rest[:j])
	lines := strings.Split(body, "\n")
	if len(lines) < 3 {
		return "", fmt.Errorf("%w: table has no data rows", ErrMalformedDocument)
	}

	// lines[0] is the header row, lines[1] the |---|---| separator.
	return strings.Join(lines[2:], "\n"), nil
}
