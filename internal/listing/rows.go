package listing

import "strings"

// ParseRows splits the extracted table body into rows of trimmed cells.
// Markdown table rows start with a pipe, which yields a spurious empty
// first cell; that cell is dropped. Rows may come back short; read them
// through cell().
func ParseRows(body string) [][]string {
	lines := strings.Split(body, "\n")
	rows := make([][]string, 0, len(lines))

	for _, line := range lines {
		cells := strings.Split(line, "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if len(cells) > 0 {
			cells = cells[1:]
		}
		rows = append(rows, cells)
	}
	return rows
}

// cell reads row[i], treating missing trailing cells as empty.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
