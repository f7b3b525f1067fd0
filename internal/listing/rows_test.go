package listing

import (
	"reflect"
	"testing"
)

func TestParseRows(t *testing.T) {
	body := "| Acme | SWE Intern | SF | url |\n|↳| Data Intern | NYC"

	rows := ParseRows(body)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	want := []string{"Acme", "SWE Intern", "SF", "url", ""}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row 0: got %v, want %v", rows[0], want)
	}

	// short row: trailing cells absent, no trailing pipe
	if got := cell(rows[1], 0); got != "↳" {
		t.Errorf("cell 0: got %q, want ↳", got)
	}
	if got := cell(rows[1], 3); got != "" {
		t.Errorf("cell 3 of short row: got %q, want empty", got)
	}
	if got := cell(rows[1], 99); got != "" {
		t.Errorf("out of range cell: got %q, want empty", got)
	}
}
