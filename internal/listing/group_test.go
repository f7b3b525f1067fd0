package listing

import (
	"testing"
)

func TestGroupRowsContinuation(t *testing.T) {
	rows := [][]string{
		{"Acme", "Intern A", "SF", "https://acme.test/a"},
		{"↳", "Intern B", "NYC", "https://acme.test/b"},
		{"Other", "Intern C", "Remote", "https://other.test/c"},
	}

	companies := GroupRows(rows)
	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}

	if companies[0].Name != "Acme" || len(companies[0].Postings) != 2 {
		t.Errorf("got %s with %d postings, want Acme with 2", companies[0].Name, len(companies[0].Postings))
	}
	if companies[1].Name != "Other" || len(companies[1].Postings) != 1 {
		t.Errorf("got %s with %d postings, want Other with 1", companies[1].Name, len(companies[1].Postings))
	}

	if companies[0].ID != "acme" {
		t.Errorf("got id %q, want acme", companies[0].ID)
	}
	if got := companies[0].Postings[1].Notes; got != "Intern B" {
		t.Errorf("got notes %q, want Intern B", got)
	}
}

func TestGroupRowsLeadingContinuation(t *testing.T) {
	rows := [][]string{
		{"↳", "Orphan Intern", "SF", "url"},
		{"Acme", "Intern A", "NYC", "url"},
	}

	companies := GroupRows(rows)
	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}
	if companies[0].Name != "N/A" {
		t.Errorf("got %q, want N/A placeholder", companies[0].Name)
	}
}

func TestGroupRowsAdjacency(t *testing.T) {
	// Non-adjacent runs of the same name still land in one record
	// because the cursor resolves to the same normalized name.
	rows := [][]string{
		{"Acme", "Intern A", "SF", "url"},
		{"Other", "Intern B", "NYC", "url"},
		{"**[Acme](https://acme.test)**", "Intern C", "Remote", "url"},
	}

	companies := GroupRows(rows)
	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}
	if len(companies[0].Postings) != 2 {
		t.Errorf("got %d Acme postings, want 2", len(companies[0].Postings))
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	doc := "# Internships\n\n" + testStartMarker + "\n\n" +
		"| Company | Role | Location | Link |\n" +
		"| ------- | ---- | -------- | ---- |\n" +
		"| **Acme** | SWE Intern 🔒 Closed 🔒 | <details><summary>2 locations</summary>Remote<br>NYC</details> | 🔒 |\n" +
		"| ↳ | Data Intern | SF | <a href=\"https://acme.test/apply?utm_source=board\">apply</a> |\n\n" +
		testEndMarker

	body, err := ExtractTable(doc, testStartMarker, testEndMarker)
	if err != nil {
		t.Fatalf("ExtractTable: %v", err)
	}

	companies := GroupRows(ParseRows(body))
	if len(companies) != 1 {
		t.Fatalf("got %d companies, want 1", len(companies))
	}

	co := companies[0]
	if co.Name != "Acme" || co.Applied {
		t.Errorf("got name=%q applied=%v, want Acme not applied", co.Name, co.Applied)
	}
	if len(co.Postings) != 2 {
		t.Fatalf("got %d postings, want 2", len(co.Postings))
	}

	closed := co.Postings[0]
	if closed.Link != LockSymbol {
		t.Errorf("got link %q, want lock symbol", closed.Link)
	}
	if len(closed.Locations) != 2 || closed.Locations[0] != "Remote" || closed.Locations[1] != "NYC" {
		t.Errorf("got locations %v, want [Remote NYC]", closed.Locations)
	}

	open := co.Postings[1]
	if open.Link != "https://acme.test/apply" {
		t.Errorf("got link %q, want tracking suffix stripped", open.Link)
	}
}
