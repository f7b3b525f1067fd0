package view

import (
	"testing"

	"interning-engine/internal/listing"
)

func fixture() []listing.Company {
	return []listing.Company{
		{
			Name: "Acme", ID: "acme",
			Postings: []listing.Posting{
				{Company: "Acme", Notes: "SWE Intern", Locations: []string{"SF"}, Link: "https://acme.test/a"},
				{Company: "Acme", Notes: "Data Intern 🔒 Closed 🔒", Locations: []string{"Remote", "NYC"}, Link: listing.LockSymbol},
			},
		},
		{
			Name: "Borealis", ID: "borealis",
			Postings: []listing.Posting{
				{Company: "Borealis", Notes: "PM Intern, no sponsorship", Locations: []string{"Austin"}, Link: "https://borealis.test/p"},
			},
		},
		{
			Name: "Cirrus", ID: "cirrus",
			Postings: []listing.Posting{
				{Company: "Cirrus", Notes: "Security Intern, US citizenship required", Locations: []string{"DC"}, Link: "https://cirrus.test/s"},
			},
		},
	}
}

func countPostings(m Model) int {
	n := 0
	for _, co := range m.Companies {
		n += len(co.Postings)
	}
	return n
}

func TestDeriveAllIsIdentity(t *testing.T) {
	m := Derive(fixture(), nil, Criteria{Closed: FilterAll, Applied: FilterAll, Sponsorship: FilterAll})

	if len(m.Companies) != 3 {
		t.Fatalf("got %d companies, want 3", len(m.Companies))
	}
	if m.Total != 4 || m.Shown != 4 {
		t.Errorf("got total=%d shown=%d, want 4/4", m.Total, m.Shown)
	}
	if m.AppliedCount != 0 {
		t.Errorf("got appliedCount=%d, want 0 with no flags", m.AppliedCount)
	}
}

func TestDeriveTextFilter(t *testing.T) {
	m := Derive(fixture(), nil, Criteria{Text: "nyc"})

	if len(m.Companies) != 1 || m.Companies[0].Name != "Acme" {
		t.Fatalf("got %+v, want only Acme", m.Companies)
	}
	if len(m.Companies[0].Postings) != 1 {
		t.Errorf("got %d postings, want 1 matching NYC", len(m.Companies[0].Postings))
	}
}

func TestDeriveClosedFilter(t *testing.T) {
	closed := Derive(fixture(), nil, Criteria{Closed: FilterYes})
	if countPostings(closed) != 1 {
		t.Errorf("closed=yes: got %d postings, want 1", countPostings(closed))
	}

	open := Derive(fixture(), nil, Criteria{Closed: FilterNo})
	if countPostings(open) != 3 {
		t.Errorf("closed=no: got %d postings, want 3", countPostings(open))
	}
}

func TestDeriveAppliedFilter(t *testing.T) {
	flags := map[string]bool{"Acme": true}

	m := Derive(fixture(), flags, Criteria{Applied: FilterYes})
	if len(m.Companies) != 1 || m.Companies[0].Name != "Acme" || !m.Companies[0].Applied {
		t.Fatalf("applied=yes: got %+v, want only applied Acme", m.Companies)
	}
	if m.AppliedCount != 2 {
		t.Errorf("got appliedCount=%d, want 2", m.AppliedCount)
	}

	m = Derive(fixture(), flags, Criteria{Applied: FilterNo})
	if len(m.Companies) != 2 {
		t.Errorf("applied=no: got %d companies, want 2", len(m.Companies))
	}
}

func TestDeriveSponsorshipFilter(t *testing.T) {
	tests := []struct {
		filter string
		want   int // postings
	}{
		{FilterAll, 4},
		{FilterYes, 2},            // Acme only: no sponsorship/citizen phrases
		{SponsorshipGreenCard, 3}, // all but Cirrus
		{FilterNo, 1},             // Borealis only
	}

	for _, tt := range tests {
		m := Derive(fixture(), nil, Criteria{Sponsorship: tt.filter})
		if got := countPostings(m); got != tt.want {
			t.Errorf("sponsorship=%s: got %d postings, want %d", tt.filter, got, tt.want)
		}
	}
}

func TestDeriveFilteredIsSubset(t *testing.T) {
	all := Derive(fixture(), nil, Criteria{})

	criteria := []Criteria{
		{Text: "intern"},
		{Closed: FilterYes},
		{Applied: FilterNo},
		{Sponsorship: FilterNo},
		{Text: "sf", Closed: FilterNo, Sponsorship: SponsorshipGreenCard},
	}
	for _, c := range criteria {
		m := Derive(fixture(), nil, c)
		if countPostings(m) > countPostings(all) {
			t.Errorf("criteria %+v: filtered %d > unfiltered %d", c, countPostings(m), countPostings(all))
		}
	}
}

func TestDeriveFlippedIsInvolution(t *testing.T) {
	once := Derive(fixture(), nil, Criteria{Flipped: true})
	if once.Companies[0].Name != "Cirrus" {
		t.Errorf("got first=%s, want Cirrus after reversal", once.Companies[0].Name)
	}

	plain := Derive(fixture(), nil, Criteria{})
	twice := Derive(fixture(), nil, Criteria{})
	for i := range twice.Companies {
		if twice.Companies[i].Name != plain.Companies[i].Name {
			t.Fatalf("derivation not stable at %d", i)
		}
	}

	// reversing the reversed order restores the original
	rev := once.Companies
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	for i := range rev {
		if rev[i].Name != plain.Companies[i].Name {
			t.Errorf("position %d: got %s, want %s", i, rev[i].Name, plain.Companies[i].Name)
		}
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	src := fixture()
	_ = Derive(src, map[string]bool{"Acme": true}, Criteria{Text: "nyc", Flipped: true})

	if src[0].Applied {
		t.Error("input company mutated: applied flag set")
	}
	if len(src[0].Postings) != 2 {
		t.Errorf("input postings mutated: got %d, want 2", len(src[0].Postings))
	}
}
