package listing

import (
	"reflect"
	"testing"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Acme", "Acme"},
		{"**Acme**", "Acme"},
		{"[Acme](https://acme.test)", "Acme"},
		{"**[Acme Corp](https://acme.test/careers)**", "Acme Corp"},
		{"", ""},
		{"↳", "↳"},
	}

	for _, tt := range tests {
		if got := ParseName(tt.raw); got != tt.want {
			t.Errorf("ParseName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseNameIdempotent(t *testing.T) {
	inputs := []string{
		"**[Acme](https://acme.test)**",
		"*Half emphasized",
		"[weird [nested](x)](y)",
		"plain name",
	}

	for _, in := range inputs {
		once := ParseName(in)
		if twice := ParseName(once); twice != once {
			t.Errorf("ParseName not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"anchor with tracking", `<a href="https://x.test/job?utm_source=foo">apply</a>`, "https://x.test/job"},
		{"anchor without tracking", `<a href="https://x.test/job?ref=board">apply</a>`, "https://x.test/job?ref=board"},
		{"lock sentinel", "🔒", LockSymbol},
		{"lock inside text", "applications 🔒 closed", LockSymbol},
		{"plain url passthrough", "https://x.test/job", "https://x.test/job"},
		{"unexpected format passthrough", "email us", "email us"},
		{"empty cell means closed", "", LockSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLink(tt.raw); got != tt.want {
				t.Errorf("ParseLink(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseLinkIdempotent(t *testing.T) {
	inputs := []string{
		`<a href="https://x.test/job?utm_source=foo">apply</a>`,
		"🔒",
		"https://x.test/job",
	}

	for _, in := range inputs {
		once := ParseLink(in)
		if twice := ParseLink(once); twice != once {
			t.Errorf("ParseLink not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParseLocations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "SF", []string{"SF"}},
		{"br separated", "Remote<br>Onsite", []string{"Remote", "Onsite"}},
		{"br variants", "A<br/>B</BR>C<br />D", []string{"A", "B", "C", "D"}},
		{"details block", "<details><summary>2 locations</summary>A<br>B</details>", []string{"A", "B"}},
		{"details with whitespace", "<details><summary>3 locations</summary> NYC <br> SF <br> Remote </details>", []string{"NYC", "SF", "Remote"}},
		{"empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLocations(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLocations(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
