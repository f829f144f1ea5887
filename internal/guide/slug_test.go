package guide_test

import (
	"net/url"
	"testing"

	"github.com/Anatolt/ru-cities-n-poi/internal/guide"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Port City", "port-city"},
		{"  Port \t City  ", "port-city"},
		{"North", "north"},
		{"", ""},
		{"   ", ""},
		{"Старый Город", url.PathEscape("старый-город")},
	}
	for _, c := range cases {
		if got := guide.Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	first := guide.Slugify("Old Tower")
	for i := 0; i < 10; i++ {
		if got := guide.Slugify("Old Tower"); got != first {
			t.Fatalf("unstable derivation: %q vs %q", got, first)
		}
	}
}

func TestSlugOf_ExplicitSlugVerbatim(t *testing.T) {
	// Explicit slugs are opaque: no re-encoding, even when pre-encoded.
	for _, explicit := range []string{"old-tower", "old%20tower", "UPPER CASE"} {
		if got := guide.SlugOf("Something Else", explicit); got != explicit {
			t.Fatalf("SlugOf explicit %q = %q", explicit, got)
		}
	}
	if got := guide.SlugOf("Old Tower", ""); got != "old-tower" {
		t.Fatalf("derived slug: %q", got)
	}
	if got := guide.SlugOf("", ""); got != "" {
		t.Fatalf("missing name should derive to empty, got %q", got)
	}
}

func TestMatchSlug_DecodeSymmetry(t *testing.T) {
	// If a name derives to slug X, both X and its decoded form identify
	// the entity.
	name := "Старый Город"
	encoded := guide.Slugify(name)
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if !guide.MatchSlug(encoded, name, "") {
		t.Fatalf("encoded candidate %q did not match", encoded)
	}
	if !guide.MatchSlug(decoded, name, "") {
		t.Fatalf("decoded candidate %q did not match", decoded)
	}
}

func TestMatchSlug_ExplicitDecoded(t *testing.T) {
	if !guide.MatchSlug("old tower", "Unrelated Name", "old%20tower") {
		t.Fatalf("decoded candidate should match encoded explicit slug")
	}
	if !guide.MatchSlug("old%20tower", "Unrelated Name", "old%20tower") {
		t.Fatalf("exact explicit slug should match")
	}
}

func TestMatchSlug_BadPercentFallsBack(t *testing.T) {
	// "100%legit" cannot be percent-decoded; the raw string is used
	// unchanged and still matches its own derivation.
	if !guide.MatchSlug("100%legit", "100%legit", "") {
		t.Fatalf("undecodable candidate should fall back to raw comparison")
	}
}

func TestMatchSlug_Negative(t *testing.T) {
	if guide.MatchSlug("", "North", "") {
		t.Fatalf("empty candidate must not match")
	}
	if guide.MatchSlug("south", "North", "") {
		t.Fatalf("unrelated candidate must not match")
	}
	if guide.MatchSlug("north", "", "") {
		t.Fatalf("nameless entity must not match anything")
	}
}
