package guide

import (
	"net/url"
	"strings"
)

// Slugify derives a URL-safe slug from a display name: lower-cased, runs
// of whitespace collapsed to single hyphens, percent-encoded as one path
// segment. Empty or all-whitespace names derive to "".
func Slugify(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return url.PathEscape(strings.Join(fields, "-"))
}

// SlugOf returns the canonical slug for an entity: the explicit slug
// verbatim when present (explicit slugs are opaque and never re-encoded),
// else one derived from the name.
func SlugOf(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return Slugify(name)
}

// decodeLoose percent-decodes s, returning s unchanged when decoding
// fails. Decode failure is never surfaced.
func decodeLoose(s string) string {
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}

// MatchSlug reports whether candidate identifies the entity with the
// given name and explicit slug. Comparison order: exact derived slug,
// exact explicit slug, then equality after best-effort percent-decoding
// of both sides. The decoded pass exists because a candidate may arrive
// already decoded (typed into an address bar) or still encoded (built by
// an internal link), and encoding is not idempotent across navigations.
func MatchSlug(candidate, name, explicit string) bool {
	if candidate == "" {
		return false
	}
	derived := Slugify(name)
	if derived != "" && candidate == derived {
		return true
	}
	if explicit != "" && candidate == explicit {
		return true
	}
	dc := decodeLoose(candidate)
	if derived != "" && dc == decodeLoose(derived) {
		return true
	}
	return explicit != "" && dc == decodeLoose(explicit)
}
