package guide

import "strings"

/********** alias registries (single source of truth) **********/

// The upstream dataset predates any schema: every field has grown
// synonyms over time, some of them Russian. Candidates are consulted in
// priority order; the first non-empty hit wins.

var regionAliases = map[string][]string{
	"name":        {"name", "title", "region", "название"},
	"slug":        {"slug"},
	"description": {"description", "desc", "описание"},
	"cities":      {"cities", "towns", "города"},
}

var cityAliases = map[string][]string{
	"name":        {"name", "title", "city", "город", "название"},
	"slug":        {"slug"},
	"description": {"description", "desc", "описание"},
	"attractions": {"attractions", "landmarks", "pois", "sights", "достопримечательности"},
}

var attractionAliases = map[string][]string{
	"name":        {"name", "title", "attraction", "название"},
	"slug":        {"slug"},
	"description": {"description", "desc", "описание"},
	"merch":       {"merch", "merchandise", "souvenirs", "сувениры", "товары"},
	"merch_note":  {"merch_note", "merchNote", "note", "примечание"},
}

var merchItemAliases = map[string][]string{
	"name": {"name", "title", "item", "название"},
	"note": {"note", "описание"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// firstList: first value under an alias set that is a JSON array.
// A missing or non-array field yields nil, which downstream treats the
// same as an empty container.
func firstList(m map[string]any, aliases map[string][]string, key string) []any {
	for _, p := range aliases[key] {
		if raw, ok := lookupAny(m, p).([]any); ok {
			return raw
		}
	}
	return nil
}
