package guide

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

// Normalize turns the raw decoded dataset into the canonical domain
// shape. Two top-level shapes exist in the wild: an object wrapping the
// region list under "regions" (canonical) and a bare array. Both are
// accepted here, once, so nothing downstream ever sniffs shapes again.
// Anything else fails fast as a load failure.
func Normalize(raw any) (*domain.Dataset, error) {
	var list []any
	switch v := raw.(type) {
	case map[string]any:
		l, ok := v["regions"].([]any)
		if !ok {
			return nil, fmt.Errorf("dataset object has no regions array")
		}
		list = l
	case []any:
		list = v
	default:
		return nil, fmt.Errorf("unrecognized dataset shape %T", raw)
	}

	ds := &domain.Dataset{Regions: make([]domain.Region, 0, len(list))}
	for _, it := range list {
		m, ok := it.(map[string]any)
		if !ok {
			log.Warn().Msgf("skipping non-object region entry %T", it)
			continue
		}
		ds.Regions = append(ds.Regions, normalizeRegion(m))
	}
	return ds, nil
}

func normalizeRegion(m map[string]any) domain.Region {
	r := domain.Region{
		Name:        firstNonEmptyAlias(m, regionAliases, "name"),
		Slug:        firstNonEmptyAlias(m, regionAliases, "slug"),
		Description: firstNonEmptyAlias(m, regionAliases, "description"),
	}
	for _, it := range firstList(m, regionAliases, "cities") {
		if cm, ok := it.(map[string]any); ok {
			r.Cities = append(r.Cities, normalizeCity(cm))
		}
	}
	return r
}

func normalizeCity(m map[string]any) domain.City {
	c := domain.City{
		Name:        firstNonEmptyAlias(m, cityAliases, "name"),
		Slug:        firstNonEmptyAlias(m, cityAliases, "slug"),
		Description: firstNonEmptyAlias(m, cityAliases, "description"),
	}
	for _, it := range firstList(m, cityAliases, "attractions") {
		if am, ok := it.(map[string]any); ok {
			c.Attractions = append(c.Attractions, normalizeAttraction(am))
		}
	}
	return c
}

func normalizeAttraction(m map[string]any) domain.Attraction {
	a := domain.Attraction{
		Name:        firstNonEmptyAlias(m, attractionAliases, "name"),
		Slug:        firstNonEmptyAlias(m, attractionAliases, "slug"),
		Description: firstNonEmptyAlias(m, attractionAliases, "description"),
		MerchNote:   firstNonEmptyAlias(m, attractionAliases, "merch_note"),
	}
	// Merch entries are either bare strings or {name, note} records.
	for _, it := range firstList(m, attractionAliases, "merch") {
		switch t := it.(type) {
		case string:
			if t != "" {
				a.Merch = append(a.Merch, domain.MerchItem{Name: t})
			}
		case map[string]any:
			item := domain.MerchItem{
				Name: firstNonEmptyAlias(t, merchItemAliases, "name"),
				Note: firstNonEmptyAlias(t, merchItemAliases, "note"),
			}
			if item.Name != "" {
				a.Merch = append(a.Merch, item)
			}
		}
	}
	return a
}
