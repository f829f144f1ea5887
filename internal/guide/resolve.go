package guide

import (
	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

// Lookups scan candidates in dataset order and return the first match,
// so duplicate slugs within one container resolve to the first entity
// listed. That ambiguity is inherited from the dataset and documented,
// not an error. All lookups are pure and return domain.ErrNotFound as
// their only failure.

func FindRegion(ds *domain.Dataset, slug string) (*domain.Region, error) {
	if ds == nil {
		return nil, domain.ErrNotFound
	}
	for i := range ds.Regions {
		r := &ds.Regions[i]
		if MatchSlug(slug, r.Name, r.Slug) {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func FindCity(region *domain.Region, slug string) (*domain.City, error) {
	if region == nil {
		return nil, domain.ErrNotFound
	}
	for i := range region.Cities {
		c := &region.Cities[i]
		if MatchSlug(slug, c.Name, c.Slug) {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func FindAttraction(city *domain.City, slug string) (*domain.Attraction, error) {
	if city == nil {
		return nil, domain.ErrNotFound
	}
	for i := range city.Attractions {
		a := &city.Attractions[i]
		if MatchSlug(slug, a.Name, a.Slug) {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ResolvePath walks 1-3 slug segments down the containment hierarchy,
// short-circuiting the moment any level fails. Containment is strict: a
// city is only looked up inside the region that matched, never across
// regions, and likewise for attractions.
func ResolvePath(ds *domain.Dataset, segments []string) (domain.Chain, error) {
	if len(segments) == 0 || len(segments) > 3 {
		return domain.Chain{}, domain.ErrNotFound
	}
	var ch domain.Chain
	r, err := FindRegion(ds, segments[0])
	if err != nil {
		return domain.Chain{}, err
	}
	ch.Region = r
	if len(segments) > 1 {
		c, err := FindCity(r, segments[1])
		if err != nil {
			return domain.Chain{}, err
		}
		ch.City = c
	}
	if len(segments) > 2 {
		a, err := FindAttraction(ch.City, segments[2])
		if err != nil {
			return domain.Chain{}, err
		}
		ch.Attraction = a
	}
	return ch, nil
}
