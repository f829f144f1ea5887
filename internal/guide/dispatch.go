package guide

import (
	"strings"

	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

// routeKeyword leads every non-home fragment: #/region/<r>[/<c>[/<a>]].
const routeKeyword = "region"

// ParseFragment splits a fragment identifier into path segments. The
// leading "#" marker is stripped (plain paths are tolerated, so a server
// URL path can be fed through unchanged), empty segments are discarded,
// and every segment past the leading keyword is percent-decoded with the
// tolerant decode-or-pass-through rule.
func ParseFragment(frag string) []string {
	trimmed := strings.TrimPrefix(frag, "#")
	var segs []string
	for _, p := range strings.Split(trimmed, "/") {
		if p != "" {
			segs = append(segs, p)
		}
	}
	for i := 1; i < len(segs); i++ {
		segs[i] = decodeLoose(segs[i])
	}
	return segs
}

// Dispatch applies the total transition table to a fragment:
//
//	[]                    -> Home
//	[region r]            -> Region
//	[region r c]          -> City
//	[region r c a]        -> Attraction
//	anything else         -> NotFound
//
// Any resolver miss forces NotFound regardless of level; a valid region
// with a bad city slug never silently degrades to the region view.
func Dispatch(ds *domain.Dataset, frag string) domain.Route {
	segs := ParseFragment(frag)
	if ds == nil {
		return domain.Route{Kind: domain.RouteNotFound}
	}
	if len(segs) == 0 {
		return homeRoute(ds)
	}
	if segs[0] != routeKeyword || len(segs) > 4 {
		return domain.Route{Kind: domain.RouteNotFound}
	}
	ch, err := ResolvePath(ds, segs[1:])
	if err != nil {
		return domain.Route{Kind: domain.RouteNotFound}
	}
	switch {
	case ch.Attraction != nil:
		return attractionRoute(ch)
	case ch.City != nil:
		return cityRoute(ch)
	default:
		return regionRoute(ch)
	}
}

// ErrorRoute wraps a load failure for presentation. Rendered distinctly
// from NotFound.
func ErrorRoute(err error) domain.Route {
	return domain.Route{Kind: domain.RouteError, Err: err.Error()}
}

/********** payload builders **********/

func refOf(name, explicit, description string) domain.EntityRef {
	return domain.EntityRef{Name: name, Slug: SlugOf(name, explicit), Description: description}
}

func homeRoute(ds *domain.Dataset) domain.Route {
	home := &domain.HomeView{Regions: make([]domain.EntityRef, 0, len(ds.Regions))}
	for i := range ds.Regions {
		r := &ds.Regions[i]
		home.Regions = append(home.Regions, refOf(r.Name, r.Slug, r.Description))
	}
	return domain.Route{Kind: domain.RouteHome, Home: home}
}

func regionRoute(ch domain.Chain) domain.Route {
	v := &domain.RegionView{
		Region: refOf(ch.Region.Name, ch.Region.Slug, ch.Region.Description),
		Cities: make([]domain.EntityRef, 0, len(ch.Region.Cities)),
	}
	for i := range ch.Region.Cities {
		c := &ch.Region.Cities[i]
		v.Cities = append(v.Cities, refOf(c.Name, c.Slug, c.Description))
	}
	return domain.Route{Kind: domain.RouteRegion, Region: v}
}

func cityRoute(ch domain.Chain) domain.Route {
	v := &domain.CityView{
		Region:      refOf(ch.Region.Name, ch.Region.Slug, ch.Region.Description),
		City:        refOf(ch.City.Name, ch.City.Slug, ch.City.Description),
		Attractions: make([]domain.EntityRef, 0, len(ch.City.Attractions)),
	}
	for i := range ch.City.Attractions {
		a := &ch.City.Attractions[i]
		v.Attractions = append(v.Attractions, refOf(a.Name, a.Slug, a.Description))
	}
	return domain.Route{Kind: domain.RouteCity, City: v}
}

func attractionRoute(ch domain.Chain) domain.Route {
	v := &domain.AttractionView{
		Region:     refOf(ch.Region.Name, ch.Region.Slug, ch.Region.Description),
		City:       refOf(ch.City.Name, ch.City.Slug, ch.City.Description),
		Attraction: refOf(ch.Attraction.Name, ch.Attraction.Slug, ch.Attraction.Description),
		MerchNote:  ch.Attraction.MerchNote,
	}
	if n := len(ch.Attraction.Merch); n > 0 {
		v.Merch = make([]domain.MerchItem, n)
		copy(v.Merch, ch.Attraction.Merch)
	}
	return domain.Route{Kind: domain.RouteAttraction, Attraction: v}
}
