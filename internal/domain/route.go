package domain

// Chain is a resolved walk down the containment hierarchy. City is nil
// unless Region is set; Attraction is nil unless City is set.
type Chain struct {
	Region     *Region
	City       *City
	Attraction *Attraction
}

type RouteKind string

const (
	RouteHome       RouteKind = "home"
	RouteRegion     RouteKind = "region"
	RouteCity       RouteKind = "city"
	RouteAttraction RouteKind = "attraction"
	RouteNotFound   RouteKind = "not_found"
	RouteError      RouteKind = "error"
)

// Route is the dispatcher's outcome, handed to presentation. Exactly one
// payload field is set for the view kinds; Err is set for RouteError only.
type Route struct {
	Kind       RouteKind       `json:"kind"`
	Home       *HomeView       `json:"home,omitempty"`
	Region     *RegionView     `json:"region,omitempty"`
	City       *CityView       `json:"city,omitempty"`
	Attraction *AttractionView `json:"attraction,omitempty"`
	Err        string          `json:"error,omitempty"`
}

// EntityRef is a presentation-ready summary of one entity. Slug is the
// canonical slug (explicit verbatim, else derived), usable as a path
// segment without further encoding.
type EntityRef struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type HomeView struct {
	Regions []EntityRef `json:"regions"`
}

type RegionView struct {
	Region EntityRef   `json:"region"`
	Cities []EntityRef `json:"cities"`
}

type CityView struct {
	Region      EntityRef   `json:"region"`
	City        EntityRef   `json:"city"`
	Attractions []EntityRef `json:"attractions"`
}

type AttractionView struct {
	Region     EntityRef   `json:"region"`
	City       EntityRef   `json:"city"`
	Attraction EntityRef   `json:"attraction"`
	Merch      []MerchItem `json:"merch,omitempty"`
	MerchNote  string      `json:"merch_note,omitempty"`
}
