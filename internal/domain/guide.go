package domain

// Region is a top-level area of the guide. Cities keep dataset order.
type Region struct {
	Name        string
	Slug        string // explicit slug from the dataset, "" when absent
	Description string
	Cities      []City
}

// City belongs to exactly the region that lists it.
type City struct {
	Name        string
	Slug        string
	Description string
	Attractions []Attraction
}

type Attraction struct {
	Name        string
	Slug        string
	Description string
	Merch       []MerchItem
	MerchNote   string
}

// MerchItem is one souvenir entry. Note is "" for bare-string entries.
type MerchItem struct {
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// Dataset is the normalized, session-immutable guide content.
type Dataset struct {
	Regions []Region
}
