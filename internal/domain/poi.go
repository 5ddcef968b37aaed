package domain

// POI represents a bookable point of interest from the catalog.
type POI struct {
	ID   string
	Name string
	City string
}
