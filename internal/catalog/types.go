package catalog

// Category groups destinations on the site (beach, mountain, ...).
type Category struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}

// Destination is a bookable place shown in listings and detail pages.
type Destination struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Type        string  `json:"type"`
	Country     string  `json:"country"`
	Continent   string  `json:"continent"`
	Description string  `json:"description"`
	HeroImage   string  `json:"heroImage"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int     `json:"reviewCount" validate:"gte=0"`
}
