package catalog

// FallbackCategories returns the static category list served when the
// provider is unavailable. A fresh slice is returned on every call.
func FallbackCategories() []Category {
	return []Category{
		{ID: "1", Name: "Beach", Slug: "beach", Description: "Sun, sand and crystal-clear water"},
		{ID: "2", Name: "Mountain", Slug: "mountain", Description: "Alpine peaks, hiking trails and fresh air"},
		{ID: "3", Name: "City", Slug: "city", Description: "Vibrant streets, culture and nightlife"},
		{ID: "4", Name: "Cultural", Slug: "cultural", Description: "History, heritage and local traditions"},
		{ID: "5", Name: "Adventure", Slug: "adventure", Description: "Adrenaline-fuelled trips off the beaten path"},
	}
}

// FallbackDestinations returns the static destination list served when the
// provider is unavailable. A fresh slice is returned on every call.
func FallbackDestinations() []Destination {
	return []Destination{
		{
			ID:          "1",
			Name:        "Santorini",
			Slug:        "santorini",
			Type:        "beach",
			Country:     "Greece",
			Continent:   "Europe",
			Description: "Whitewashed villages above the caldera and famous sunsets.",
			HeroImage:   "/images/destinations/santorini.jpg",
			Rating:      4.8,
			ReviewCount: 2150,
		},
		{
			ID:          "2",
			Name:        "Kyoto",
			Slug:        "kyoto",
			Type:        "cultural",
			Country:     "Japan",
			Continent:   "Asia",
			Description: "Temples, gardens and traditional tea houses.",
			HeroImage:   "/images/destinations/kyoto.jpg",
			Rating:      4.9,
			ReviewCount: 1870,
		},
		{
			ID:          "3",
			Name:        "Swiss Alps",
			Slug:        "swiss-alps",
			Type:        "mountain",
			Country:     "Switzerland",
			Continent:   "Europe",
			Description: "Glaciers, ski resorts and scenic railways.",
			HeroImage:   "/images/destinations/swiss-alps.jpg",
			Rating:      4.7,
			ReviewCount: 1320,
		},
		{
			ID:          "4",
			Name:        "New York",
			Slug:        "new-york",
			Type:        "city",
			Country:     "United States",
			Continent:   "North America",
			Description: "Skyline views, Broadway shows and endless dining.",
			HeroImage:   "/images/destinations/new-york.jpg",
			Rating:      4.6,
			ReviewCount: 3040,
		},
		{
			ID:          "5",
			Name:        "Bali",
			Slug:        "bali",
			Type:        "beach",
			Country:     "Indonesia",
			Continent:   "Asia",
			Description: "Rice terraces, surf breaks and island temples.",
			HeroImage:   "/images/destinations/bali.jpg",
			Rating:      4.7,
			ReviewCount: 2480,
		},
		{
			ID:          "6",
			Name:        "Patagonia",
			Slug:        "patagonia",
			Type:        "adventure",
			Country:     "Argentina",
			Continent:   "South America",
			Description: "Trekking among granite spires and ice fields.",
			HeroImage:   "/images/destinations/patagonia.jpg",
			Rating:      4.8,
			ReviewCount: 960,
		},
	}
}
