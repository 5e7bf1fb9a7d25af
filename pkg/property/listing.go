// Package property implements the demo real-estate search over a fixed
// catalog. It shares the filter pipeline with the mood history windowing.
package property

import (
	"fmt"
	"math"
)

// Listing is one immutable catalog record. Users only ever filter listings;
// nothing creates or deletes them.
type Listing struct {
	ID          int
	Title       string
	Price       int
	Address     string
	Bedrooms    int
	Bathrooms   float64
	Area        int
	Type        string
	Status      string
	Description string
}

// Catalog returns the fixed demo dataset.
func Catalog() []Listing {
	return []Listing{
		{
			ID:          1,
			Title:       "Modern Luxury Villa",
			Price:       1250000,
			Address:     "123 Oceanview Dr, Malibu, CA",
			Bedrooms:    5,
			Bathrooms:   4.5,
			Area:        3800,
			Type:        "House",
			Status:      "For Sale",
			Description: "Stunning modern villa with ocean views, featuring a chef's kitchen, infinity pool, and smart home technology.",
		},
		{
			ID:          2,
			Title:       "Downtown Apartment",
			Price:       3500,
			Address:     "456 City Center, New York, NY",
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        1200,
			Type:        "Apartment",
			Status:      "For Rent",
			Description: "Stylish downtown apartment near major attractions, restaurants, and transportation. Features hardwood floors and city views.",
		},
		{
			ID:          3,
			Title:       "Suburban Family Home",
			Price:       475000,
			Address:     "789 Maple St, Chicago, IL",
			Bedrooms:    4,
			Bathrooms:   2.5,
			Area:        2400,
			Type:        "House",
			Status:      "For Sale",
			Description: "Charming family home in a quiet suburb with excellent schools. Features spacious backyard, updated kitchen, and finished basement.",
		},
		{
			ID:          4,
			Title:       "Cozy Cottage Near Lake",
			Price:       329000,
			Address:     "234 Lake Road, Seattle, WA",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1650,
			Type:        "House",
			Status:      "For Sale",
			Description: "Picturesque cottage with lake access. Features stone fireplace, updated appliances, and wraparound porch.",
		},
		{
			ID:          5,
			Title:       "Luxury Condo with City View",
			Price:       5200,
			Address:     "555 Skyline Ave, San Francisco, CA",
			Bedrooms:    3,
			Bathrooms:   3,
			Area:        2100,
			Type:        "Condo",
			Status:      "For Rent",
			Description: "High-end condo with panoramic city views. Features gourmet kitchen, floor-to-ceiling windows, and building amenities.",
		},
		{
			ID:          6,
			Title:       "Historic Brownstone",
			Price:       875000,
			Address:     "321 Heritage Blvd, Boston, MA",
			Bedrooms:    4,
			Bathrooms:   3.5,
			Area:        3200,
			Type:        "House",
			Status:      "For Sale",
			Description: "Stunning restored brownstone with original details and modern amenities. Features garden, hardwood floors, and exposed brick.",
		},
	}
}

// FormatPrice renders a price the way the listing cards do: $1.3M, $475K,
// or plain dollars below a thousand.
func FormatPrice(price int) string {
	switch {
	case price >= 1000000:
		return fmt.Sprintf("$%.1fM", math.Round(float64(price)/100000)/10)
	case price >= 1000:
		return fmt.Sprintf("$%.0fK", math.Round(float64(price)/1000))
	default:
		return fmt.Sprintf("$%d", price)
	}
}
