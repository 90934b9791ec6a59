package model

// Restaurant describes a bookable venue.  Rows are created once by the
// seed step and never mutated afterwards; every booking decision reads
// CapacityMax as the aggregate number of guests the venue can host at a
// single slot.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Cuisines     – cuisine tags (stored as JSON in restaurants.cuisines_json).
//  Address      – street address, free text.
//  City         – city name used for location matching.
//  CapacityMax  – maximum total party size per slot (>= 1).
//  SeatingTypes – seating-style tags (stored as JSON in
//                 restaurants.seating_types_json).
//  OpeningHour  – opening time "HH:MM".
//  ClosingHour  – closing time "HH:MM".
//  AvgRating    – average rating used for result ordering.
type Restaurant struct {
	ID           int64    `json:"id"`            // restaurants.id
	Name         string   `json:"name"`          // restaurants.name
	Cuisines     []string `json:"cuisines"`      // restaurants.cuisines_json
	Address      string   `json:"address"`       // restaurants.address
	City         string   `json:"city"`          // restaurants.city
	CapacityMax  int      `json:"capacity_max"`  // restaurants.capacity_max
	SeatingTypes []string `json:"seating_types"` // restaurants.seating_types_json
	OpeningHour  string   `json:"opening_hour"`  // restaurants.opening_hour
	ClosingHour  string   `json:"closing_hour"`  // restaurants.closing_hour
	AvgRating    float64  `json:"avg_rating"`    // restaurants.avg_rating
}
