package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// seedRestaurant is one row of the bundled demo dataset.
type seedRestaurant struct {
	name     string
	cuisines []string
	address  string
	city     string
	capacity int
	seating  []string
	opens    string
	closes   string
	rating   float64
}

// Seed inserts the demo restaurant dataset the first time the service
// starts against an empty database.  A non-empty restaurants table is left
// untouched, so restarting the server never duplicates rows.
func Seed(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n); err != nil {
		return fmt.Errorf("seed count: %w", err)
	}
	if n > 0 {
		logrus.WithField("restaurants", n).Debug("seed skipped, table already populated")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO restaurants
            (name, cuisines_json, address, city, capacity_max, seating_types_json, opening_hour, closing_hour, avg_rating)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("seed prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range seedRestaurants {
		cuisines, err := json.Marshal(r.cuisines)
		if err != nil {
			return err
		}
		seating, err := json.Marshal(r.seating)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			r.name, cuisines, r.address, r.city, r.capacity, seating, r.opens, r.closes, r.rating,
		); err != nil {
			return fmt.Errorf("seed insert %q: %w", r.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	committed = true
	logrus.WithField("restaurants", len(seedRestaurants)).Info("seeded restaurant dataset")
	return nil
}

// seedRestaurants is the bundled demo dataset: fifty restaurants across
// six Indian cities with varied cuisines, capacities and seating types.
var seedRestaurants = []seedRestaurant{
	// Delhi
	{"Sakura Sky Lounge", []string{"Japanese", "Sushi"}, "HSR Layout, Delhi", "Delhi", 50, []string{"rooftop", "outdoor"}, "18:00", "23:30", 4.6},
	{"Trattoria Roma", []string{"Italian", "Pasta"}, "Connaught Place, Delhi", "Delhi", 60, []string{"indoor", "outdoor"}, "11:00", "23:00", 4.4},
	{"Skyline Rooftop", []string{"Modern Indian", "Fusion", "Sushi"}, "HSR Layout, Delhi", "Delhi", 120, []string{"rooftop", "private"}, "17:00", "01:00", 4.7},
	{"Jazz & Dine", []string{"American", "Barbecue"}, "Hauz Khas, Delhi", "Delhi", 80, []string{"indoor", "live-music"}, "12:00", "23:00", 4.1},
	{"La Petite", []string{"French", "Bakery"}, "GK-II, Delhi", "Delhi", 25, []string{"indoor", "patio"}, "08:00", "21:00", 4.8},
	{"Curry Leaf", []string{"North Indian", "Mughlai"}, "Rajouri Garden, Delhi", "Delhi", 100, []string{"family", "indoor"}, "11:00", "23:00", 4.3},
	{"Bao Bar", []string{"Asian", "Chinese", "Dimsum"}, "Khan Market, Delhi", "Delhi", 55, []string{"indoor", "casual"}, "12:00", "23:00", 4.5},
	{"The Terrace Grill", []string{"Continental", "Steakhouse"}, "CP, Delhi", "Delhi", 90, []string{"rooftop", "bar"}, "17:00", "00:00", 4.6},
	{"Tandoor Tales", []string{"Punjabi", "Tandoori"}, "Karol Bagh, Delhi", "Delhi", 85, []string{"indoor", "family"}, "11:00", "23:00", 4.2},
	{"Masala Republic", []string{"Indian", "Fusion"}, "Saket, Delhi", "Delhi", 70, []string{"fine-dine", "modern"}, "12:00", "23:30", 4.5},

	// Mumbai
	{"The Bombay Brasserie", []string{"Indian", "Seafood"}, "Bandra, Mumbai", "Mumbai", 95, []string{"indoor", "bar"}, "12:00", "00:00", 4.6},
	{"Pasta Street", []string{"Italian"}, "Lower Parel, Mumbai", "Mumbai", 50, []string{"indoor", "family"}, "11:00", "23:00", 4.3},
	{"Oceanside Diner", []string{"Seafood", "Continental"}, "Juhu Beach, Mumbai", "Mumbai", 120, []string{"seaside", "outdoor"}, "18:00", "01:00", 4.7},
	{"Saffron Soul", []string{"Indian", "Biryani"}, "Andheri, Mumbai", "Mumbai", 75, []string{"buffet", "indoor"}, "12:00", "23:30", 4.4},
	{"Cafe de Arts", []string{"Cafe", "Bakery"}, "Colaba, Mumbai", "Mumbai", 40, []string{"art-cafe", "casual"}, "08:00", "21:00", 4.5},
	{"Zen Izakaya", []string{"Japanese", "Sushi"}, "BKC, Mumbai", "Mumbai", 60, []string{"rooftop", "sushi-bar"}, "18:00", "00:00", 4.7},
	{"Tap & Barrel", []string{"Pub", "Finger Food"}, "Powai, Mumbai", "Mumbai", 110, []string{"pub", "sports"}, "17:00", "01:00", 4.3},
	{"Le Ciel", []string{"French", "Continental"}, "Nariman Point, Mumbai", "Mumbai", 90, []string{"fine-dine", "romantic"}, "19:00", "23:30", 4.8},
	{"Kebab Kingdom", []string{"North Indian", "Grill"}, "Kurla, Mumbai", "Mumbai", 80, []string{"casual", "family"}, "11:00", "23:00", 4.2},
	{"Green Bowl", []string{"Vegan", "Healthy"}, "Bandra, Mumbai", "Mumbai", 45, []string{"indoor", "garden"}, "09:00", "22:00", 4.5},

	// Bengaluru
	{"Cloud 9 Terrace", []string{"Continental", "Fusion"}, "Indiranagar, Bengaluru", "Bengaluru", 100, []string{"rooftop", "bar"}, "18:00", "00:00", 4.6},
	{"Rasa Rasoi", []string{"South Indian", "Traditional"}, "Jayanagar, Bengaluru", "Bengaluru", 60, []string{"indoor", "family"}, "07:30", "22:30", 4.4},
	{"Grill House 88", []string{"BBQ", "Steakhouse"}, "Koramangala, Bengaluru", "Bengaluru", 85, []string{"outdoor", "barbecue"}, "12:00", "23:00", 4.5},
	{"Tapri Tales", []string{"Cafe", "Tea"}, "Whitefield, Bengaluru", "Bengaluru", 40, []string{"indoor", "casual"}, "08:00", "21:00", 4.3},
	{"The Wok Lab", []string{"Asian", "Thai"}, "HSR Layout, Bengaluru", "Bengaluru", 70, []string{"indoor", "family"}, "11:00", "23:00", 4.4},
	{"Elora Lounge", []string{"Mediterranean", "Tapas"}, "Indiranagar, Bengaluru", "Bengaluru", 120, []string{"rooftop", "live-music"}, "17:00", "01:00", 4.7},
	{"Cafe Nilgiri", []string{"Coffee", "Desserts"}, "MG Road, Bengaluru", "Bengaluru", 30, []string{"cafe", "quiet"}, "09:00", "22:00", 4.6},
	{"Korma Kafe", []string{"Indian", "Mughlai"}, "BTM Layout, Bengaluru", "Bengaluru", 75, []string{"indoor", "buffet"}, "12:00", "23:00", 4.3},
	{"Urban Spice", []string{"Continental", "Fusion"}, "JP Nagar, Bengaluru", "Bengaluru", 90, []string{"fine-dine", "family"}, "12:00", "23:30", 4.5},
	{"The Sizzler Pit", []string{"Sizzlers", "Grill"}, "Koramangala, Bengaluru", "Bengaluru", 70, []string{"casual", "indoor"}, "11:00", "23:00", 4.2},

	// Pune
	{"Little Italy", []string{"Italian", "Pizza"}, "Koregaon Park, Pune", "Pune", 50, []string{"indoor", "family"}, "11:00", "23:00", 4.5},
	{"BBQ Ville", []string{"BBQ", "Grill"}, "Viman Nagar, Pune", "Pune", 100, []string{"outdoor", "barbecue"}, "12:00", "23:30", 4.4},
	{"The French Door", []string{"French", "European"}, "Baner, Pune", "Pune", 60, []string{"patio", "romantic"}, "18:00", "23:00", 4.6},
	{"Poha Junction", []string{"Maharashtrian", "Breakfast"}, "Kothrud, Pune", "Pune", 35, []string{"casual", "cafe"}, "07:00", "12:00", 4.3},
	{"The Spice Den", []string{"Indian", "Chinese"}, "Hinjewadi, Pune", "Pune", 90, []string{"indoor", "family"}, "11:00", "23:00", 4.2},

	// Hyderabad
	{"Biryani Mahal", []string{"Hyderabadi", "Biryani"}, "Banjara Hills, Hyderabad", "Hyderabad", 120, []string{"indoor", "family"}, "11:00", "23:30", 4.7},
	{"Noodle Republic", []string{"Asian", "Chinese"}, "Hitech City, Hyderabad", "Hyderabad", 75, []string{"indoor", "casual"}, "12:00", "23:00", 4.3},
	{"Kebab-e-Khaas", []string{"North Indian", "Grill"}, "Secunderabad, Hyderabad", "Hyderabad", 90, []string{"indoor", "barbecue"}, "11:00", "23:30", 4.5},
	{"Sky High Bistro", []string{"Continental", "Bar"}, "Gachibowli, Hyderabad", "Hyderabad", 150, []string{"rooftop", "live-music"}, "18:00", "01:00", 4.8},
	{"The Sweet Spot", []string{"Desserts", "Bakery"}, "Jubilee Hills, Hyderabad", "Hyderabad", 40, []string{"cafe", "casual"}, "09:00", "21:00", 4.6},

	// Chennai
	{"Marina Bay Diner", []string{"Seafood", "South Indian"}, "Besant Nagar, Chennai", "Chennai", 100, []string{"seaside", "outdoor"}, "12:00", "23:30", 4.6},
	{"Idli Express", []string{"South Indian", "Fast Food"}, "T Nagar, Chennai", "Chennai", 30, []string{"casual", "takeaway"}, "06:30", "22:00", 4.2},
	{"Bella Napoli", []string{"Italian", "Pizza"}, "Nungambakkam, Chennai", "Chennai", 65, []string{"indoor", "family"}, "12:00", "23:00", 4.5},
	{"Spice Route", []string{"Indian", "Thai"}, "Velachery, Chennai", "Chennai", 85, []string{"fine-dine", "romantic"}, "12:00", "23:00", 4.4},
	{"The Choco Room", []string{"Cafe", "Desserts"}, "Anna Nagar, Chennai", "Chennai", 40, []string{"cafe", "casual"}, "10:00", "22:00", 4.3},

	{"Rooftop Mirage", []string{"Sushi", "Japanese"}, "HSR Layout, Bengaluru", "Bengaluru", 45, []string{"rooftop", "romantic"}, "18:00", "23:30", 4.6},
	{"Monsoon Grill", []string{"Seafood", "Grill"}, "Bandra, Mumbai", "Mumbai", 85, []string{"outdoor", "seaside"}, "17:00", "00:30", 4.4},
	{"Heritage Bites", []string{"Indian", "Street Food"}, "Old Delhi, Delhi", "Delhi", 60, []string{"casual", "outdoor"}, "10:00", "23:00", 4.2},
	{"Vine & Dine", []string{"Mediterranean", "Wine Bar"}, "Koramangala, Bengaluru", "Bengaluru", 55, []string{"indoor", "wine-bar"}, "18:00", "23:30", 4.7},
	{"Sunset Cafe", []string{"Cafe", "Light Bites"}, "Juhu, Mumbai", "Mumbai", 35, []string{"seaside", "patio"}, "07:00", "21:00", 4.4},
}
