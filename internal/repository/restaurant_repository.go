package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// RestaurantRepo provides read access to the restaurants table.  Restaurant
// rows are immutable after seeding, so the repository exposes no writes
// besides the seed-time insert helpers in the database package.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo returns a new RestaurantRepo bound to the given database.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo { return &RestaurantRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions that
// span restaurant and reservation rows.
func (r *RestaurantRepo) DB() *sql.DB { return r.db }

const restaurantColumns = `id, name, cuisines_json, address, city, capacity_max, seating_types_json, opening_hour, closing_hour, avg_rating`

// GetByID returns a single restaurant.  When no row exists it returns
// ErrRestaurantNotFound.
func (r *RestaurantRepo) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = ?`, id)
	rest, err := scanRestaurant(row)
	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// List returns every restaurant.  The seed dataset is small, so filtering
// over tag sets happens in the service layer where it can be expressed in
// Go instead of JSON-column SQL.
func (r *RestaurantRepo) List(ctx context.Context) ([]model.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Restaurant, 0, 64)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CapacityForUpdateTx reads a restaurant's capacity while taking an
// exclusive row lock inside the given transaction.  Every booking attempt
// for the restaurant passes through this lock, which serializes the
// read-sum-then-insert sequence and upholds the capacity invariant under
// concurrent bookings.  Returns ErrRestaurantNotFound when the id is
// unknown.
func (r *RestaurantRepo) CapacityForUpdateTx(ctx context.Context, tx *sql.Tx, id int64) (int, error) {
	var capacity int
	err := tx.QueryRowContext(ctx,
		`SELECT capacity_max FROM restaurants WHERE id = ? FOR UPDATE`, id).Scan(&capacity)
	if err == sql.ErrNoRows {
		return 0, ErrRestaurantNotFound
	}
	if err != nil {
		return 0, err
	}
	return capacity, nil
}

// Count returns the number of seeded restaurants.  Used by the seed step
// to decide whether the dataset needs inserting.
func (r *RestaurantRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n)
	return n, err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRestaurant decodes one restaurant row, unpacking the JSON tag
// columns into string slices.
func scanRestaurant(row rowScanner) (*model.Restaurant, error) {
	var (
		rest         model.Restaurant
		cuisinesJSON string
		seatingJSON  string
		address      sql.NullString
		city         sql.NullString
		opening      sql.NullString
		closing      sql.NullString
		rating       sql.NullFloat64
	)
	if err := row.Scan(
		&rest.ID, &rest.Name, &cuisinesJSON, &address, &city,
		&rest.CapacityMax, &seatingJSON, &opening, &closing, &rating,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(cuisinesJSON), &rest.Cuisines); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(seatingJSON), &rest.SeatingTypes); err != nil {
		return nil, err
	}
	rest.Address = address.String
	rest.City = city.String
	rest.OpeningHour = opening.String
	rest.ClosingHour = closing.String
	rest.AvgRating = rating.Float64
	return &rest, nil
}
