package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  A
// reservation binds a restaurant and a slot key to a party size; the sum
// of confirmed party sizes per (restaurant, slot) pair is the quantity the
// booking service guards against capacity.  Slot keys are stored as
// "YYYY-MM-DD HH:MM" strings in the reference timezone, so lexical
// ordering equals chronological ordering.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ReservationRecord mirrors the schema of the reservations table.  It is
// used internally by the repository when constructing or scanning rows.
// Business logic should use the model.Reservation type instead.
type ReservationRecord struct {
	ID           int64
	Code         string
	RestaurantID int64
	SlotKey      string
	PartySize    int
	UserName     string
	Contact      string
	SeatingType  *string
	Status       string
	CreatedAt    time.Time
}

// ConfirmedPartySumTx returns the total confirmed party size for the exact
// (restaurant, slot) pair within the scope of an existing transaction.
// Cancelled reservations do not count against capacity.
func (r *ReservationRepo) ConfirmedPartySumTx(ctx context.Context, tx *sql.Tx, restaurantID int64, slotKey string) (int, error) {
	const q = `SELECT COALESCE(SUM(party_size), 0)
	           FROM reservations
	           WHERE restaurant_id = ? AND slot_key = ? AND status = 'confirmed'`
	var sum int
	if err := tx.QueryRowContext(ctx, q, restaurantID, slotKey).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// ConfirmedPartySum is the non-transactional variant used by the advisory
// availability check.  It takes no locks and may be stale by the time a
// booking attempt follows; callers must not treat the result as a
// guarantee.
func (r *ReservationRepo) ConfirmedPartySum(ctx context.Context, restaurantID int64, slotKey string) (int, error) {
	const q = `SELECT COALESCE(SUM(party_size), 0)
	           FROM reservations
	           WHERE restaurant_id = ? AND slot_key = ? AND status = 'confirmed'`
	var sum int
	if err := r.db.QueryRowContext(ctx, q, restaurantID, slotKey).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// CreateTx inserts a new confirmed reservation within the scope of an
// existing transaction.  It populates the generated ID and the
// DB-defaulted creation timestamp on the provided record.  The caller must
// commit or rollback the transaction.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *ReservationRecord) error {
	const q = `INSERT INTO reservations
	           (reservation_code, restaurant_id, slot_key, party_size, user_name, contact, seating_type, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		rec.Code, rec.RestaurantID, rec.SlotKey, rec.PartySize,
		rec.UserName, rec.Contact, rec.SeatingType, rec.Status,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	// Query back the row to populate the DB-defaulted creation timestamp.
	const sel = `SELECT created_at FROM reservations WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, rec.ID).Scan(&rec.CreatedAt)
}

// CancelByCode transitions a reservation from confirmed to cancelled.  The
// conditional UPDATE makes the transition atomic for the single row: when
// two cancel requests race, exactly one succeeds and the other observes
// ErrAlreadyCancelled.  Unknown codes yield ErrReservationNotFound.
func (r *ReservationRepo) CancelByCode(ctx context.Context, code string) error {
	const upd = `UPDATE reservations SET status = 'cancelled'
	             WHERE reservation_code = ? AND status = 'confirmed'`
	result, err := r.db.ExecContext(ctx, upd, code)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	// Nothing was updated: either the code is unknown or the reservation
	// is already cancelled.
	var status string
	err = r.db.QueryRowContext(ctx,
		`SELECT status FROM reservations WHERE reservation_code = ?`, code).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrReservationNotFound
	}
	if err != nil {
		return err
	}
	return ErrAlreadyCancelled
}

// GetByCode returns a single reservation by its public code.  Returns
// ErrReservationNotFound when the code is unknown.
func (r *ReservationRepo) GetByCode(ctx context.Context, code string) (*model.Reservation, error) {
	const q = `SELECT id, reservation_code, restaurant_id, slot_key, party_size,
	                  user_name, contact, seating_type, status, created_at
	           FROM reservations WHERE reservation_code = ?`
	var (
		res     model.Reservation
		seating sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, code).Scan(
		&res.ID, &res.Code, &res.RestaurantID, &res.SlotKey, &res.PartySize,
		&res.UserName, &res.Contact, &seating, &res.Status, &res.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	if seating.Valid {
		st := seating.String
		res.SeatingType = &st
	}
	return &res, nil
}

// ListByContact returns reservation summaries for the given contact,
// newest slot first, cancelled reservations included.  When no
// reservations exist an empty slice is returned.
func (r *ReservationRepo) ListByContact(ctx context.Context, contact string) ([]model.ReservationSummary, error) {
	const q = `SELECT r.reservation_code, rest.name, r.slot_key, r.party_size, r.user_name, r.status
	           FROM reservations r
	           JOIN restaurants rest ON rest.id = r.restaurant_id
	           WHERE r.contact = ?
	           ORDER BY r.slot_key DESC`
	rows, err := r.db.QueryContext(ctx, q, contact)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReservationSummary, 0)
	for rows.Next() {
		var s model.ReservationSummary
		if err := rows.Scan(&s.Code, &s.RestaurantName, &s.SlotKey, &s.PartySize, &s.UserName, &s.Status); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
