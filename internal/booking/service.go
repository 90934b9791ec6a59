package booking

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/slot"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// Service bundles the repositories and the reference timezone needed to
// run reservation operations.  All datetime decisions (normalization,
// past checks, slot keys) are made against the reference location; "now"
// is read through the now hook so tests can pin the clock.
type Service struct {
	db           *sql.DB
	restaurants  *repository.RestaurantRepo
	reservations *repository.ReservationRepo
	loc          *time.Location
	now          func() time.Time

	// OnConfirmed, when set, is invoked after a booking commits.  It runs
	// outside the transaction: a failing hook can never undo a committed
	// reservation, and hook errors must be handled by the hook itself.
	OnConfirmed func(ctx context.Context, ev queue.ReservationConfirmedEvent)
}

// New constructs a Service over the given database handle and reference
// timezone.
func New(db *sql.DB, loc *time.Location) *Service {
	return &Service{
		db:           db,
		restaurants:  repository.NewRestaurantRepo(db),
		reservations: repository.NewReservationRepo(db),
		loc:          loc,
		now:          time.Now,
	}
}

// SearchFilter holds the optional restaurant search criteria.  Nil or
// empty fields match everything.
type SearchFilter struct {
	Cuisines     []string
	Locations    []string
	MinCapacity  *int
	MaxCapacity  *int
	SeatingTypes []string
}

// SearchRestaurants returns restaurants matching the filter, ordered by
// rating descending.  The seed dataset is small and immutable, so rows are
// loaded once and filtered in process; tag matching is any-overlap and
// case-insensitive, location terms match as substrings of "address city".
// No match yields an empty list, never an error.
func (s *Service) SearchRestaurants(ctx context.Context, f SearchFilter) ([]model.Restaurant, error) {
	all, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	out := make([]model.Restaurant, 0, len(all))
	for _, r := range all {
		if matchesFilter(r, f) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })
	return out, nil
}

// matchesFilter applies every populated criterion of f to r.
func matchesFilter(r model.Restaurant, f SearchFilter) bool {
	if len(f.Cuisines) > 0 && !anyOverlap(r.Cuisines, f.Cuisines) {
		return false
	}
	if len(f.Locations) > 0 {
		location := strings.ToLower(strings.TrimSpace(r.Address + " " + r.City))
		found := false
		for _, term := range f.Locations {
			if term = strings.ToLower(strings.TrimSpace(term)); term != "" && strings.Contains(location, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinCapacity != nil && r.CapacityMax < *f.MinCapacity {
		return false
	}
	if f.MaxCapacity != nil && r.CapacityMax > *f.MaxCapacity {
		return false
	}
	if len(f.SeatingTypes) > 0 && !anyOverlap(r.SeatingTypes, f.SeatingTypes) {
		return false
	}
	return true
}

// anyOverlap reports whether the two tag sets share at least one element,
// compared case-insensitively.
func anyOverlap(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[strings.ToLower(h)] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[strings.ToLower(w)]; ok {
			return true
		}
	}
	return false
}

// Availability is the result of the advisory capacity check.
type Availability struct {
	Available   bool `json:"available"`
	SeatsLeft   int  `json:"seats_left"`
	CapacityMax int  `json:"capacity_max"`
}

// CheckAvailability computes the remaining seats for a (restaurant, slot)
// pair.  The slot expression must already be canonical ISO; informal input
// is rejected with invalid_datetime_format.  This is a read-only,
// non-locking check: it takes no part in the booking transaction's lock
// discipline and may be stale by the time a booking attempt follows.
// Callers must not treat a positive result as a guarantee.
func (s *Service) CheckAvailability(ctx context.Context, restaurantID int64, slotExpr string, partySize int) (*Availability, error) {
	t, err := slot.ParseKey(slotExpr, s.loc)
	if err != nil {
		return nil, &Failure{Kind: KindInvalidDatetime, Message: "use YYYY-MM-DD HH:MM"}
	}
	now := s.now().In(s.loc)
	if !t.After(now) {
		return nil, &Failure{
			Kind:         KindDatetimeInPast,
			NowISO:       now.Format(time.RFC3339),
			RequestedISO: t.Format(time.RFC3339),
		}
	}
	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err == repository.ErrRestaurantNotFound {
		return nil, &Failure{Kind: KindRestaurantNotFound}
	}
	if err != nil {
		return nil, dbError(err)
	}
	used, err := s.reservations.ConfirmedPartySum(ctx, restaurantID, slot.FormatKey(t))
	if err != nil {
		return nil, dbError(err)
	}
	seatsLeft := rest.CapacityMax - used
	if seatsLeft < 0 {
		seatsLeft = 0
	}
	return &Availability{
		Available:   seatsLeft >= partySize,
		SeatsLeft:   seatsLeft,
		CapacityMax: rest.CapacityMax,
	}, nil
}

// BookRequest carries the inputs of a booking attempt.  RawDatetime may be
// informal ("tomorrow 7pm"); it is normalized once, here, at commit time.
type BookRequest struct {
	RestaurantID int64
	RawDatetime  string
	PartySize    int
	UserName     string
	Contact      string
	SeatingType  *string
}

// Confirmation is the success result of Book.
type Confirmation struct {
	ReservationCode string `json:"reservation_code"`
	Status          string `json:"status"`
}

// Book atomically creates a reservation if the restaurant still has room
// at the requested slot.  The read-sum-then-insert sequence runs inside a
// single transaction holding an exclusive lock on the restaurant row, so
// concurrent bookings against the same restaurant serialize and the
// capacity invariant holds: the confirmed party-size sum for any
// (restaurant, slot) never exceeds capacity_max.  A lock that cannot be
// acquired within the driver's bounded wait surfaces as db_error rather
// than blocking indefinitely.  Every failure path rolls back fully; no
// partial reservation is ever visible.
func (s *Service) Book(ctx context.Context, req BookRequest) (*Confirmation, error) {
	now := s.now().In(s.loc)

	key, diag, err := slot.Normalize(req.RawDatetime, now)
	if err != nil {
		d := diag
		return nil, &Failure{Kind: KindUnparseableDatetime, Diagnostics: &d}
	}
	// Re-validate against "now" at transaction start: time passes between
	// request and transaction, and a slot that looked fine moments earlier
	// may no longer be in the future.
	t, err := slot.ParseKey(key, s.loc)
	if err != nil {
		return nil, &Failure{Kind: KindInvalidDatetime}
	}
	if !t.After(now) {
		return nil, &Failure{
			Kind:         KindDatetimeInPast,
			NowISO:       now.Format(time.RFC3339),
			RequestedISO: t.Format(time.RFC3339),
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	capacity, err := s.restaurants.CapacityForUpdateTx(ctx, tx, req.RestaurantID)
	if err == repository.ErrRestaurantNotFound {
		return nil, &Failure{Kind: KindRestaurantNotFound}
	}
	if err != nil {
		return nil, dbError(err)
	}
	used, err := s.reservations.ConfirmedPartySumTx(ctx, tx, req.RestaurantID, key)
	if err != nil {
		return nil, dbError(err)
	}
	seatsLeft := capacity - used
	if seatsLeft < 0 {
		seatsLeft = 0
	}
	if seatsLeft < req.PartySize {
		return nil, &Failure{Kind: KindNoAvailability, SeatsLeft: seatsLeft}
	}

	rec := &repository.ReservationRecord{
		Code:         utils.NewReservationCode(),
		RestaurantID: req.RestaurantID,
		SlotKey:      key,
		PartySize:    req.PartySize,
		UserName:     req.UserName,
		Contact:      req.Contact,
		SeatingType:  req.SeatingType,
		Status:       model.StatusConfirmed,
	}
	if err := s.reservations.CreateTx(ctx, tx, rec); err != nil {
		return nil, dbError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, dbError(err)
	}
	committed = true

	if s.OnConfirmed != nil {
		s.OnConfirmed(ctx, s.confirmedEvent(ctx, rec))
	}
	return &Confirmation{ReservationCode: rec.Code, Status: model.StatusConfirmed}, nil
}

// confirmedEvent builds the broker payload for a committed reservation.
// The restaurant name lookup is best-effort; the event is still useful
// without it.
func (s *Service) confirmedEvent(ctx context.Context, rec *repository.ReservationRecord) queue.ReservationConfirmedEvent {
	ev := queue.ReservationConfirmedEvent{
		ReservationID:   rec.ID,
		ReservationCode: rec.Code,
		RestaurantID:    rec.RestaurantID,
		SlotKey:         rec.SlotKey,
		PartySize:       rec.PartySize,
		UserName:        rec.UserName,
		Contact:         rec.Contact,
		ConfirmedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rec.SeatingType != nil {
		ev.SeatingType = *rec.SeatingType
	}
	if rest, err := s.restaurants.GetByID(ctx, rec.RestaurantID); err == nil {
		ev.RestaurantName = rest.Name
	}
	return ev
}

// Cancellation is the success result of Cancel.
type Cancellation struct {
	Status          string `json:"status"`
	ReservationCode string `json:"reservation_code"`
}

// Cancel transitions a reservation to cancelled.  The transition is
// one-way: cancelling an already-cancelled reservation reports
// already_cancelled instead of silently succeeding.  Cancellation needs
// only single-row atomicity, which the conditional UPDATE in the
// repository provides; it does not enter the booking lock discipline.
func (s *Service) Cancel(ctx context.Context, code string) (*Cancellation, error) {
	err := s.reservations.CancelByCode(ctx, code)
	switch {
	case err == nil:
		return &Cancellation{Status: model.StatusCancelled, ReservationCode: code}, nil
	case err == repository.ErrReservationNotFound:
		return nil, &Failure{Kind: KindReservationNotFound}
	case err == repository.ErrAlreadyCancelled:
		return nil, &Failure{Kind: KindAlreadyCancelled}
	default:
		return nil, dbError(err)
	}
}

// ListByContact returns the contact's reservation summaries, most recent
// slot first, cancelled reservations included.
func (s *Service) ListByContact(ctx context.Context, contact string) ([]model.ReservationSummary, error) {
	items, err := s.reservations.ListByContact(ctx, contact)
	if err != nil {
		return nil, dbError(err)
	}
	return items, nil
}
