// repository/booking/repo.go
package bookingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"rentshare/model"
	"rentshare/util/database"
	"rentshare/util/page"
)

const bookingColumns = `
		b.id, b.item_id, b.user_id, b.start_time, b.end_time, b.state,
		i.name, i.owner_id, u.name
	FROM bookings AS b
	  JOIN items AS i ON i.id = b.item_id
	  JOIN users AS u ON u.id = b.user_id`

type Repo struct {
	db database.Querier
}

func New(db database.Querier) *Repo { return &Repo{db: db} }

func (r *Repo) Insert(ctx context.Context, q database.Querier, b *model.Booking) error {
	const query = `
		INSERT INTO bookings (item_id, user_id, start_time, end_time, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return q.QueryRow(ctx, query, b.ItemID, b.UserID, b.Start, b.End, b.State).Scan(&b.ID)
}

func (r *Repo) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	q := `SELECT` + bookingColumns + `
	WHERE b.id = $1`
	return scanBooking(r.db.QueryRow(ctx, q, id))
}

// GetForUpdate locks the booking row for the approval read-modify-write.
func (r *Repo) GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Booking, error) {
	query := `SELECT` + bookingColumns + `
	WHERE b.id = $1
	FOR UPDATE OF b`
	return scanBooking(q.QueryRow(ctx, query, id))
}

func (r *Repo) UpdateState(ctx context.Context, q database.Querier, id int64, state model.BookingState) error {
	const query = `
		UPDATE bookings
		SET state = $2
		WHERE id = $1`
	_, err := q.Exec(ctx, query, id, state)
	return err
}

// ByUser lists a renter's bookings, most recent start first. A nil state
// disables the status filter.
func (r *Repo) ByUser(ctx context.Context, userID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
	q := `SELECT` + bookingColumns + `
	WHERE b.user_id = $1
	  AND ($2::text IS NULL OR b.state = $2)
	ORDER BY b.start_time DESC` + p.SQL()
	rows, err := r.db.Query(ctx, q, userID, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *Repo) ByOwner(ctx context.Context, ownerID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
	q := `SELECT` + bookingColumns + `
	WHERE i.owner_id = $1
	  AND ($2::text IS NULL OR b.state = $2)
	ORDER BY b.start_time DESC` + p.SQL()
	rows, err := r.db.Query(ctx, q, ownerID, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// Last returns the latest approved booking of the item already finished
// at the given instant.
func (r *Repo) Last(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	q := `SELECT` + bookingColumns + `
	WHERE b.item_id = $1
	  AND b.state = 'APPROVED'
	  AND b.end_time <= $2
	ORDER BY b.end_time DESC
	LIMIT 1`
	return scanBooking(r.db.QueryRow(ctx, q, itemID, now))
}

// Next returns the earliest approved booking of the item not yet started
// at the given instant.
func (r *Repo) Next(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	q := `SELECT` + bookingColumns + `
	WHERE b.item_id = $1
	  AND b.state = 'APPROVED'
	  AND b.start_time >= $2
	ORDER BY b.start_time ASC
	LIMIT 1`
	return scanBooking(r.db.QueryRow(ctx, q, itemID, now))
}

// HasApprovedOverlap reports whether an approved booking of the item
// intersects [start, end).
func (r *Repo) HasApprovedOverlap(ctx context.Context, q database.Querier, itemID int64, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE item_id = $1
			  AND state = 'APPROVED'
			  AND start_time < $3
			  AND end_time > $2
		)`
	var exists bool
	err := q.QueryRow(ctx, query, itemID, start, end).Scan(&exists)
	return exists, err
}

// HasFinished reports whether the user has an approved booking of the item
// that ended before the given instant.
func (r *Repo) HasFinished(ctx context.Context, userID, itemID int64, now time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE item_id = $1
			  AND user_id = $2
			  AND state = 'APPROVED'
			  AND end_time < $3
		)`
	var exists bool
	err := r.db.QueryRow(ctx, q, itemID, userID, now).Scan(&exists)
	return exists, err
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	if err := row.Scan(
		&b.ID, &b.ItemID, &b.UserID, &b.Start, &b.End, &b.State,
		&b.ItemName, &b.ItemOwnerID, &b.BookerName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]model.Booking, error) {
	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.UserID, &b.Start, &b.End, &b.State,
			&b.ItemName, &b.ItemOwnerID, &b.BookerName,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
