package bookingsvc

import (
	"context"
	"fmt"
	"time"

	"rentshare/apperr"
	"rentshare/model"
	"rentshare/util/database"
	"rentshare/util/page"
)

type Repo interface {
	Insert(ctx context.Context, q database.Querier, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)
	GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Booking, error)
	UpdateState(ctx context.Context, q database.Querier, id int64, state model.BookingState) error
	ByUser(ctx context.Context, userID int64, state *model.BookingState, p page.Page) ([]model.Booking, error)
	ByOwner(ctx context.Context, ownerID int64, state *model.BookingState, p page.Page) ([]model.Booking, error)
	HasApprovedOverlap(ctx context.Context, q database.Querier, itemID int64, start, end time.Time) (bool, error)
}

type ItemRepo interface {
	GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Item, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Service interface {
	// Create validates a booking request and persists it as WAITING.
	Create(ctx context.Context, userID, itemID int64, start, end time.Time) (*model.Booking, error)

	// Approve flips a WAITING booking to APPROVED or REJECTED; only the
	// item's owner may decide.
	Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.Booking, error)

	// Get returns a booking to its renter or the item's owner.
	Get(ctx context.Context, userID, bookingID int64) (*model.Booking, error)

	ListForUser(ctx context.Context, userID int64, state model.BookingState, p page.Page) ([]model.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, p page.Page) ([]model.Booking, error)
}

type service struct {
	db       database.Tx
	bookings Repo
	items    ItemRepo
	users    UserRepo

	// overlapGuard rejects bookings intersecting an approved booking of
	// the same item.
	overlapGuard bool
	now          func() time.Time
}

func New(db database.Tx, bookings Repo, items ItemRepo, users UserRepo, overlapGuard bool) Service {
	return &service{
		db:           db,
		bookings:     bookings,
		items:        items,
		users:        users,
		overlapGuard: overlapGuard,
		now:          time.Now,
	}
}

// ----- Service implementation -----

func (s *service) Create(ctx context.Context, userID, itemID int64, start, end time.Time) (*model.Booking, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userNotFound(userID)
	}

	var b *model.Booking
	err = s.db.RunInTx(ctx, func(q database.Querier) error {
		item, err := s.items.GetForUpdate(ctx, q, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperr.NotFound("item", fmt.Sprintf("item with id=%d not found", itemID))
		}
		if !item.Available {
			return apperr.Validation("available", "item is not available for booking")
		}
		// Modeled as not-found so ownership is not leaked.
		if item.OwnerID == userID {
			return apperr.NotFound("owner", "item cannot be booked by its owner")
		}

		now := s.now()
		if !end.After(start) || !end.After(now) {
			return apperr.Validation("endDate", "invalid booking end date")
		}
		if !start.After(now) || start.Equal(end) {
			return apperr.Validation("startDate", "invalid booking start date")
		}

		if s.overlapGuard {
			overlaps, err := s.bookings.HasApprovedOverlap(ctx, q, itemID, start, end)
			if err != nil {
				return err
			}
			if overlaps {
				return apperr.Conflict("dates", "booking dates overlap an approved booking")
			}
		}

		b = &model.Booking{
			ItemID:      itemID,
			UserID:      userID,
			Start:       start,
			End:         end,
			State:       model.StateWaiting,
			ItemName:    item.Name,
			ItemOwnerID: item.OwnerID,
			BookerName:  user.Name,
		}
		return s.bookings.Insert(ctx, q, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.Booking, error) {
	var b *model.Booking
	err := s.db.RunInTx(ctx, func(q database.Querier) error {
		var err error
		b, err = s.bookings.GetForUpdate(ctx, q, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return bookingNotFound(bookingID)
		}
		// Not-found rather than forbidden, so a stranger cannot tell the
		// booking exists.
		if b.ItemOwnerID != userID {
			return apperr.NotFound("ownerId", "booking is decided by the item's owner")
		}
		if b.State != model.StateWaiting {
			return apperr.Validation("state", "only a waiting booking can be decided")
		}

		state := model.StateRejected
		if approved {
			state = model.StateApproved
		}
		if err := s.bookings.UpdateState(ctx, q, bookingID, state); err != nil {
			return err
		}
		b.State = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, userID, bookingID int64) (*model.Booking, error) {
	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, bookingNotFound(bookingID)
	}
	if b.UserID != userID && b.ItemOwnerID != userID {
		return nil, apperr.NotFound("info", "booking is visible to its renter or the item's owner")
	}
	return b, nil
}

func (s *service) ListForUser(ctx context.Context, userID int64, state model.BookingState, p page.Page) ([]model.Booking, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(ctx, state, p, func(filter *model.BookingState, p page.Page) ([]model.Booking, error) {
		return s.bookings.ByUser(ctx, userID, filter, p)
	})
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, p page.Page) ([]model.Booking, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.list(ctx, state, p, func(filter *model.BookingState, p page.Page) ([]model.Booking, error) {
		return s.bookings.ByOwner(ctx, ownerID, filter, p)
	})
}

// list pushes persisted statuses down to the store; the derived temporal
// states are classified in-process because they are never stored.
func (s *service) list(
	ctx context.Context,
	state model.BookingState,
	p page.Page,
	fetch func(filter *model.BookingState, p page.Page) ([]model.Booking, error),
) ([]model.Booking, error) {
	switch {
	case state == model.StateAll:
		return fetch(nil, p)
	case state.Persisted():
		return fetch(&state, p)
	default:
		// The superset fetch stays unpaged so the classification sees
		// every booking; the caller's window applies afterwards.
		all, err := fetch(nil, page.Unlimited)
		if err != nil {
			return nil, err
		}
		now := s.now()
		filtered := make([]model.Booking, 0, len(all))
		for _, b := range all {
			if b.Period(now) == state {
				filtered = append(filtered, b)
			}
		}
		return page.Window(p, filtered), nil
	}
}

func (s *service) checkUserExists(ctx context.Context, userID int64) error {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return userNotFound(userID)
	}
	return nil
}

func userNotFound(id int64) error {
	return apperr.NotFound("user", fmt.Sprintf("user with id=%d not found", id))
}

func bookingNotFound(id int64) error {
	return apperr.NotFound("booking", fmt.Sprintf("booking with id=%d not found", id))
}
