// model/booking.go
package model

import (
	"fmt"
	"time"
)

type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
	StateApproved BookingState = "APPROVED"
)

// StateFromString parses a state filter token from the query string.
func StateFromString(value string) (BookingState, error) {
	switch s := BookingState(value); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected, StateApproved:
		return s, nil
	default:
		return "", fmt.Errorf("Unknown state: %s", value)
	}
}

// Persisted reports whether the state is stored on a booking row,
// as opposed to the derived temporal filters.
func (s BookingState) Persisted() bool {
	switch s {
	case StateWaiting, StateRejected, StateApproved:
		return true
	}
	return false
}

// PeriodOf classifies a booking interval against the given instant.
// Computed on read, never stored.
func PeriodOf(now, start, end time.Time) BookingState {
	switch {
	case end.Before(now):
		return StatePast
	case start.After(now):
		return StateFuture
	default:
		return StateCurrent
	}
}

type Booking struct {
	ID     int64
	ItemID int64
	UserID int64
	Start  time.Time
	End    time.Time
	State  BookingState

	// Joined for responses and authorization checks.
	ItemName    string
	ItemOwnerID int64
	BookerName  string
}

// Period classifies the booking relative to now.
func (b Booking) Period(now time.Time) BookingState {
	return PeriodOf(now, b.Start, b.End)
}
