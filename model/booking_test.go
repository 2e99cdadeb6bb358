// model/booking_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStateFromString(t *testing.T) {
	for _, value := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED", "APPROVED"} {
		s, err := StateFromString(value)
		require.NoError(t, err)
		require.Equal(t, BookingState(value), s)
	}

	_, err := StateFromString("UNSUPPORTED_STATUS")
	require.Error(t, err)
	require.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())

	_, err = StateFromString("waiting")
	require.Error(t, err)
}

func TestPersisted(t *testing.T) {
	require.True(t, StateWaiting.Persisted())
	require.True(t, StateRejected.Persisted())
	require.True(t, StateApproved.Persisted())

	require.False(t, StateAll.Persisted())
	require.False(t, StateCurrent.Persisted())
	require.False(t, StatePast.Persisted())
	require.False(t, StateFuture.Persisted())
}

func TestPeriodOf(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	past := PeriodOf(now, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.Equal(t, StatePast, past)

	future := PeriodOf(now, now.Add(time.Hour), now.Add(2*time.Hour))
	require.Equal(t, StateFuture, future)

	current := PeriodOf(now, now.Add(-time.Hour), now.Add(time.Hour))
	require.Equal(t, StateCurrent, current)

	// Boundary instants count as current.
	require.Equal(t, StateCurrent, PeriodOf(now, now, now.Add(time.Hour)))
	require.Equal(t, StateCurrent, PeriodOf(now, now.Add(-time.Hour), now))
}

func TestPeriodPartition(t *testing.T) {
	// Every booking falls into exactly one derived state.
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	for hours := -48; hours <= 48; hours += 7 {
		start := now.Add(time.Duration(hours) * time.Hour)
		b := Booking{Start: start, End: start.Add(3 * time.Hour)}
		got := b.Period(now)
		require.Contains(t, []BookingState{StatePast, StateCurrent, StateFuture}, got)
	}
}
