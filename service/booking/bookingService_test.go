// service/booking/bookingService_test.go
package bookingsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rentshare/apperr"
	"rentshare/model"
	"rentshare/util/database"
	"rentshare/util/page"
)

type txStub struct{}

func (txStub) RunInTx(ctx context.Context, fn func(q database.Querier) error) error {
	return fn(nil)
}

type repoMock struct {
	insertFn       func(ctx context.Context, q database.Querier, b *model.Booking) error
	byIDFn         func(ctx context.Context, id int64) (*model.Booking, error)
	getForUpdateFn func(ctx context.Context, q database.Querier, id int64) (*model.Booking, error)
	updateStateFn  func(ctx context.Context, q database.Querier, id int64, state model.BookingState) error
	byUserFn       func(ctx context.Context, userID int64, state *model.BookingState, p page.Page) ([]model.Booking, error)
	byOwnerFn      func(ctx context.Context, ownerID int64, state *model.BookingState, p page.Page) ([]model.Booking, error)
	overlapFn      func(ctx context.Context, q database.Querier, itemID int64, start, end time.Time) (bool, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Insert(ctx context.Context, q database.Querier, b *model.Booking) error {
	if m.insertFn == nil {
		b.ID = 1
		return nil
	}
	return m.insertFn(ctx, q, b)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *repoMock) GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Booking, error) {
	if m.getForUpdateFn == nil {
		return nil, nil
	}
	return m.getForUpdateFn(ctx, q, id)
}
func (m *repoMock) UpdateState(ctx context.Context, q database.Querier, id int64, state model.BookingState) error {
	if m.updateStateFn == nil {
		return nil
	}
	return m.updateStateFn(ctx, q, id, state)
}
func (m *repoMock) ByUser(ctx context.Context, userID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
	if m.byUserFn == nil {
		return nil, nil
	}
	return m.byUserFn(ctx, userID, state, p)
}
func (m *repoMock) ByOwner(ctx context.Context, ownerID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
	if m.byOwnerFn == nil {
		return nil, nil
	}
	return m.byOwnerFn(ctx, ownerID, state, p)
}
func (m *repoMock) HasApprovedOverlap(ctx context.Context, q database.Querier, itemID int64, start, end time.Time) (bool, error) {
	if m.overlapFn == nil {
		return false, nil
	}
	return m.overlapFn(ctx, q, itemID, start, end)
}

type itemRepoMock struct {
	getForUpdateFn func(ctx context.Context, q database.Querier, id int64) (*model.Item, error)
}

var _ ItemRepo = (*itemRepoMock)(nil)

func (m *itemRepoMock) GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Item, error) {
	if m.getForUpdateFn == nil {
		return nil, nil
	}
	return m.getForUpdateFn(ctx, q, id)
}

type userRepoMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.User, error)
}

var _ UserRepo = (*userRepoMock)(nil)

func (m *userRepoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func knownUser(ids ...int64) *userRepoMock {
	return &userRepoMock{byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
		for _, known := range ids {
			if id == known {
				return &model.User{ID: id, Name: "booker"}, nil
			}
		}
		return nil, nil
	}}
}

func availableItem(ownerID int64) *itemRepoMock {
	return &itemRepoMock{getForUpdateFn: func(ctx context.Context, q database.Querier, id int64) (*model.Item, error) {
		return &model.Item{ID: id, OwnerID: ownerID, Name: "drill", Available: true}, nil
	}}
}

func newService(bookings Repo, items ItemRepo, users UserRepo, overlapGuard bool) *service {
	s := New(txStub{}, bookings, items, users, overlapGuard).(*service)
	s.now = func() time.Time { return testNow }
	return s
}

// --- tests ---

func TestCreate_Success(t *testing.T) {
	var inserted *model.Booking
	m := &repoMock{insertFn: func(ctx context.Context, q database.Querier, b *model.Booking) error {
		b.ID = 5
		inserted = b
		return nil
	}}
	svc := newService(m, availableItem(2), knownUser(1), true)

	b, err := svc.Create(context.Background(), 1, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(5), b.ID)
	require.Equal(t, model.StateWaiting, b.State)
	require.Equal(t, "drill", b.ItemName)
	require.Equal(t, int64(2), b.ItemOwnerID)
	require.NotNil(t, inserted)
}

func TestCreate_UnknownUser(t *testing.T) {
	svc := newService(&repoMock{}, availableItem(2), knownUser(), true)

	_, err := svc.Create(context.Background(), 99, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreate_UnknownItem(t *testing.T) {
	svc := newService(&repoMock{}, &itemRepoMock{}, knownUser(1), true)

	_, err := svc.Create(context.Background(), 1, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreate_ItemUnavailable(t *testing.T) {
	items := &itemRepoMock{getForUpdateFn: func(ctx context.Context, q database.Querier, id int64) (*model.Item, error) {
		return &model.Item{ID: id, OwnerID: 2, Available: false}, nil
	}}
	svc := newService(&repoMock{}, items, knownUser(1), true)

	_, err := svc.Create(context.Background(), 1, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreate_OwnItemHidden(t *testing.T) {
	// The owner booking their own item reads as not-found, not forbidden.
	svc := newService(&repoMock{}, availableItem(1), knownUser(1), true)

	_, err := svc.Create(context.Background(), 1, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreate_BadDates(t *testing.T) {
	svc := newService(&repoMock{}, availableItem(2), knownUser(1), true)
	ctx := context.Background()

	// end before start
	_, err := svc.Create(ctx, 1, 10, testNow.Add(2*time.Hour), testNow.Add(time.Hour))
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// end in the past
	_, err = svc.Create(ctx, 1, 10, testNow.Add(-2*time.Hour), testNow.Add(-time.Hour))
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// start in the past
	_, err = svc.Create(ctx, 1, 10, testNow.Add(-time.Hour), testNow.Add(time.Hour))
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// start equals end
	at := testNow.Add(time.Hour)
	_, err = svc.Create(ctx, 1, 10, at, at)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreate_OverlapConflict(t *testing.T) {
	m := &repoMock{overlapFn: func(ctx context.Context, q database.Querier, itemID int64, start, end time.Time) (bool, error) {
		return true, nil
	}}
	svc := newService(m, availableItem(2), knownUser(1), true)

	_, err := svc.Create(context.Background(), 1, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestCreate_OverlapGuardDisabled(t *testing.T) {
	m := &repoMock{overlapFn: func(ctx context.Context, q database.Querier, itemID int64, start, end time.Time) (bool, error) {
		t.Fatal("overlap check must not run when the guard is off")
		return false, nil
	}}
	svc := newService(m, availableItem(2), knownUser(1), false)

	_, err := svc.Create(context.Background(), 1, 10, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.NoError(t, err)
}

func waitingBooking() *model.Booking {
	return &model.Booking{
		ID:          5,
		ItemID:      10,
		UserID:      1,
		Start:       testNow.Add(time.Hour),
		End:         testNow.Add(2 * time.Hour),
		State:       model.StateWaiting,
		ItemOwnerID: 2,
	}
}

func TestApprove_Success(t *testing.T) {
	var savedState model.BookingState
	m := &repoMock{
		getForUpdateFn: func(ctx context.Context, q database.Querier, id int64) (*model.Booking, error) {
			return waitingBooking(), nil
		},
		updateStateFn: func(ctx context.Context, q database.Querier, id int64, state model.BookingState) error {
			savedState = state
			return nil
		},
	}
	svc := newService(m, &itemRepoMock{}, knownUser(2), true)

	b, err := svc.Approve(context.Background(), 2, 5, true)
	require.NoError(t, err)
	require.Equal(t, model.StateApproved, b.State)
	require.Equal(t, model.StateApproved, savedState)
}

func TestApprove_Reject(t *testing.T) {
	m := &repoMock{getForUpdateFn: func(ctx context.Context, q database.Querier, id int64) (*model.Booking, error) {
		return waitingBooking(), nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(2), true)

	b, err := svc.Approve(context.Background(), 2, 5, false)
	require.NoError(t, err)
	require.Equal(t, model.StateRejected, b.State)
}

func TestApprove_NotOwnerHidden(t *testing.T) {
	m := &repoMock{getForUpdateFn: func(ctx context.Context, q database.Querier, id int64) (*model.Booking, error) {
		return waitingBooking(), nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(1, 2), true)

	_, err := svc.Approve(context.Background(), 1, 5, true)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestApprove_AlreadyDecided(t *testing.T) {
	m := &repoMock{getForUpdateFn: func(ctx context.Context, q database.Querier, id int64) (*model.Booking, error) {
		b := waitingBooking()
		b.State = model.StateApproved
		return b, nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(2), true)

	_, err := svc.Approve(context.Background(), 2, 5, false)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestApprove_Absent(t *testing.T) {
	svc := newService(&repoMock{}, &itemRepoMock{}, knownUser(2), true)

	_, err := svc.Approve(context.Background(), 2, 99, true)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGet_RenterOrOwnerOnly(t *testing.T) {
	m := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.Booking, error) {
		return waitingBooking(), nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(1, 2, 3), true)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, 5) // renter
	require.NoError(t, err)
	_, err = svc.Get(ctx, 2, 5) // owner
	require.NoError(t, err)

	_, err = svc.Get(ctx, 3, 5) // stranger
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestList_PersistedStatePushedDown(t *testing.T) {
	var gotState *model.BookingState
	var gotPage page.Page
	m := &repoMock{byUserFn: func(ctx context.Context, userID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
		gotState, gotPage = state, p
		return []model.Booking{}, nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(1), true)

	window := page.Page{Offset: 0, Limit: 10}
	_, err := svc.ListForUser(context.Background(), 1, model.StateWaiting, window)
	require.NoError(t, err)
	require.NotNil(t, gotState)
	require.Equal(t, model.StateWaiting, *gotState)
	require.Equal(t, window, gotPage)

	_, err = svc.ListForUser(context.Background(), 1, model.StateAll, window)
	require.NoError(t, err)
	require.Nil(t, gotState)
}

func TestList_DerivedStateFiltered(t *testing.T) {
	past := model.Booking{ID: 1, Start: testNow.Add(-3 * time.Hour), End: testNow.Add(-2 * time.Hour)}
	current := model.Booking{ID: 2, Start: testNow.Add(-time.Hour), End: testNow.Add(time.Hour)}
	future := model.Booking{ID: 3, Start: testNow.Add(2 * time.Hour), End: testNow.Add(3 * time.Hour)}

	var gotPage page.Page
	m := &repoMock{byOwnerFn: func(ctx context.Context, ownerID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
		gotPage = p
		return []model.Booking{future, current, past}, nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(2), true)

	got, err := svc.ListForOwner(context.Background(), 2, model.StatePast, page.Page{Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.True(t, gotPage.Unpaged)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)

	got, err = svc.ListForOwner(context.Background(), 2, model.StateCurrent, page.Unlimited)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)

	got, err = svc.ListForOwner(context.Background(), 2, model.StateFuture, page.Unlimited)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(3), got[0].ID)
}

func TestList_DerivedStateWindowed(t *testing.T) {
	// The fetch stays unpaged, but the caller's window still applies to
	// the classified result.
	var past []model.Booking
	for i := int64(1); i <= 3; i++ {
		past = append(past, model.Booking{
			ID:    i,
			Start: testNow.Add(time.Duration(-i-1) * time.Hour),
			End:   testNow.Add(time.Duration(-i) * time.Hour),
		})
	}
	m := &repoMock{byUserFn: func(ctx context.Context, userID int64, state *model.BookingState, p page.Page) ([]model.Booking, error) {
		require.True(t, p.Unpaged)
		return past, nil
	}}
	svc := newService(m, &itemRepoMock{}, knownUser(1), true)

	got, err := svc.ListForUser(context.Background(), 1, model.StatePast, page.Page{Offset: 0, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)

	got, err = svc.ListForUser(context.Background(), 1, model.StatePast, page.Page{Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(3), got[0].ID)

	got, err = svc.ListForUser(context.Background(), 1, model.StatePast, page.Page{Offset: 5, Limit: 2})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestList_UnknownUser(t *testing.T) {
	svc := newService(&repoMock{}, &itemRepoMock{}, knownUser(), true)

	_, err := svc.ListForUser(context.Background(), 99, model.StateAll, page.Unlimited)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
