package itemsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentshare/apperr"
	"rentshare/model"
	"rentshare/util/database"
	"rentshare/util/page"
)

type Repo interface {
	Insert(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Item, error)
	Update(ctx context.Context, q database.Querier, it model.Item) error
	ByOwner(ctx context.Context, ownerID int64, p page.Page) ([]model.Item, error)
	Search(ctx context.Context, text string, p page.Page) ([]model.Item, error)
}

// BookingReader is the slice of the booking store the assembler needs.
type BookingReader interface {
	Last(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	Next(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	HasFinished(ctx context.Context, userID, itemID int64, now time.Time) (bool, error)
}

type CommentRepo interface {
	Insert(ctx context.Context, c *model.Comment) error
	ByItemID(ctx context.Context, itemID int64) ([]model.Comment, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Service interface {
	Add(ctx context.Context, ownerID int64, it model.Item) (*model.Item, error)
	Update(ctx context.Context, ownerID, itemID int64, p model.ItemPatch) (*model.Item, error)

	// Get assembles the item view: comments for everyone, last/next
	// booking info for the owner only.
	Get(ctx context.Context, itemID, userID int64) (*model.ItemView, error)

	OwnerItems(ctx context.Context, ownerID int64, p page.Page) ([]model.ItemView, error)
	Search(ctx context.Context, text string, p page.Page) ([]model.Item, error)

	// AddComment accepts a comment only from a user whose approved booking
	// of the item has already finished.
	AddComment(ctx context.Context, userID, itemID int64, text string) (*model.Comment, error)
}

type service struct {
	db       database.Tx
	items    Repo
	bookings BookingReader
	comments CommentRepo
	users    UserRepo
	now      func() time.Time
}

func New(db database.Tx, items Repo, bookings BookingReader, comments CommentRepo, users UserRepo) Service {
	return &service{
		db:       db,
		items:    items,
		bookings: bookings,
		comments: comments,
		users:    users,
		now:      time.Now,
	}
}

func (s *service) Add(ctx context.Context, ownerID int64, it model.Item) (*model.Item, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	it.OwnerID = ownerID
	if err := s.items.Insert(ctx, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID int64, p model.ItemPatch) (*model.Item, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := checkNotBlank(p.Name, "name"); err != nil {
		return nil, err
	}
	if err := checkNotBlank(p.Description, "description"); err != nil {
		return nil, err
	}

	var merged model.Item
	err := s.db.RunInTx(ctx, func(q database.Querier) error {
		old, err := s.items.GetForUpdate(ctx, q, itemID)
		if err != nil {
			return err
		}
		// Absent and not-owned look the same from outside.
		if old == nil || old.OwnerID != ownerID {
			return itemNotFound(itemID)
		}
		merged = model.PatchItem(*old, p)
		return s.items.Update(ctx, q, merged)
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *service) Get(ctx context.Context, itemID, userID int64) (*model.ItemView, error) {
	it, err := s.items.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, itemNotFound(itemID)
	}
	return s.assembleView(ctx, *it, userID)
}

func (s *service) OwnerItems(ctx context.Context, ownerID int64, p page.Page) ([]model.ItemView, error) {
	items, err := s.items.ByOwner(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}
	views := make([]model.ItemView, 0, len(items))
	for _, it := range items {
		view, err := s.assembleView(ctx, it, ownerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied search text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *service) Search(ctx context.Context, text string, p page.Page) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	items, err := s.items.Search(ctx, likeEscaper.Replace(strings.ToLower(text)), p)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *service) AddComment(ctx context.Context, userID, itemID int64, text string) (*model.Comment, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user", fmt.Sprintf("user with id=%d not found", userID))
	}
	it, err := s.items.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, itemNotFound(itemID)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("text", "comment text must not be blank")
	}

	now := s.now()
	finished, err := s.bookings.HasFinished(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, apperr.Validation("error", "comments are accepted only from users who rented the item")
	}

	c := &model.Comment{
		ItemID:     itemID,
		UserID:     userID,
		Text:       text,
		AuthorName: user.Name,
		Created:    model.NewLocalTime(now),
	}
	if err := s.comments.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// assembleView attaches comments and, when the viewer owns the item, the
// last finished and next upcoming approved bookings. Last/next stays empty
// for everyone else: it is an owner-only affordance.
func (s *service) assembleView(ctx context.Context, it model.Item, userID int64) (*model.ItemView, error) {
	comments, err := s.comments.ByItemID(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	view := &model.ItemView{Item: it, Comments: comments}

	if it.OwnerID != userID {
		return view, nil
	}

	now := s.now()
	last, err := s.bookings.Last(ctx, it.ID, now)
	if err != nil {
		return nil, err
	}
	next, err := s.bookings.Next(ctx, it.ID, now)
	if err != nil {
		return nil, err
	}
	view.LastBooking = bookingInfo(last)
	view.NextBooking = bookingInfo(next)
	return view, nil
}

func bookingInfo(b *model.Booking) *model.BookingInfo {
	if b == nil {
		return nil
	}
	return &model.BookingInfo{ID: b.ID, BookerID: b.UserID}
}

func (s *service) checkUserExists(ctx context.Context, userID int64) error {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("user", fmt.Sprintf("user with id=%d not found", userID))
	}
	return nil
}

func checkNotBlank(value *string, field string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return apperr.Validation(field, field+" must not be blank")
	}
	return nil
}

func itemNotFound(id int64) error {
	return apperr.NotFound("item", fmt.Sprintf("item with id=%d not found", id))
}
