package requestsvc

import (
	"context"
	"fmt"
	"time"

	"rentshare/apperr"
	"rentshare/model"
	"rentshare/util/page"
)

type Repo interface {
	Insert(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByUser(ctx context.Context, userID int64) ([]model.ItemRequest, error)
	ByOtherUsers(ctx context.Context, userID int64, p page.Page) ([]model.ItemRequest, error)
}

type ItemReader interface {
	ByRequestID(ctx context.Context, requestID int64) ([]model.Item, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Service interface {
	Add(ctx context.Context, userID int64, description string) (*model.RequestView, error)

	// Own lists the caller's requests, newest first, each with the items
	// answering it.
	Own(ctx context.Context, userID int64) ([]model.RequestView, error)

	// All lists other users' requests, newest first.
	All(ctx context.Context, userID int64, p page.Page) ([]model.RequestView, error)

	Get(ctx context.Context, userID, requestID int64) (*model.RequestView, error)
}

type service struct {
	requests Repo
	items    ItemReader
	users    UserRepo
	now      func() time.Time
}

func New(requests Repo, items ItemReader, users UserRepo) Service {
	return &service{requests: requests, items: items, users: users, now: time.Now}
}

func (s *service) Add(ctx context.Context, userID int64, description string) (*model.RequestView, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	req := &model.ItemRequest{UserID: userID, Description: description, Created: s.now()}
	if err := s.requests.Insert(ctx, req); err != nil {
		return nil, err
	}
	return &model.RequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     model.NewLocalTime(req.Created),
		Items:       []model.Item{},
	}, nil
}

func (s *service) Own(ctx context.Context, userID int64) ([]model.RequestView, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requests.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, requests)
}

func (s *service) All(ctx context.Context, userID int64, p page.Page) ([]model.RequestView, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requests.ByOtherUsers(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, requests)
}

func (s *service) Get(ctx context.Context, userID, requestID int64) (*model.RequestView, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.requests.ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.NotFound("itemRequest", fmt.Sprintf("item request with id=%d not found", requestID))
	}
	view, err := s.view(ctx, *req)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) withAnswers(ctx context.Context, requests []model.ItemRequest) ([]model.RequestView, error) {
	views := make([]model.RequestView, 0, len(requests))
	for _, req := range requests {
		view, err := s.view(ctx, req)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *service) view(ctx context.Context, req model.ItemRequest) (*model.RequestView, error) {
	items, err := s.items.ByRequestID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return &model.RequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     model.NewLocalTime(req.Created),
		Items:       items,
	}, nil
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
