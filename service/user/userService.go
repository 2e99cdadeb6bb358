package usersvc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"rentshare/apperr"
	"rentshare/model"
	"rentshare/util/database"
)

// RFC 5322-ish, enough to reject obviously malformed addresses.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9_!#$%&'*+/=?`{|}~^.-]+@[a-zA-Z0-9.-]+$")

type Repo interface {
	Insert(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.User, error)
	Update(ctx context.Context, q database.Querier, u model.User) error
	Delete(ctx context.Context, id int64) (bool, error)
	All(ctx context.Context) ([]model.User, error)
}

type Service interface {
	Create(ctx context.Context, name, email string) (*model.User, error)
	Update(ctx context.Context, id int64, p model.UserPatch) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]model.User, error)
}

type service struct {
	db database.Tx
	r  Repo
}

func New(db database.Tx, r Repo) Service { return &service{db: db, r: r} }

func (s *service) Create(ctx context.Context, name, email string) (*model.User, error) {
	u := &model.User{Name: name, Email: email}
	if err := s.r.Insert(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return u, nil
}

// Update applies a partial patch: nil fields stay unchanged, blank values
// are rejected.
func (s *service) Update(ctx context.Context, id int64, p model.UserPatch) (*model.User, error) {
	if err := checkNotBlank(p.Name, "name"); err != nil {
		return nil, err
	}
	if err := checkNotBlank(p.Email, "email"); err != nil {
		return nil, err
	}
	if p.Email != nil && !emailPattern.MatchString(*p.Email) {
		return nil, apperr.Validation("email", "invalid email address")
	}

	var merged model.User
	err := s.db.RunInTx(ctx, func(q database.Querier) error {
		old, err := s.r.GetForUpdate(ctx, q, id)
		if err != nil {
			return err
		}
		if old == nil {
			return userNotFound(id)
		}
		merged = model.PatchUser(*old, p)
		return s.r.Update(ctx, q, merged)
	})
	if err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return &merged, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, userNotFound(id)
	}
	return u, nil
}

// Delete is idempotent: removing an absent user is not an error.
func (s *service) Delete(ctx context.Context, id int64) error {
	_, err := s.r.Delete(ctx, id)
	return err
}

func (s *service) All(ctx context.Context) ([]model.User, error) {
	return s.r.All(ctx)
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict("email", "user with this email already exists")
	}
	return nil
}

func checkNotBlank(value *string, field string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return apperr.Validation(field, field+" must not be blank")
	}
	return nil
}

func userNotFound(id int64) error {
	return apperr.NotFound("user", fmt.Sprintf("user with id=%d not found", id))
}
