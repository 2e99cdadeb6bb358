// repository/request/repo.go
package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"rentshare/model"
	"rentshare/util/database"
	"rentshare/util/page"
)

type Repo struct {
	db database.Querier
}

func New(db database.Querier) *Repo { return &Repo{db: db} }

func (r *Repo) Insert(ctx context.Context, req *model.ItemRequest) error {
	const q = `
		INSERT INTO requests (user_id, description, created)
		VALUES ($1, $2, $3)
		RETURNING id`
	return r.db.QueryRow(ctx, q, req.UserID, req.Description, req.Created).Scan(&req.ID)
}

func (r *Repo) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	const q = `
		SELECT id, user_id, description, created
		FROM requests
		WHERE id = $1`
	var req model.ItemRequest
	if err := r.db.QueryRow(ctx, q, id).Scan(&req.ID, &req.UserID, &req.Description, &req.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *Repo) ByUser(ctx context.Context, userID int64) ([]model.ItemRequest, error) {
	const q = `
		SELECT id, user_id, description, created
		FROM requests
		WHERE user_id = $1
		ORDER BY created DESC`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ByOtherUsers lists requests created by everyone except the given user.
func (r *Repo) ByOtherUsers(ctx context.Context, userID int64, p page.Page) ([]model.ItemRequest, error) {
	q := `
		SELECT id, user_id, description, created
		FROM requests
		WHERE user_id <> $1
		ORDER BY created DESC` + p.SQL()
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]model.ItemRequest, error) {
	var out []model.ItemRequest
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Description, &req.Created); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
