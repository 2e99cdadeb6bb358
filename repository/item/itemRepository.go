// repository/item/repo.go
package itemrepo

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

func (r *Repo) Insert(ctx context.Context, it *model.Item) error {
	const q = `
		INSERT INTO items (owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return r.db.QueryRow(ctx, q, it.OwnerID, it.Name, it.Description, it.Available, it.RequestID).Scan(&it.ID)
}

func (r *Repo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE id = $1`
	return scanItem(r.db.QueryRow(ctx, q, id))
}

// GetForUpdate locks the item row; used by the booking and patch
// transactions so concurrent writers serialize on the item.
func (r *Repo) GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Item, error) {
	const query = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE id = $1
		FOR UPDATE`
	return scanItem(q.QueryRow(ctx, query, id))
}

func (r *Repo) Update(ctx context.Context, q database.Querier, it model.Item) error {
	const query = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`
	_, err := q.Exec(ctx, query, it.ID, it.Name, it.Description, it.Available)
	return err
}

func (r *Repo) ByOwner(ctx context.Context, ownerID int64, p page.Page) ([]model.Item, error) {
	q := `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id` + p.SQL()
	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

// Search matches available items by case-insensitive substring over
// name or description. The caller lowercases and LIKE-escapes the text.
func (r *Repo) Search(ctx context.Context, text string, p page.Page) ([]model.Item, error) {
	q := `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE available = true
		  AND (lower(name) LIKE '%' || $1 || '%' ESCAPE '\'
		    OR lower(description) LIKE '%' || $1 || '%' ESCAPE '\')
		ORDER BY id` + p.SQL()
	rows, err := r.db.Query(ctx, q, text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *Repo) ByRequestID(ctx context.Context, requestID int64) ([]model.Item, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE request_id = $1
		ORDER BY id`
	rows, err := r.db.Query(ctx, q, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func scanItem(row pgx.Row) (*model.Item, error) {
	var it model.Item
	if err := row.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]model.Item, error) {
	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
