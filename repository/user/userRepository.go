// repository/user/repo.go
package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"rentshare/model"
	"rentshare/util/database"
)

type Repo struct {
	db database.Querier
}

func New(db database.Querier) *Repo { return &Repo{db: db} }

func (r *Repo) Insert(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id`
	return r.db.QueryRow(ctx, q, u.Name, u.Email).Scan(&u.ID)
}

func (r *Repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, name, email
		FROM users
		WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

// GetForUpdate locks the row for a read-modify-write inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, q database.Querier, id int64) (*model.User, error) {
	const query = `
		SELECT id, name, email
		FROM users
		WHERE id = $1
		FOR UPDATE`
	return scanUser(q.QueryRow(ctx, query, id))
}

func (r *Repo) Update(ctx context.Context, q database.Querier, u model.User) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1`
	_, err := q.Exec(ctx, query, u.ID, u.Name, u.Email)
	return err
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM users WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) All(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT id, name, email
		FROM users
		ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
