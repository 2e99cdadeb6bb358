// repository/comment/repo.go
package commentrepo

import (
	"context"

	"rentshare/model"
	"rentshare/util/database"
)

type Repo struct {
	db database.Querier
}

func New(db database.Querier) *Repo { return &Repo{db: db} }

func (r *Repo) Insert(ctx context.Context, c *model.Comment) error {
	const q = `
		INSERT INTO comments (item_id, user_id, text, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return r.db.QueryRow(ctx, q, c.ItemID, c.UserID, c.Text, c.Created.Time).Scan(&c.ID)
}

func (r *Repo) ByItemID(ctx context.Context, itemID int64) ([]model.Comment, error) {
	const q = `
		SELECT c.id, c.item_id, c.user_id, c.text, u.name, c.created
		FROM comments AS c
		  JOIN users AS u ON u.id = c.user_id
		WHERE c.item_id = $1
		ORDER BY c.id`
	rows, err := r.db.Query(ctx, q, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.UserID, &c.Text, &c.AuthorName, &c.Created.Time); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
