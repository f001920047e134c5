package repos

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"adipo-server/internal/model"
)

type CommentsRepo struct {
	db *pgxpool.Pool
}

const commentCols = `id, author, email, text, status, documentary_id, date_added`

func scanComment(row interface{ Scan(dest ...any) error }) (model.Comment, error) {
	var (
		c     model.Comment
		docID pgtype.Int8
		added pgtype.Timestamptz
	)
	err := row.Scan(&c.ID, &c.Author, &c.Email, &c.Text, &c.Status, &docID, &added)
	if err != nil {
		return model.Comment{}, err
	}
	c.DocumentaryID = int8Ptr(docID)
	c.DateAdded = added.Time
	return c, nil
}

// ListPage returns comments with the given status, newest-first, using the
// same keyset cursor scheme as the catalog list.
func (r *CommentsRepo) ListPage(ctx context.Context, status string, cursorAdded *time.Time, cursorID *int64, limit int32) ([]model.Comment, error) {
	added := pgtype.Timestamptz{}
	id := int64(0)
	if cursorAdded != nil && cursorID != nil {
		added = pgtype.Timestamptz{Time: *cursorAdded, Valid: true}
		id = *cursorID
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+commentCols+`
		FROM comments
		WHERE status = $1
		  AND ($2::timestamptz IS NULL OR (date_added, id) < ($2, $3))
		ORDER BY date_added DESC, id DESC
		LIMIT $4`,
		status, added, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Comment, 0, limit)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type CreateCommentParams struct {
	Author        string
	Email         string
	Text          string
	Status        string
	DocumentaryID *int64
}

func (r *CommentsRepo) Create(ctx context.Context, p CreateCommentParams) (model.Comment, error) {
	if p.Status == "" {
		p.Status = model.StatusApproved
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO comments (author, email, text, status, documentary_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+commentCols,
		p.Author, p.Email, p.Text, p.Status, int8Val(p.DocumentaryID))
	return scanComment(row)
}

func (r *CommentsRepo) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM comments)`).Scan(&exists)
	return exists, err
}
