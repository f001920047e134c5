package repos

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"adipo-server/internal/model"
)

type DocumentariesRepo struct {
	db *pgxpool.Pool
}

const documentaryCols = `id, title, description, category, image_url, video_url, pdf_url, rating, downloads, duration, date_added`

func scanDocumentary(row interface{ Scan(dest ...any) error }) (model.Documentary, error) {
	var (
		d        model.Documentary
		video    pgtype.Text
		pdf      pgtype.Text
		duration pgtype.Text
		added    pgtype.Timestamptz
	)
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Category, &d.ImageURL,
		&video, &pdf, &d.Rating, &d.Downloads, &duration, &added)
	if err != nil {
		return model.Documentary{}, err
	}
	d.VideoURL = textPtr(video)
	d.PDFURL = textPtr(pdf)
	d.Duration = textPtr(duration)
	d.DateAdded = added.Time
	return d, nil
}

// ListPage returns documentaries newest-first. A nil cursor starts from the
// top; otherwise rows strictly after (cursorAdded, cursorID) in sort order.
func (r *DocumentariesRepo) ListPage(ctx context.Context, cursorAdded *time.Time, cursorID *int64, limit int32) ([]model.Documentary, error) {
	added := pgtype.Timestamptz{}
	id := int64(0)
	if cursorAdded != nil && cursorID != nil {
		added = pgtype.Timestamptz{Time: *cursorAdded, Valid: true}
		id = *cursorID
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+documentaryCols+`
		FROM documentaries
		WHERE $1::timestamptz IS NULL OR (date_added, id) < ($1, $2)
		ORDER BY date_added DESC, id DESC
		LIMIT $3`,
		added, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Documentary, 0, limit)
	for rows.Next() {
		d, err := scanDocumentary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateParams carries the caller-supplied fields; the store assigns the
// rest (id, downloads, date_added, default rating).
type CreateDocumentaryParams struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
	VideoURL    *string
	PDFURL      *string
	Rating      *float64
	Duration    *string
}

func (r *DocumentariesRepo) Create(ctx context.Context, p CreateDocumentaryParams) (model.Documentary, error) {
	rating := 4.0
	if p.Rating != nil {
		rating = *p.Rating
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO documentaries (title, description, category, image_url, video_url, pdf_url, rating, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+documentaryCols,
		p.Title, p.Description, p.Category, p.ImageURL,
		textVal(p.VideoURL), textVal(p.PDFURL), rating, textVal(p.Duration))
	return scanDocumentary(row)
}

// Delete removes a documentary. Missing ids are a no-op; delete is
// idempotent by contract so retries stay cheap.
func (r *DocumentariesRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM documentaries WHERE id = $1`, id)
	return err
}

// IncrementDownloads bumps the counter in a single UPDATE so concurrent
// increments on the same row never lose updates. Missing ids are a no-op.
func (r *DocumentariesRepo) IncrementDownloads(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE documentaries SET downloads = downloads + 1 WHERE id = $1`, id)
	return err
}

func (r *DocumentariesRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM documentaries`).Scan(&n)
	return n, err
}

func (r *DocumentariesRepo) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM documentaries)`).Scan(&exists)
	return exists, err
}
