package repos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"adipo-server/internal/model"
)

type UsersRepo struct {
	db *pgxpool.Pool
}

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// GetAdmin looks up the admin account by username.
func (r *UsersRepo) GetAdmin(ctx context.Context, username string) (model.AdminUser, error) {
	var a model.AdminUser
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admin_users WHERE username = $1`,
		username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AdminUser{}, ErrNotFound
	}
	return a, err
}

// EnsureAdmin inserts the seeded admin row if the username is not taken.
// An existing row keeps its hash so operator password changes survive boots.
func (r *UsersRepo) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING`,
		username, passwordHash)
	return err
}

func scanUser(row interface{ Scan(dest ...any) error }) (model.User, error) {
	var (
		u     model.User
		added pgtype.Timestamptz
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &added)
	if err != nil {
		return model.User{}, err
	}
	u.DateAdded = added.Time
	return u, nil
}

func (r *UsersRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, date_added FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (r *UsersRepo) CreateUser(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, date_added`,
		name, email, passwordHash)
	u, err := scanUser(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return model.User{}, ErrDuplicateEmail
	}
	return u, err
}
