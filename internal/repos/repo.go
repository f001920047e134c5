package repos

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository aggregates the per-entity repos over one pool.
type Repository struct {
	db *pgxpool.Pool

	Documentaries *DocumentariesRepo
	Comments      *CommentsRepo
	Users         *UsersRepo
}

func New(db *pgxpool.Pool) *Repository {
	r := &Repository{db: db}
	r.Documentaries = &DocumentariesRepo{db: db}
	r.Comments = &CommentsRepo{db: db}
	r.Users = &UsersRepo{db: db}
	return r
}
