package routes

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"adipo-server/internal/model"
	"adipo-server/internal/repos"
	"adipo-server/pkg/auth"
	"adipo-server/pkg/cache"
	"adipo-server/pkg/signer"
	"adipo-server/pkg/uploads"
)

// Store interfaces are deliberately narrow so handlers can be exercised
// with fakes; *repos.Repository satisfies all of them.

type DocumentaryStore interface {
	ListPage(ctx context.Context, cursorAdded *time.Time, cursorID *int64, limit int32) ([]model.Documentary, error)
	Create(ctx context.Context, p repos.CreateDocumentaryParams) (model.Documentary, error)
	Delete(ctx context.Context, id int64) error
	IncrementDownloads(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type CommentStore interface {
	ListPage(ctx context.Context, status string, cursorAdded *time.Time, cursorID *int64, limit int32) ([]model.Comment, error)
	Create(ctx context.Context, p repos.CreateCommentParams) (model.Comment, error)
}

type UserStore interface {
	GetAdmin(ctx context.Context, username string) (model.AdminUser, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (model.User, error)
}

// Deps holds the dependencies required by the route handlers.
type Deps struct {
	Documentaries DocumentaryStore
	Comments      CommentStore
	Users         UserStore
	Cache         cache.Cache
	Cursors       signer.Codec
	Tokens        *auth.Tokens
	Uploads       *uploads.Store
	MaxUploadSize int64
	Env           string
	StartedAt     time.Time
}

// validate checks request DTO struct tags.
var validate = validator.New()
