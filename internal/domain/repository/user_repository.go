package repository

import (
	"context"

	"github.com/oksasatya/party-planner/internal/domain/entity"
)

// UserRepository defines durable storage and lookup of credential records.
// Every call round-trips to the store; there is no caching layer.
type UserRepository interface {
	// Create persists a new user. The caller supplies an already-hashed
	// password and a freshly generated access token; the store assigns
	// the id and enforces email uniqueness (ErrDuplicateEmail).
	Create(ctx context.Context, email, passwordHash, accessToken string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id, newHash string) error
	DeleteByID(ctx context.Context, id string) error
}
