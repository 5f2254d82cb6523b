package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// UserReader defines read operations for principals
type UserReader interface {
	// FindUserByID retrieves a principal with its roles.
	FindUserByID(ctx context.Context, tenantID, userID string) (*domain.User, error)

	// FindUserByEmail looks up a principal by email, case-insensitively.
	FindUserByEmail(ctx context.Context, tenantID, email string) (*domain.User, error)
}

// UserWriter defines write operations for principals
type UserWriter interface {
	// SaveUser inserts a principal and its role assignments.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates profile fields and the activation flag.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the credential hash.
	UpdatePassword(ctx context.Context, tenantID, userID, passwordHash, updatedBy string) error

	// UpdateRefreshToken stores the hash and expiry of the current refresh token.
	UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error
}

// UserRepositoryFacade combines all principal repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
