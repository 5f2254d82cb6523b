package services

import (
	"context"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// UserReaderSvc defines read operations for principals
type UserReaderSvc interface {
	// GetUserByID retrieves a principal of tenantID with its roles.
	GetUserByID(ctx context.Context, tenantID, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a principal by email, case-insensitively.
	GetUserByEmail(ctx context.Context, tenantID, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for principals
type UserWriterSvc interface {
	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks email and password within a tenant.
	// Unknown emails, wrong passwords and inactive principals all yield apperrors.ErrUnauthorized.
	AuthenticateUser(ctx context.Context, tenantID, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
