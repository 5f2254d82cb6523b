package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
SELECT
	u.user_id, u.tenant_id, u.name, u.email, u.phone, u.password_hash, u.is_active,
	COALESCE((SELECT array_agg(r.role ORDER BY r.role) FROM user_roles r WHERE r.user_id = u.user_id), '{}'),
	u.refresh_token_hash, u.refresh_token_expiry_time,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM users u
`

func (r *PgxUserRepository) getUser(ctx context.Context, filter string, args ...any) (*domain.User, error) {
	var (
		u           domain.User
		roles       []string
		refreshHash *string
	)
	err := r.db(ctx).QueryRow(ctx, userSelect+filter, args...).Scan(
		&u.UserID,
		&u.TenantID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.IsActive,
		&roles,
		&refreshHash,
		&u.RefreshTokenExpiryTime,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, "user not found", "failed to query user")
	}
	u.Roles = make([]domain.Role, len(roles))
	for i, role := range roles {
		u.Roles[i] = domain.Role(role)
	}
	if refreshHash != nil {
		u.RefreshTokenHash = *refreshHash
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.tenant_id = $1 AND u.user_id = $2`, tenantID, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, tenantID, email string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.tenant_id = $1 AND lower(u.email) = lower($2)`, tenantID, email)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, tenant_id, name, email, phone, password_hash, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		user.UserID,
		user.TenantID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.IsActive,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "email "+user.Email+" already exists", "failed to save user")
	}

	for _, role := range user.Roles {
		_, err := r.db(ctx).Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2);`, user.UserID, string(role))
		if err != nil {
			return mapWriteError(err, "role already assigned", "failed to assign role")
		}
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, phone = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $7 AND user_id = $8;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.IsActive,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.TenantID,
		user.UserID,
	)
	if err != nil {
		return mapWriteError(err, "email "+user.Email+" already exists", "failed to update user")
	}
	return requireAffected(tag, "user not found")
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, tenantID, userID, passwordHash, updatedBy string) error {
	query := `
		UPDATE users
		SET password_hash = $1, refresh_token_hash = NULL, refresh_token_expiry_time = NULL,
			last_updated_at = NOW(), last_updated_by = $2
		WHERE tenant_id = $3 AND user_id = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, passwordHash, updatedBy, tenantID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update password", err)
	}
	return requireAffected(tag, "user not found")
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3;
	`
	tag, err := r.db(ctx).Exec(ctx, query, refreshTokenHash, expiry, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token", err)
	}
	return requireAffected(tag, "user not found")
}
