package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssociateRepository struct {
	BaseRepository
}

func newPgxAssociateRepository(pool *pgxpool.Pool) portsrepo.AssociateRepositoryFacade {
	return &PgxAssociateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssociateRepositoryFacade = (*PgxAssociateRepository)(nil)

const associateSelect = `
SELECT
	a.associate_id, a.tenant_id, a.branch_id, a.user_id, a.name, a.email,
	a.phone, a.address, a.city, a.state, a.country, a.is_active,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM associates a
`

func scanAssociate(row pgx.Row) (domain.Associate, error) {
	var a domain.Associate
	err := row.Scan(
		&a.AssociateID, &a.TenantID, &a.BranchID, &a.UserID, &a.Name, &a.Email,
		&a.Phone, &a.Address, &a.City, &a.State, &a.Country, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	return a, err
}

func (r *PgxAssociateRepository) SaveAssociate(ctx context.Context, associate domain.Associate) error {
	query := `
		INSERT INTO associates (
			associate_id, tenant_id, branch_id, user_id, name, email,
			phone, address, city, state, country, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		associate.AssociateID, associate.TenantID, associate.BranchID, associate.UserID, associate.Name, associate.Email,
		associate.Phone, associate.Address, associate.City, associate.State, associate.Country, associate.IsActive,
		associate.CreatedAt, associate.CreatedBy, associate.LastUpdatedAt, associate.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "associate "+associate.AssociateID+" already exists", "failed to save associate")
	}
	return nil
}

func (r *PgxAssociateRepository) UpdateAssociate(ctx context.Context, associate domain.Associate) error {
	query := `
		UPDATE associates
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6, country = $7,
			is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE tenant_id = $11 AND associate_id = $12;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		associate.Name, associate.Email, associate.Phone, associate.Address, associate.City, associate.State, associate.Country,
		associate.IsActive, associate.LastUpdatedAt, associate.LastUpdatedBy,
		associate.TenantID, associate.AssociateID,
	)
	if err != nil {
		return mapWriteError(err, "associate email already exists", "failed to update associate")
	}
	return requireAffected(tag, "associate not found")
}

func (r *PgxAssociateRepository) FindAssociateByID(ctx context.Context, tenantID, associateID string) (*domain.Associate, error) {
	a, err := scanAssociate(r.db(ctx).QueryRow(ctx, associateSelect+`WHERE a.tenant_id = $1 AND a.associate_id = $2`, tenantID, associateID))
	if err != nil {
		return nil, mapReadError(err, "associate not found", "failed to query associate")
	}
	return &a, nil
}

func (r *PgxAssociateRepository) ListAssociatesByBranch(ctx context.Context, tenantID, branchID string, params portsrepo.ListParams) ([]domain.Associate, error) {
	query, args := keysetPage(associateSelect+`WHERE a.tenant_id = $1 AND a.branch_id = $2`, "a.created_at", "a.associate_id", params, []any{tenantID, branchID})
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query associates", err)
	}
	defer rows.Close()

	associates := []domain.Associate{}
	for rows.Next() {
		a, err := scanAssociate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan associate row", err)
		}
		associates = append(associates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating associate rows", err)
	}
	return associates, nil
}
