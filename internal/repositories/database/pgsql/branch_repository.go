package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBranchRepository struct {
	BaseRepository
}

func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchSelect = `
SELECT
	b.branch_id, b.tenant_id, b.user_id, b.name, b.email,
	b.phone, b.address, b.city, b.state, b.country, b.is_active,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM branches b
`

func scanBranch(row pgx.Row) (domain.Branch, error) {
	var b domain.Branch
	err := row.Scan(
		&b.BranchID, &b.TenantID, &b.UserID, &b.Name, &b.Email,
		&b.Phone, &b.Address, &b.City, &b.State, &b.Country, &b.IsActive,
		&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	return b, err
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		INSERT INTO branches (
			branch_id, tenant_id, user_id, name, email,
			phone, address, city, state, country, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		branch.BranchID, branch.TenantID, branch.UserID, branch.Name, branch.Email,
		branch.Phone, branch.Address, branch.City, branch.State, branch.Country, branch.IsActive,
		branch.CreatedAt, branch.CreatedBy, branch.LastUpdatedAt, branch.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "branch "+branch.BranchID+" already exists", "failed to save branch")
	}
	return nil
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		UPDATE branches
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6, country = $7,
			is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE tenant_id = $11 AND branch_id = $12;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		branch.Name, branch.Email, branch.Phone, branch.Address, branch.City, branch.State, branch.Country,
		branch.IsActive, branch.LastUpdatedAt, branch.LastUpdatedBy,
		branch.TenantID, branch.BranchID,
	)
	if err != nil {
		return mapWriteError(err, "branch email already exists", "failed to update branch")
	}
	return requireAffected(tag, "branch not found")
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, tenantID, branchID string) (*domain.Branch, error) {
	b, err := scanBranch(r.db(ctx).QueryRow(ctx, branchSelect+`WHERE b.tenant_id = $1 AND b.branch_id = $2`, tenantID, branchID))
	if err != nil {
		return nil, mapReadError(err, "branch not found", "failed to query branch")
	}
	return &b, nil
}

func (r *PgxBranchRepository) FindBranchByUserID(ctx context.Context, tenantID, userID string) (*domain.Branch, error) {
	b, err := scanBranch(r.db(ctx).QueryRow(ctx, branchSelect+`WHERE b.tenant_id = $1 AND b.user_id = $2`, tenantID, userID))
	if err != nil {
		return nil, mapReadError(err, "branch not found", "failed to query branch")
	}
	return &b, nil
}

func (r *PgxBranchRepository) ListBranches(ctx context.Context, tenantID string, params portsrepo.ListParams) ([]domain.Branch, error) {
	query, args := keysetPage(branchSelect+`WHERE b.tenant_id = $1`, "b.created_at", "b.branch_id", params, []any{tenantID})
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query branches", err)
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan branch row", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating branch rows", err)
	}
	return branches, nil
}
