package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantSelect = `
SELECT
	t.tenant_id, t.name, t.is_approved,
	COALESCE((SELECT array_agg(d.domain ORDER BY d.domain) FROM tenant_domains d WHERE d.tenant_id = t.tenant_id), '{}'),
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM tenants t
`

func (r *PgxTenantRepository) getTenant(ctx context.Context, filter string, args ...any) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.db(ctx).QueryRow(ctx, tenantSelect+filter, args...).Scan(
		&t.TenantID,
		&t.Name,
		&t.IsApproved,
		&t.Domains,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, "tenant not found", "failed to query tenant")
	}
	return &t, nil
}

func (r *PgxTenantRepository) FindTenantByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	return r.getTenant(ctx, `WHERE t.tenant_id = (SELECT tenant_id FROM tenant_domains WHERE domain = $1)`, host)
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return r.getTenant(ctx, `WHERE t.tenant_id = $1`, tenantID)
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		INSERT INTO tenants (tenant_id, name, is_approved, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		tenant.TenantID,
		tenant.Name,
		tenant.IsApproved,
		tenant.CreatedAt,
		tenant.CreatedBy,
		tenant.LastUpdatedAt,
		tenant.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "tenant "+tenant.TenantID+" already exists", "failed to save tenant")
	}

	for _, d := range tenant.Domains {
		_, err := r.db(ctx).Exec(ctx, `INSERT INTO tenant_domains (domain, tenant_id) VALUES ($1, $2);`, d, tenant.TenantID)
		if err != nil {
			return mapWriteError(err, "domain "+d+" is already bound", "failed to bind tenant domain")
		}
	}
	return nil
}

func (r *PgxTenantRepository) UpdateTenantApproval(ctx context.Context, tenantID string, approved bool, updatedBy string) error {
	query := `
		UPDATE tenants
		SET is_approved = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE tenant_id = $3;
	`
	tag, err := r.db(ctx).Exec(ctx, query, approved, updatedBy, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tenant approval", err)
	}
	return requireAffected(tag, "tenant not found")
}
