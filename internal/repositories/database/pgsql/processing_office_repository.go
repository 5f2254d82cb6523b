package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProcessingOfficeRepository struct {
	BaseRepository
}

func newPgxProcessingOfficeRepository(pool *pgxpool.Pool) portsrepo.ProcessingOfficeRepositoryFacade {
	return &PgxProcessingOfficeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProcessingOfficeRepositoryFacade = (*PgxProcessingOfficeRepository)(nil)

const processingOfficeSelect = `
SELECT
	p.processing_office_id, p.tenant_id, p.user_id, p.name, p.email,
	p.phone, p.address, p.city, p.state, p.country, p.is_active,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM processing_offices p
`

func scanProcessingOffice(row pgx.Row) (domain.ProcessingOffice, error) {
	var p domain.ProcessingOffice
	err := row.Scan(
		&p.ProcessingOfficeID, &p.TenantID, &p.UserID, &p.Name, &p.Email,
		&p.Phone, &p.Address, &p.City, &p.State, &p.Country, &p.IsActive,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxProcessingOfficeRepository) SaveProcessingOffice(ctx context.Context, office domain.ProcessingOffice) error {
	query := `
		INSERT INTO processing_offices (
			processing_office_id, tenant_id, user_id, name, email,
			phone, address, city, state, country, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		office.ProcessingOfficeID, office.TenantID, office.UserID, office.Name, office.Email,
		office.Phone, office.Address, office.City, office.State, office.Country, office.IsActive,
		office.CreatedAt, office.CreatedBy, office.LastUpdatedAt, office.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "processing office "+office.ProcessingOfficeID+" already exists", "failed to save processing office")
	}
	return nil
}

func (r *PgxProcessingOfficeRepository) UpdateProcessingOffice(ctx context.Context, office domain.ProcessingOffice) error {
	query := `
		UPDATE processing_offices
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6, country = $7,
			is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE tenant_id = $11 AND processing_office_id = $12;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		office.Name, office.Email, office.Phone, office.Address, office.City, office.State, office.Country,
		office.IsActive, office.LastUpdatedAt, office.LastUpdatedBy,
		office.TenantID, office.ProcessingOfficeID,
	)
	if err != nil {
		return mapWriteError(err, "processing office email already exists", "failed to update processing office")
	}
	return requireAffected(tag, "processing office not found")
}

func (r *PgxProcessingOfficeRepository) FindProcessingOfficeByID(ctx context.Context, tenantID, officeID string) (*domain.ProcessingOffice, error) {
	p, err := scanProcessingOffice(r.db(ctx).QueryRow(ctx, processingOfficeSelect+`WHERE p.tenant_id = $1 AND p.processing_office_id = $2`, tenantID, officeID))
	if err != nil {
		return nil, mapReadError(err, "processing office not found", "failed to query processing office")
	}
	return &p, nil
}

func (r *PgxProcessingOfficeRepository) ListProcessingOffices(ctx context.Context, tenantID string, params portsrepo.ListParams) ([]domain.ProcessingOffice, error) {
	query, args := keysetPage(processingOfficeSelect+`WHERE p.tenant_id = $1`, "p.created_at", "p.processing_office_id", params, []any{tenantID})
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query processing offices", err)
	}
	defer rows.Close()

	offices := []domain.ProcessingOffice{}
	for rows.Next() {
		p, err := scanProcessingOffice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan processing office row", err)
		}
		offices = append(offices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating processing office rows", err)
	}
	return offices, nil
}
