package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPipelineRepository struct {
	BaseRepository
}

func newPgxPipelineRepository(pool *pgxpool.Pool) portsrepo.PipelineRepositoryFacade {
	return &PgxPipelineRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PipelineRepositoryFacade = (*PgxPipelineRepository)(nil)

// --- Rep countries ---

const repCountrySelect = `
SELECT
	rc.rep_country_id, rc.tenant_id, rc.country_name, rc.description, rc.is_active,
	rc.created_at, rc.created_by, rc.last_updated_at, rc.last_updated_by
FROM rep_countries rc
`

func scanRepCountry(row pgx.Row) (domain.RepCountry, error) {
	var rc domain.RepCountry
	err := row.Scan(
		&rc.RepCountryID, &rc.TenantID, &rc.CountryName, &rc.Description, &rc.IsActive,
		&rc.CreatedAt, &rc.CreatedBy, &rc.LastUpdatedAt, &rc.LastUpdatedBy,
	)
	return rc, err
}

func (r *PgxPipelineRepository) SaveRepCountry(ctx context.Context, rc domain.RepCountry) error {
	query := `
		INSERT INTO rep_countries (
			rep_country_id, tenant_id, country_name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		rc.RepCountryID, rc.TenantID, rc.CountryName, rc.Description, rc.IsActive,
		rc.CreatedAt, rc.CreatedBy, rc.LastUpdatedAt, rc.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "rep country "+rc.CountryName+" already exists", "failed to save rep country")
	}
	return nil
}

func (r *PgxPipelineRepository) FindRepCountryByID(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error) {
	rc, err := scanRepCountry(r.db(ctx).QueryRow(ctx, repCountrySelect+`WHERE rc.tenant_id = $1 AND rc.rep_country_id = $2`, tenantID, repCountryID))
	if err != nil {
		return nil, mapReadError(err, "rep country not found", "failed to query rep country")
	}
	return &rc, nil
}

func (r *PgxPipelineRepository) ListRepCountries(ctx context.Context, tenantID string) ([]domain.RepCountry, error) {
	rows, err := r.db(ctx).Query(ctx, repCountrySelect+`WHERE rc.tenant_id = $1 ORDER BY rc.country_name`, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rep countries", err)
	}
	defer rows.Close()

	out := []domain.RepCountry{}
	for rows.Next() {
		rc, err := scanRepCountry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rep country row", err)
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rep country rows", err)
	}
	return out, nil
}

// --- Statuses ---

const statusSelect = `
SELECT
	s.status_id, s.rep_country_id, s.status_name, s.status_order, s.is_active, s.is_protected, s.notes,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM rep_country_statuses s
`

func scanStatus(row pgx.Row) (domain.RepCountryStatus, error) {
	var s domain.RepCountryStatus
	err := row.Scan(
		&s.StatusID, &s.RepCountryID, &s.StatusName, &s.Order, &s.IsActive, &s.IsProtected, &s.Notes,
		&s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxPipelineRepository) SaveStatus(ctx context.Context, status domain.RepCountryStatus) error {
	query := `
		INSERT INTO rep_country_statuses (
			status_id, rep_country_id, status_name, status_order, is_active, is_protected, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		status.StatusID, status.RepCountryID, status.StatusName, status.Order, status.IsActive, status.IsProtected, status.Notes,
		status.CreatedAt, status.CreatedBy, status.LastUpdatedAt, status.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "status "+status.StatusName+" already exists", "failed to save status")
	}
	return nil
}

func (r *PgxPipelineRepository) FindStatusByID(ctx context.Context, repCountryID, statusID string) (*domain.RepCountryStatus, error) {
	s, err := scanStatus(r.db(ctx).QueryRow(ctx, statusSelect+`WHERE s.rep_country_id = $1 AND s.status_id = $2`, repCountryID, statusID))
	if err != nil {
		return nil, mapReadError(err, "status not found", "failed to query status")
	}
	return &s, nil
}

func (r *PgxPipelineRepository) ListStatuses(ctx context.Context, repCountryID string) ([]domain.RepCountryStatus, error) {
	rows, err := r.db(ctx).Query(ctx, statusSelect+`WHERE s.rep_country_id = $1 ORDER BY s.status_order, s.status_name`, repCountryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query statuses", err)
	}
	defer rows.Close()

	out := []domain.RepCountryStatus{}
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status row", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating status rows", err)
	}
	return out, nil
}

func (r *PgxPipelineRepository) MaxStatusOrder(ctx context.Context, repCountryID string) (int, error) {
	var maxOrder int
	err := r.db(ctx).QueryRow(ctx, `SELECT COALESCE(MAX(status_order), 0) FROM rep_country_statuses WHERE rep_country_id = $1`, repCountryID).Scan(&maxOrder)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to read max status order", err)
	}
	return maxOrder, nil
}

func (r *PgxPipelineRepository) UpdateStatusActive(ctx context.Context, repCountryID, statusID string, isActive bool, updatedBy string) error {
	query := `
		UPDATE rep_country_statuses
		SET is_active = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE rep_country_id = $3 AND status_id = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, isActive, updatedBy, repCountryID, statusID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status active flag", err)
	}
	return requireAffected(tag, "status not found")
}

func (r *PgxPipelineRepository) UpdateStatusNotes(ctx context.Context, repCountryID, statusID string, notes *string, updatedBy string) error {
	query := `
		UPDATE rep_country_statuses
		SET notes = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE rep_country_id = $3 AND status_id = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, notes, updatedBy, repCountryID, statusID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status notes", err)
	}
	return requireAffected(tag, "status not found")
}

func (r *PgxPipelineRepository) UpdateStatusOrderByName(ctx context.Context, repCountryID, statusName string, order int, updatedBy string) (int64, error) {
	query := `
		UPDATE rep_country_statuses
		SET status_order = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE rep_country_id = $3 AND status_name = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, order, updatedBy, repCountryID, statusName)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to update status order", err)
	}
	return tag.RowsAffected(), nil
}

// --- Sub-statuses ---

const subStatusSelect = `
SELECT
	ss.sub_status_id, ss.rep_country_status_id, ss.name, ss.sub_status_order, ss.is_active, ss.description,
	ss.created_at, ss.created_by, ss.last_updated_at, ss.last_updated_by
FROM sub_statuses ss
`

func scanSubStatus(row pgx.Row) (domain.SubStatus, error) {
	var ss domain.SubStatus
	err := row.Scan(
		&ss.SubStatusID, &ss.RepCountryStatusID, &ss.Name, &ss.Order, &ss.IsActive, &ss.Description,
		&ss.CreatedAt, &ss.CreatedBy, &ss.LastUpdatedAt, &ss.LastUpdatedBy,
	)
	return ss, err
}

func (r *PgxPipelineRepository) SaveSubStatus(ctx context.Context, sub domain.SubStatus) error {
	query := `
		INSERT INTO sub_statuses (
			sub_status_id, rep_country_status_id, name, sub_status_order, is_active, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		sub.SubStatusID, sub.RepCountryStatusID, sub.Name, sub.Order, sub.IsActive, sub.Description,
		sub.CreatedAt, sub.CreatedBy, sub.LastUpdatedAt, sub.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "sub-status "+sub.SubStatusID+" already exists", "failed to save sub-status")
	}
	return nil
}

func (r *PgxPipelineRepository) FindSubStatusByID(ctx context.Context, statusID, subStatusID string) (*domain.SubStatus, error) {
	ss, err := scanSubStatus(r.db(ctx).QueryRow(ctx, subStatusSelect+`WHERE ss.rep_country_status_id = $1 AND ss.sub_status_id = $2`, statusID, subStatusID))
	if err != nil {
		return nil, mapReadError(err, "sub-status not found", "failed to query sub-status")
	}
	return &ss, nil
}

func (r *PgxPipelineRepository) ListSubStatuses(ctx context.Context, statusIDs []string) ([]domain.SubStatus, error) {
	rows, err := r.db(ctx).Query(ctx, subStatusSelect+`WHERE ss.rep_country_status_id = ANY($1::uuid[]) ORDER BY ss.rep_country_status_id, ss.sub_status_order, ss.created_at`, statusIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sub-statuses", err)
	}
	defer rows.Close()

	out := []domain.SubStatus{}
	for rows.Next() {
		ss, err := scanSubStatus(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sub-status row", err)
		}
		out = append(out, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sub-status rows", err)
	}
	return out, nil
}

func (r *PgxPipelineRepository) MaxSubStatusOrder(ctx context.Context, statusID string) (int, error) {
	var maxOrder int
	err := r.db(ctx).QueryRow(ctx, `SELECT COALESCE(MAX(sub_status_order), 0) FROM sub_statuses WHERE rep_country_status_id = $1`, statusID).Scan(&maxOrder)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to read max sub-status order", err)
	}
	return maxOrder, nil
}

func (r *PgxPipelineRepository) UpdateSubStatusName(ctx context.Context, statusID, subStatusID, name, updatedBy string) error {
	query := `
		UPDATE sub_statuses
		SET name = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE rep_country_status_id = $3 AND sub_status_id = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, name, updatedBy, statusID, subStatusID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to rename sub-status", err)
	}
	return requireAffected(tag, "sub-status not found")
}

func (r *PgxPipelineRepository) UpdateSubStatusActive(ctx context.Context, statusID, subStatusID string, isActive bool, updatedBy string) error {
	query := `
		UPDATE sub_statuses
		SET is_active = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE rep_country_status_id = $3 AND sub_status_id = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, isActive, updatedBy, statusID, subStatusID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sub-status active flag", err)
	}
	return requireAffected(tag, "sub-status not found")
}
