package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInstitutionRepository struct {
	BaseRepository
}

func newPgxInstitutionRepository(pool *pgxpool.Pool) portsrepo.InstitutionRepositoryFacade {
	return &PgxInstitutionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InstitutionRepositoryFacade = (*PgxInstitutionRepository)(nil)

const institutionSelect = `
SELECT
	i.institution_id, i.tenant_id, i.name, i.country, i.city, i.website, i.is_active,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by
FROM institutions i
`

func scanInstitution(row pgx.Row) (domain.Institution, error) {
	var i domain.Institution
	err := row.Scan(
		&i.InstitutionID, &i.TenantID, &i.Name, &i.Country, &i.City, &i.Website, &i.IsActive,
		&i.CreatedAt, &i.CreatedBy, &i.LastUpdatedAt, &i.LastUpdatedBy,
	)
	return i, err
}

func (r *PgxInstitutionRepository) SaveInstitution(ctx context.Context, institution domain.Institution) error {
	query := `
		INSERT INTO institutions (
			institution_id, tenant_id, name, country, city, website, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		institution.InstitutionID, institution.TenantID, institution.Name, institution.Country,
		institution.City, institution.Website, institution.IsActive,
		institution.CreatedAt, institution.CreatedBy, institution.LastUpdatedAt, institution.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "institution "+institution.Name+" already exists", "failed to save institution")
	}
	return nil
}

func (r *PgxInstitutionRepository) UpdateInstitution(ctx context.Context, institution domain.Institution) error {
	query := `
		UPDATE institutions
		SET name = $1, country = $2, city = $3, website = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $8 AND institution_id = $9;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		institution.Name, institution.Country, institution.City, institution.Website, institution.IsActive,
		institution.LastUpdatedAt, institution.LastUpdatedBy,
		institution.TenantID, institution.InstitutionID,
	)
	if err != nil {
		return mapWriteError(err, "institution "+institution.Name+" already exists", "failed to update institution")
	}
	return requireAffected(tag, "institution not found")
}

func (r *PgxInstitutionRepository) FindInstitutionByID(ctx context.Context, tenantID, institutionID string) (*domain.Institution, error) {
	i, err := scanInstitution(r.db(ctx).QueryRow(ctx, institutionSelect+`WHERE i.tenant_id = $1 AND i.institution_id = $2`, tenantID, institutionID))
	if err != nil {
		return nil, mapReadError(err, "institution not found", "failed to query institution")
	}
	return &i, nil
}

func (r *PgxInstitutionRepository) ListInstitutions(ctx context.Context, tenantID string, params portsrepo.ListParams) ([]domain.Institution, error) {
	query, args := keysetPage(institutionSelect+`WHERE i.tenant_id = $1`, "i.created_at", "i.institution_id", params, []any{tenantID})
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query institutions", err)
	}
	defer rows.Close()

	out := []domain.Institution{}
	for rows.Next() {
		i, err := scanInstitution(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan institution row", err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating institution rows", err)
	}
	return out, nil
}

// --- Courses ---

const courseSelect = `
SELECT
	c.course_id, c.institution_id, c.name, c.level, c.duration_months, c.tuition_fee, c.currency_code, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM courses c
`

func scanCourse(row pgx.Row) (domain.Course, error) {
	var c domain.Course
	err := row.Scan(
		&c.CourseID, &c.InstitutionID, &c.Name, &c.Level, &c.DurationMonths, &c.TuitionFee, &c.CurrencyCode, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxInstitutionRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	query := `
		INSERT INTO courses (
			course_id, institution_id, name, level, duration_months, tuition_fee, currency_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		course.CourseID, course.InstitutionID, course.Name, course.Level, course.DurationMonths,
		course.TuitionFee, course.CurrencyCode, course.IsActive,
		course.CreatedAt, course.CreatedBy, course.LastUpdatedAt, course.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "course "+course.Name+" already exists", "failed to save course")
	}
	return nil
}

func (r *PgxInstitutionRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	query := `
		UPDATE courses
		SET name = $1, level = $2, duration_months = $3, tuition_fee = $4, currency_code = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE institution_id = $9 AND course_id = $10;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		course.Name, course.Level, course.DurationMonths, course.TuitionFee, course.CurrencyCode, course.IsActive,
		course.LastUpdatedAt, course.LastUpdatedBy,
		course.InstitutionID, course.CourseID,
	)
	if err != nil {
		return mapWriteError(err, "course "+course.Name+" already exists", "failed to update course")
	}
	return requireAffected(tag, "course not found")
}

func (r *PgxInstitutionRepository) FindCourseByID(ctx context.Context, institutionID, courseID string) (*domain.Course, error) {
	c, err := scanCourse(r.db(ctx).QueryRow(ctx, courseSelect+`WHERE c.institution_id = $1 AND c.course_id = $2`, institutionID, courseID))
	if err != nil {
		return nil, mapReadError(err, "course not found", "failed to query course")
	}
	return &c, nil
}

func (r *PgxInstitutionRepository) ListCourses(ctx context.Context, institutionID string) ([]domain.Course, error) {
	rows, err := r.db(ctx).Query(ctx, courseSelect+`WHERE c.institution_id = $1 ORDER BY c.name, c.level`, institutionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query courses", err)
	}
	defer rows.Close()

	out := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan course row", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating course rows", err)
	}
	return out, nil
}
