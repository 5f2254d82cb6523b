package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type institutionService struct {
	BaseService
	institutionRepo portsrepo.InstitutionRepositoryFacade
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(institutionRepo portsrepo.InstitutionRepositoryFacade) portssvc.InstitutionSvcFacade {
	return &institutionService{institutionRepo: institutionRepo}
}

var _ portssvc.InstitutionSvcFacade = (*institutionService)(nil)

func (s *institutionService) CreateInstitution(ctx context.Context, tenantID, actorID string, req dto.CreateInstitutionRequest) (*domain.Institution, error) {
	institution := domain.Institution{
		InstitutionID: uuid.NewString(),
		TenantID:      tenantID,
		Name:          strings.TrimSpace(req.Name),
		Country:       strings.TrimSpace(req.Country),
		City:          req.City,
		Website:       req.Website,
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(actorID, now()),
	}
	if err := s.institutionRepo.SaveInstitution(ctx, institution); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("name", "An institution with this name already exists in this country.")
		}
		s.LogError(ctx, err, "Failed to create institution", slog.Any("payload", req))
		return nil, wrapUnexpected(err, "failed to create institution")
	}
	return &institution, nil
}

func (s *institutionService) UpdateInstitution(ctx context.Context, tenantID, actorID, institutionID string, req dto.UpdateInstitutionRequest) (*domain.Institution, error) {
	institution, err := s.GetInstitution(ctx, tenantID, institutionID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil && strings.TrimSpace(*req.Name) != institution.Name {
		institution.Name = strings.TrimSpace(*req.Name)
		changed = true
	}
	if req.Country != nil && strings.TrimSpace(*req.Country) != institution.Country {
		institution.Country = strings.TrimSpace(*req.Country)
		changed = true
	}
	if req.City != nil {
		institution.City = req.City
		changed = true
	}
	if req.Website != nil {
		institution.Website = req.Website
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != institution.IsActive {
		institution.IsActive = *req.IsActive
		changed = true
	}
	if !changed {
		return institution, nil
	}

	institution.Touch(actorID, now())
	if err := s.institutionRepo.UpdateInstitution(ctx, *institution); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("name", "An institution with this name already exists in this country.")
		}
		s.LogError(ctx, err, "Failed to update institution", slog.String("institution_id", institutionID))
		return nil, wrapUnexpected(err, "failed to update institution")
	}
	return institution, nil
}

func (s *institutionService) GetInstitution(ctx context.Context, tenantID, institutionID string) (*domain.Institution, error) {
	institution, err := s.institutionRepo.FindInstitutionByID(ctx, tenantID, institutionID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get institution")
	}
	return institution, nil
}

func (s *institutionService) ListInstitutions(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.Institution], error) {
	repoParams, err := toRepoListParams(params)
	if err != nil {
		return dto.Page[domain.Institution]{}, err
	}
	institutions, err := s.institutionRepo.ListInstitutions(ctx, tenantID, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list institutions")
		return dto.Page[domain.Institution]{}, wrapUnexpected(err, "failed to list institutions")
	}
	return dto.Page[domain.Institution]{
		Items: institutions,
		NextToken: pagination.NextToken(institutions, repoParams.Limit, func(i domain.Institution) (time.Time, string) {
			return i.CreatedAt, i.InstitutionID
		}),
	}, nil
}

func (s *institutionService) CreateCourse(ctx context.Context, tenantID, actorID, institutionID string, req dto.CreateCourseRequest) (*domain.Course, error) {
	if _, err := s.GetInstitution(ctx, tenantID, institutionID); err != nil {
		return nil, err
	}
	if err := validateTuitionFee(req.TuitionFee); err != nil {
		return nil, err
	}

	course := domain.Course{
		CourseID:       uuid.NewString(),
		InstitutionID:  institutionID,
		Name:           strings.TrimSpace(req.Name),
		Level:          req.Level,
		DurationMonths: req.DurationMonths,
		TuitionFee:     req.TuitionFee,
		CurrencyCode:   strings.ToUpper(req.CurrencyCode),
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(actorID, now()),
	}
	if err := s.institutionRepo.SaveCourse(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("name", "This institution already offers a course with this name and level.")
		}
		s.LogError(ctx, err, "Failed to create course", slog.String("institution_id", institutionID), slog.Any("payload", req))
		return nil, wrapUnexpected(err, "failed to create course")
	}
	return &course, nil
}

func (s *institutionService) UpdateCourse(ctx context.Context, tenantID, actorID, institutionID, courseID string, req dto.UpdateCourseRequest) (*domain.Course, error) {
	if _, err := s.GetInstitution(ctx, tenantID, institutionID); err != nil {
		return nil, err
	}
	course, err := s.institutionRepo.FindCourseByID(ctx, institutionID, courseID)
	if err != nil {
		return nil, wrapUnexpected(err, "failed to get course")
	}

	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.DurationMonths != nil {
		course.DurationMonths = *req.DurationMonths
	}
	if req.TuitionFee != nil {
		if err := validateTuitionFee(*req.TuitionFee); err != nil {
			return nil, err
		}
		course.TuitionFee = *req.TuitionFee
	}
	if req.CurrencyCode != nil {
		course.CurrencyCode = strings.ToUpper(*req.CurrencyCode)
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	course.Touch(actorID, now())

	if err := s.institutionRepo.UpdateCourse(ctx, *course); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("name", "This institution already offers a course with this name and level.")
		}
		s.LogError(ctx, err, "Failed to update course", slog.String("course_id", courseID))
		return nil, wrapUnexpected(err, "failed to update course")
	}
	return course, nil
}

func (s *institutionService) ListCourses(ctx context.Context, tenantID, institutionID string) ([]domain.Course, error) {
	if _, err := s.GetInstitution(ctx, tenantID, institutionID); err != nil {
		return nil, err
	}
	courses, err := s.institutionRepo.ListCourses(ctx, institutionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list courses", slog.String("institution_id", institutionID))
		return nil, wrapUnexpected(err, "failed to list courses")
	}
	return courses, nil
}

// validateTuitionFee rejects negative fees and sub-cent precision.
func validateTuitionFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return apperrors.NewFieldError("tuitionFee", "Must not be negative.")
	}
	if fee.Exponent() < -2 && !fee.Equal(fee.Round(2)) {
		return apperrors.NewFieldError("tuitionFee", "Must have at most two decimal places.")
	}
	return nil
}
