package services

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/SscSPs/consultancy_admin/internal/dto"
)

// InstitutionSvcFacade manages institutions and the courses they offer.
type InstitutionSvcFacade interface {
	CreateInstitution(ctx context.Context, tenantID, actorID string, req dto.CreateInstitutionRequest) (*domain.Institution, error)
	UpdateInstitution(ctx context.Context, tenantID, actorID, institutionID string, req dto.UpdateInstitutionRequest) (*domain.Institution, error)
	GetInstitution(ctx context.Context, tenantID, institutionID string) (*domain.Institution, error)
	ListInstitutions(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.Institution], error)

	CreateCourse(ctx context.Context, tenantID, actorID, institutionID string, req dto.CreateCourseRequest) (*domain.Course, error)
	UpdateCourse(ctx context.Context, tenantID, actorID, institutionID, courseID string, req dto.UpdateCourseRequest) (*domain.Course, error)
	ListCourses(ctx context.Context, tenantID, institutionID string) ([]domain.Course, error)
}
