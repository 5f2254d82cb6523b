package repositories

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// InstitutionRepositoryFacade defines persistence for institutions and their courses.
type InstitutionRepositoryFacade interface {
	SaveInstitution(ctx context.Context, institution domain.Institution) error
	UpdateInstitution(ctx context.Context, institution domain.Institution) error
	FindInstitutionByID(ctx context.Context, tenantID, institutionID string) (*domain.Institution, error)
	ListInstitutions(ctx context.Context, tenantID string, params ListParams) ([]domain.Institution, error)

	SaveCourse(ctx context.Context, course domain.Course) error
	UpdateCourse(ctx context.Context, course domain.Course) error
	FindCourseByID(ctx context.Context, institutionID, courseID string) (*domain.Course, error)
	ListCourses(ctx context.Context, institutionID string) ([]domain.Course, error)
}
