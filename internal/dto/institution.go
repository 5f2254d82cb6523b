package dto

import (
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Institution DTOs ---

// CreateInstitutionRequest defines data for creating an institution.
type CreateInstitutionRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	Country string  `json:"country" binding:"required,max=100"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Website *string `json:"website" binding:"omitempty,url"`
}

// UpdateInstitutionRequest defines the data allowed for updating an institution.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateInstitutionRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200"`
	Country  *string `json:"country" binding:"omitempty,max=100"`
	City     *string `json:"city" binding:"omitempty,max=100"`
	Website  *string `json:"website" binding:"omitempty,url"`
	IsActive *bool   `json:"isActive"`
}

// InstitutionResponse defines data returned for an institution.
type InstitutionResponse struct {
	InstitutionID string    `json:"institutionID"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	City          *string   `json:"city,omitempty"`
	Website       *string   `json:"website,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListInstitutionsResponse wraps a page of institutions.
type ListInstitutionsResponse struct {
	Institutions []InstitutionResponse `json:"institutions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToInstitutionResponse converts domain.Institution to DTO.
func ToInstitutionResponse(i *domain.Institution) InstitutionResponse {
	return InstitutionResponse{
		InstitutionID: i.InstitutionID,
		Name:          i.Name,
		Country:       i.Country,
		City:          i.City,
		Website:       i.Website,
		IsActive:      i.IsActive,
		CreatedAt:     i.CreatedAt,
	}
}

// --- Course DTOs ---

// CreateCourseRequest defines data for adding a course to an institution.
type CreateCourseRequest struct {
	Name           string          `json:"name" binding:"required,max=200"`
	Level          string          `json:"level" binding:"required,oneof=certificate diploma bachelor master doctorate other"`
	DurationMonths int             `json:"durationMonths" binding:"required,gt=0,lte=120"`
	TuitionFee     decimal.Decimal `json:"tuitionFee" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,iso4217"`
}

// UpdateCourseRequest defines the data allowed for updating a course.
type UpdateCourseRequest struct {
	Name           *string          `json:"name" binding:"omitempty,max=200"`
	Level          *string          `json:"level" binding:"omitempty,oneof=certificate diploma bachelor master doctorate other"`
	DurationMonths *int             `json:"durationMonths" binding:"omitempty,gt=0,lte=120"`
	TuitionFee     *decimal.Decimal `json:"tuitionFee"`
	CurrencyCode   *string          `json:"currencyCode" binding:"omitempty,iso4217"`
	IsActive       *bool            `json:"isActive"`
}

// CourseResponse defines data returned for a course.
type CourseResponse struct {
	CourseID       string          `json:"courseID"`
	InstitutionID  string          `json:"institutionID"`
	Name           string          `json:"name"`
	Level          string          `json:"level"`
	DurationMonths int             `json:"durationMonths"`
	TuitionFee     decimal.Decimal `json:"tuitionFee"`
	CurrencyCode   string          `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
}

// ListCoursesResponse wraps a list of courses.
type ListCoursesResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// ToCourseResponse converts domain.Course to DTO.
func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		CourseID:       c.CourseID,
		InstitutionID:  c.InstitutionID,
		Name:           c.Name,
		Level:          c.Level,
		DurationMonths: c.DurationMonths,
		TuitionFee:     c.TuitionFee,
		CurrencyCode:   c.CurrencyCode,
		IsActive:       c.IsActive,
	}
}

// ToListCoursesResponse converts a slice of domain.Course to DTO.
func ToListCoursesResponse(cs []domain.Course) ListCoursesResponse {
	list := make([]CourseResponse, len(cs))
	for i := range cs {
		list[i] = ToCourseResponse(&cs[i])
	}
	return ListCoursesResponse{Courses: list}
}
