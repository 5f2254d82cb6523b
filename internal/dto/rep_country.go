package dto

import (
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// --- RepCountry DTOs ---

// CreateRepCountryRequest defines data for creating a rep country.
type CreateRepCountryRequest struct {
	CountryName string  `json:"countryName" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// AddStatusRequest appends a status to a rep country's pipeline.
type AddStatusRequest struct {
	StatusName string  `json:"statusName" binding:"required,statusname"`
	Notes      *string `json:"notes" binding:"omitempty,max=2000"`
}

// StatusOrderItem assigns an order to a named status.
type StatusOrderItem struct {
	StatusName string `json:"statusName" binding:"required"`
	Order      int    `json:"order" binding:"required,gt=0"`
}

// SaveStatusOrderRequest is the batch submitted when a pipeline is reordered.
type SaveStatusOrderRequest struct {
	Statuses []StatusOrderItem `json:"statuses" binding:"required,min=1,dive"`
}

// ToStatusOrders maps the request items onto domain values.
func (r SaveStatusOrderRequest) ToStatusOrders() []domain.StatusOrder {
	out := make([]domain.StatusOrder, len(r.Statuses))
	for i, item := range r.Statuses {
		out[i] = domain.StatusOrder{StatusName: item.StatusName, Order: item.Order}
	}
	return out
}

// ToggleActiveRequest sets an active flag. The pointer makes an explicit false required.
type ToggleActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UpdateStatusNotesRequest replaces a status's notes; null clears them.
type UpdateStatusNotesRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
}

// AddSubStatusRequest defines data for adding a sub-status.
type AddSubStatusRequest struct {
	Name        string  `json:"name" binding:"required,statusname"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// EditSubStatusRequest renames a sub-status.
type EditSubStatusRequest struct {
	Name string `json:"name" binding:"required,statusname"`
}

// SubStatusResponse defines data returned for a sub-status.
type SubStatusResponse struct {
	SubStatusID string  `json:"subStatusID"`
	StatusID    string  `json:"statusID"`
	Name        string  `json:"name"`
	Order       int     `json:"order"`
	IsActive    bool    `json:"isActive"`
	Description *string `json:"description,omitempty"`
}

// StatusResponse defines data returned for a pipeline status.
type StatusResponse struct {
	StatusID     string              `json:"statusID"`
	RepCountryID string              `json:"repCountryID"`
	StatusName   string              `json:"statusName"`
	Order        int                 `json:"order"`
	IsActive     bool                `json:"isActive"`
	IsProtected  bool                `json:"isProtected"`
	Notes        *string             `json:"notes,omitempty"`
	SubStatuses  []SubStatusResponse `json:"subStatuses"`
}

// RepCountryResponse defines data returned for a rep country.
type RepCountryResponse struct {
	RepCountryID string           `json:"repCountryID"`
	CountryName  string           `json:"countryName"`
	Description  *string          `json:"description,omitempty"`
	IsActive     bool             `json:"isActive"`
	Statuses     []StatusResponse `json:"statuses,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ListRepCountriesResponse wraps a list of rep countries.
type ListRepCountriesResponse struct {
	RepCountries []RepCountryResponse `json:"repCountries"`
}

// ToSubStatusResponse converts domain.SubStatus to DTO.
func ToSubStatusResponse(s *domain.SubStatus) SubStatusResponse {
	return SubStatusResponse{
		SubStatusID: s.SubStatusID,
		StatusID:    s.RepCountryStatusID,
		Name:        s.Name,
		Order:       s.Order,
		IsActive:    s.IsActive,
		Description: s.Description,
	}
}

// ToStatusResponse converts domain.RepCountryStatus to DTO.
func ToStatusResponse(s *domain.RepCountryStatus) StatusResponse {
	subs := make([]SubStatusResponse, len(s.SubStatuses))
	for i := range s.SubStatuses {
		subs[i] = ToSubStatusResponse(&s.SubStatuses[i])
	}
	return StatusResponse{
		StatusID:     s.StatusID,
		RepCountryID: s.RepCountryID,
		StatusName:   s.StatusName,
		Order:        s.Order,
		IsActive:     s.IsActive,
		IsProtected:  s.IsProtected,
		Notes:        s.Notes,
		SubStatuses:  subs,
	}
}

// ToRepCountryResponse converts domain.RepCountry to DTO.
func ToRepCountryResponse(rc *domain.RepCountry) RepCountryResponse {
	var statuses []StatusResponse
	if rc.Statuses != nil {
		statuses = make([]StatusResponse, len(rc.Statuses))
		for i := range rc.Statuses {
			statuses[i] = ToStatusResponse(&rc.Statuses[i])
		}
	}
	return RepCountryResponse{
		RepCountryID: rc.RepCountryID,
		CountryName:  rc.CountryName,
		Description:  rc.Description,
		IsActive:     rc.IsActive,
		Statuses:     statuses,
		CreatedAt:    rc.CreatedAt,
	}
}

// ToListRepCountriesResponse converts a slice of domain.RepCountry to DTO.
func ToListRepCountriesResponse(rcs []domain.RepCountry) ListRepCountriesResponse {
	list := make([]RepCountryResponse, len(rcs))
	for i := range rcs {
		list[i] = ToRepCountryResponse(&rcs[i])
	}
	return ListRepCountriesResponse{RepCountries: list}
}
