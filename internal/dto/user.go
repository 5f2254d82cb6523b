package dto

import (
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// UserResponse defines the principal fields exposed over the API.
type UserResponse struct {
	UserID   string        `json:"userID"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Phone    *string       `json:"phone,omitempty"`
	IsActive bool          `json:"isActive"`
	Roles    []domain.Role `json:"roles"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		IsActive: u.IsActive,
		Roles:    roles,
	}
}

// DashboardResponse is returned by every role namespace's dashboard endpoint.
type DashboardResponse struct {
	Namespace string         `json:"namespace"`
	Role      domain.Role    `json:"role"`
	Tenant    TenantResponse `json:"tenant"`
	User      UserResponse   `json:"user"`
}
