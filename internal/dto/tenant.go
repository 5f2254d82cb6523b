package dto

import (
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// --- Tenant DTOs ---

// SignupTenantRequest defines data for registering a new tenant and its first super admin.
type SignupTenantRequest struct {
	TenantName    string `json:"tenantName" binding:"required,max=150"`
	Domain        string `json:"domain" binding:"required,fqdn"`
	AdminName     string `json:"adminName" binding:"required,max=150"`
	AdminEmail    string `json:"adminEmail" binding:"required,email"`
	AdminPassword string `json:"adminPassword" binding:"required,min=8"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID   string    `json:"tenantID"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"isApproved"`
	Domains    []string  `json:"domains"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:   t.TenantID,
		Name:       t.Name,
		IsApproved: t.IsApproved,
		Domains:    t.Domains,
		CreatedAt:  t.CreatedAt,
	}
}
