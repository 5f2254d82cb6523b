package dto

import (
	"io"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
)

// ContactRequest holds the optional contact fields shared by provisioned entities.
type ContactRequest struct {
	Phone   *string `json:"phone" form:"phone" binding:"omitempty,phone"`
	Address *string `json:"address" form:"address" binding:"omitempty,max=255"`
	City    *string `json:"city" form:"city" binding:"omitempty,max=100"`
	State   *string `json:"state" form:"state" binding:"omitempty,max=100"`
	Country *string `json:"country" form:"country" binding:"omitempty,max=100"`
}

// ToContactDetails maps the request onto the domain value.
func (r ContactRequest) ToContactDetails() domain.ContactDetails {
	return domain.ContactDetails{
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
	}
}

// ProvisionRequest creates an entity together with its login principal.
type ProvisionRequest struct {
	Name     string `json:"name" form:"name" binding:"required,max=150"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	ContactRequest
}

// UpdateProvisionRequest updates an entity and its principal.
// Password is optional; when omitted the stored credential is left untouched.
type UpdateProvisionRequest struct {
	Name     string  `json:"name" form:"name" binding:"required,max=150"`
	Email    string  `json:"email" form:"email" binding:"required,email"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=8"`
	IsActive *bool   `json:"isActive" form:"isActive"`
	ContactRequest
}

// FileUpload is an uploaded file handed from a handler to a service.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AttachmentResponse defines the attachment metadata returned to callers.
type AttachmentResponse struct {
	AttachmentID string    `json:"attachmentID"`
	FileName     string    `json:"fileName"`
	ContentType  string    `json:"contentType"`
	SizeBytes    int64     `json:"sizeBytes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToAttachmentResponse converts domain.Attachment to DTO, nil-safe.
func ToAttachmentResponse(a *domain.Attachment) *AttachmentResponse {
	if a == nil {
		return nil
	}
	return &AttachmentResponse{
		AttachmentID: a.AttachmentID,
		FileName:     a.FileName,
		ContentType:  a.ContentType,
		SizeBytes:    a.SizeBytes,
		CreatedAt:    a.CreatedAt,
	}
}

// DownloadURLResponse carries a time-limited download link.
type DownloadURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// EntityResponse is the common shape for branches, associates and processing offices.
type EntityResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userID"`
	BranchID string  `json:"branchID,omitempty"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Country  *string `json:"country,omitempty"`
	IsActive bool    `json:"isActive"`

	Contract *AttachmentResponse `json:"contract,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListEntitiesResponse wraps a page of entities.
type ListEntitiesResponse struct {
	Items     []EntityResponse `json:"items"`
	NextToken *string          `json:"nextToken,omitempty"`
}

func entityResponse(id, userID, name, email string, c domain.ContactDetails, active bool, a domain.AuditFields) EntityResponse {
	return EntityResponse{
		ID:            id,
		UserID:        userID,
		Name:          name,
		Email:         email,
		Phone:         c.Phone,
		Address:       c.Address,
		City:          c.City,
		State:         c.State,
		Country:       c.Country,
		IsActive:      active,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToBranchResponse converts domain.Branch to DTO.
func ToBranchResponse(b *domain.Branch) EntityResponse {
	return entityResponse(b.BranchID, b.UserID, b.Name, b.Email, b.ContactDetails, b.IsActive, b.AuditFields)
}

// ToAssociateResponse converts domain.Associate to DTO.
func ToAssociateResponse(a *domain.Associate) EntityResponse {
	resp := entityResponse(a.AssociateID, a.UserID, a.Name, a.Email, a.ContactDetails, a.IsActive, a.AuditFields)
	resp.BranchID = a.BranchID
	resp.Contract = ToAttachmentResponse(a.Contract)
	return resp
}

// ToProcessingOfficeResponse converts domain.ProcessingOffice to DTO.
func ToProcessingOfficeResponse(p *domain.ProcessingOffice) EntityResponse {
	resp := entityResponse(p.ProcessingOfficeID, p.UserID, p.Name, p.Email, p.ContactDetails, p.IsActive, p.AuditFields)
	resp.Contract = ToAttachmentResponse(p.Contract)
	return resp
}

// Page holds a page of domain values plus the continuation token, if any.
type Page[T any] struct {
	Items     []T
	NextToken *string
}
