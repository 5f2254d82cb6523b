package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/utils"
	"github.com/google/uuid"
)

const emailTakenMessage = "The email has already been taken."

// principalProvisioner writes the login principal that accompanies every provisioned entity.
// Its methods must be called with a transactional ctx so the principal and the entity commit together.
type principalProvisioner struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func (p *principalProvisioner) ensureEmailAvailable(ctx context.Context, tenantID, email, exceptUserID string) error {
	existing, err := p.userRepo.FindUserByEmail(ctx, tenantID, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing.UserID != exceptUserID {
		return apperrors.NewFieldError("email", emailTakenMessage)
	}
	return nil
}

// createPrincipal inserts an active principal holding role.
func (p *principalProvisioner) createPrincipal(ctx context.Context, tenantID, actorID string, role domain.Role, req dto.ProvisionRequest, ts time.Time) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if err := p.ensureEmailAvailable(ctx, tenantID, email, ""); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		TenantID:     tenantID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: hash,
		IsActive:     true,
		Roles:        []domain.Role{role},
		AuditFields:  domain.NewAuditFields(actorID, ts),
	}
	if err := p.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("email", emailTakenMessage)
		}
		return nil, fmt.Errorf("failed to save principal: %w", err)
	}
	return &user, nil
}

// updatePrincipal applies profile changes and, when supplied, a new password.
// An omitted password leaves the stored credential untouched.
func (p *principalProvisioner) updatePrincipal(ctx context.Context, tenantID, actorID, userID string, req dto.UpdateProvisionRequest, ts time.Time) (*domain.User, error) {
	user, err := p.userRepo.FindUserByID(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load principal: %w", err)
	}

	email := normalizeEmail(req.Email)
	if email != user.Email {
		if err := p.ensureEmailAvailable(ctx, tenantID, email, userID); err != nil {
			return nil, err
		}
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.Phone = req.Phone
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.Touch(actorID, ts)
	if err := p.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("email", emailTakenMessage)
		}
		return nil, fmt.Errorf("failed to update principal: %w", err)
	}

	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := p.userRepo.UpdatePassword(ctx, tenantID, userID, hash, actorID); err != nil {
			return nil, fmt.Errorf("failed to update password: %w", err)
		}
	}
	return user, nil
}

// contractManager keeps one contract attachment per owner. Objects are written before
// the database transaction and cleaned up after it, so a failed transaction leaves no orphan rows.
type contractManager struct {
	BaseService
	store     portsrepo.AttachmentStore
	repo      portsrepo.AttachmentRepositoryFacade
	urlExpiry time.Duration
}

// upload stores the file and returns the attachment row to insert.
func (m *contractManager) upload(ctx context.Context, tenantID, ownerType, ownerID, actorID string, file *dto.FileUpload, ts time.Time) (*domain.Attachment, error) {
	attachmentID := uuid.NewString()
	fileName := path.Base(strings.ReplaceAll(file.FileName, "\\", "/"))
	if fileName == "." || fileName == "/" {
		fileName = "contract"
	}
	key := fmt.Sprintf("tenants/%s/%s/%s/%s/%s-%s", tenantID, ownerType, ownerID, domain.CollectionContract, attachmentID, fileName)

	if err := m.store.PutObject(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		m.LogError(ctx, err, "Failed to upload contract", slog.String("owner_type", ownerType), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to upload contract: %w", err)
	}
	return &domain.Attachment{
		AttachmentID: attachmentID,
		TenantID:     tenantID,
		OwnerType:    ownerType,
		OwnerID:      ownerID,
		Collection:   domain.CollectionContract,
		FileName:     fileName,
		ObjectKey:    key,
		ContentType:  file.ContentType,
		SizeBytes:    file.Size,
		CreatedAt:    ts,
		CreatedBy:    actorID,
	}, nil
}

// replace swaps the owner's contract row for next and returns the previous one, if any.
func (m *contractManager) replace(ctx context.Context, next *domain.Attachment) (*domain.Attachment, error) {
	previous, err := m.current(ctx, next.TenantID, next.OwnerType, next.OwnerID)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		if err := m.repo.DeleteAttachment(ctx, next.TenantID, previous.AttachmentID); err != nil {
			return nil, fmt.Errorf("failed to remove previous contract: %w", err)
		}
	}
	if err := m.repo.SaveAttachment(ctx, *next); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}
	return previous, nil
}

// current returns the owner's contract or nil when there is none.
func (m *contractManager) current(ctx context.Context, tenantID, ownerType, ownerID string) (*domain.Attachment, error) {
	att, err := m.repo.FindAttachment(ctx, tenantID, ownerType, ownerID, domain.CollectionContract)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load contract: %w", err)
	}
	return att, nil
}

// discard removes a stored object, logging failures.
func (m *contractManager) discard(ctx context.Context, att *domain.Attachment) {
	if att == nil {
		return
	}
	if err := m.store.DeleteObject(ctx, att.ObjectKey); err != nil {
		m.LogError(ctx, err, "Failed to delete contract object", slog.String("attachment_id", att.AttachmentID))
	}
}

// downloadURL presigns the owner's contract.
func (m *contractManager) downloadURL(ctx context.Context, tenantID, ownerType, ownerID string) (string, time.Time, error) {
	att, err := m.current(ctx, tenantID, ownerType, ownerID)
	if err != nil {
		return "", time.Time{}, err
	}
	if att == nil {
		return "", time.Time{}, apperrors.NewNotFoundError("no contract on file")
	}
	url, err := m.store.GenerateDownloadURL(ctx, att.ObjectKey, m.urlExpiry)
	if err != nil {
		m.LogError(ctx, err, "Failed to presign contract", slog.String("attachment_id", att.AttachmentID))
		return "", time.Time{}, fmt.Errorf("failed to generate download url: %w", err)
	}
	return url, time.Now().Add(m.urlExpiry), nil
}
