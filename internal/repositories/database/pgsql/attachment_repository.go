package pgsql

import (
	"context"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, att domain.Attachment) error {
	query := `
		INSERT INTO attachments (
			attachment_id, tenant_id, owner_type, owner_id, collection,
			file_name, object_key, content_type, size_bytes, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		att.AttachmentID, att.TenantID, att.OwnerType, att.OwnerID, att.Collection,
		att.FileName, att.ObjectKey, att.ContentType, att.SizeBytes, att.CreatedAt, att.CreatedBy,
	)
	if err != nil {
		return mapWriteError(err, "attachment already exists for "+att.OwnerType+" "+att.OwnerID, "failed to save attachment")
	}
	return nil
}

func (r *PgxAttachmentRepository) FindAttachment(ctx context.Context, tenantID, ownerType, ownerID, collection string) (*domain.Attachment, error) {
	query := `
		SELECT attachment_id, tenant_id, owner_type, owner_id, collection,
			file_name, object_key, content_type, size_bytes, created_at, created_by
		FROM attachments
		WHERE tenant_id = $1 AND owner_type = $2 AND owner_id = $3 AND collection = $4;
	`
	var a domain.Attachment
	err := r.db(ctx).QueryRow(ctx, query, tenantID, ownerType, ownerID, collection).Scan(
		&a.AttachmentID, &a.TenantID, &a.OwnerType, &a.OwnerID, &a.Collection,
		&a.FileName, &a.ObjectKey, &a.ContentType, &a.SizeBytes, &a.CreatedAt, &a.CreatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, "attachment not found", "failed to query attachment")
	}
	return &a, nil
}

func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, tenantID, attachmentID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM attachments WHERE tenant_id = $1 AND attachment_id = $2;`, tenantID, attachmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment", err)
	}
	return requireAffected(tag, "attachment not found")
}
