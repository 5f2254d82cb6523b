package domain

import "time"

// Owner types for attachments.
const (
	OwnerTypeAssociate        = "associate"
	OwnerTypeProcessingOffice = "processing_office"
)

// CollectionContract is the attachment collection holding signed contracts.
const CollectionContract = "contract"

// Attachment describes a stored file. ObjectKey locates it in the object store.
type Attachment struct {
	AttachmentID string    `json:"attachmentID"`
	TenantID     string    `json:"tenantID"`
	OwnerType    string    `json:"ownerType"`
	OwnerID      string    `json:"ownerID"`
	Collection   string    `json:"collection"`
	FileName     string    `json:"fileName"`
	ObjectKey    string    `json:"-"`
	ContentType  string    `json:"contentType"`
	SizeBytes    int64     `json:"sizeBytes"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}
