package usecase

import (
	"context"
	"io"

	"staradmin/internal/domain/entity"
)

// NotificationUsecase defines the interface for the toast queue, the
// notification inbox and the local activity log.
type NotificationUsecase interface {
	Toasts() []entity.Notification
	DismissToast(id string)

	Inbox() []entity.Notification
	UnreadCount() int
	MarkRead(id string)
	MarkAllRead()
	ClearInbox()

	Activity() []entity.ActivityEntry
	ClearActivity()
	// ExportActivityCSV streams the audit log as CSV.
	ExportActivityCSV(w io.Writer) error
}

// UploadUsecase defines the interface for admin image uploads: local
// validation, backend signing, then a direct post to the media host.
type UploadUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}

// UploadImageInput carries one file received from the admin surface.
type UploadImageInput struct {
	Scope       entity.UploadScope
	Filename    string
	ContentType string
	Size        int64
	File        io.Reader
}

// SyncUsecase defines the interface for the background data sync that
// mirrors every upstream collection into the working set.
type SyncUsecase interface {
	// RefreshAll polls every collection once. Partial failure refreshes
	// what it can and raises a single deduplicated warning.
	RefreshAll(ctx context.Context) error
}
