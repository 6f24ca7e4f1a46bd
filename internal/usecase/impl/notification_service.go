package impl

import (
	"encoding/csv"
	"io"
	"time"

	"staradmin/internal/domain/entity"
	"staradmin/internal/store"
	"staradmin/internal/usecase"

	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notifier *store.Notifier
	activity *store.ActivityLog
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notifier *store.Notifier, activity *store.ActivityLog) usecase.NotificationUsecase {
	return &notificationService{notifier: notifier, activity: activity}
}

func (srv *notificationService) Toasts() []entity.Notification {
	return srv.notifier.Toasts()
}

func (srv *notificationService) DismissToast(id string) {
	srv.notifier.Dismiss(id)
}

func (srv *notificationService) Inbox() []entity.Notification {
	return srv.notifier.Inbox()
}

func (srv *notificationService) UnreadCount() int {
	return srv.notifier.UnreadCount()
}

func (srv *notificationService) MarkRead(id string) {
	srv.notifier.MarkRead(id)
}

func (srv *notificationService) MarkAllRead() {
	srv.notifier.MarkAllRead()
}

func (srv *notificationService) ClearInbox() {
	srv.notifier.Clear()
}

func (srv *notificationService) Activity() []entity.ActivityEntry {
	return srv.activity.Entries()
}

func (srv *notificationService) ClearActivity() {
	srv.activity.Clear()
}

// ExportActivityCSV streams the audit log as CSV, newest first.
func (srv *notificationService) ExportActivityCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"id", "action", "user", "target", "timestamp", "status"}); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	for _, entry := range srv.activity.Entries() {
		row := []string{
			entry.ID,
			entry.Action,
			entry.User,
			entry.Target,
			entry.Timestamp.Format(time.RFC3339),
			string(entry.Status),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "flush csv")
}
