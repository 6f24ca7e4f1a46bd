package store

import (
	"sync"
	"time"

	"staradmin/config"
	"staradmin/internal/domain/entity"

	"github.com/google/uuid"
)

// defaultTitles are the Uzbek titles applied when a notification is
// pushed without one.
var defaultTitles = map[entity.NotificationType]string{
	entity.NotifySuccess: "Muvaffaqiyatli",
	entity.NotifyError:   "Xatolik",
	entity.NotifyWarning: "Diqqat",
	entity.NotifyOrder:   "Yangi Buyurtma",
	entity.NotifyAlert:   "Tizim Xabari",
	entity.NotifyInfo:    "Ma'lumot",
}

const maxInbox = 100

// Notifier owns both notification queues: the transient toast queue,
// pruned after each toast's TTL, and the persistent inbox the bell icon
// reads, kept until the operator clears it.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	toasts  []toast
	inbox   []entity.Notification
}

type toast struct {
	notification entity.Notification
	expiresAt    time.Time
}

// NewNotifier builds the notifier with the configured toast TTL.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{ttl: cfg.Notifications.ToastTTL, now: time.Now}
}

// Push records a notification in both queues, filling the default title
// for its type when none is given, and returns the stored record.
func (n *Notifier) Push(kind entity.NotificationType, title, message string) entity.Notification {
	return n.PushTargeted(kind, title, message, "", "")
}

// PushTargeted is Push with an optional navigation target attached.
func (n *Notifier) PushTargeted(kind entity.NotificationType, title, message string, view entity.ViewType, targetID string) entity.Notification {
	if title == "" {
		title = defaultTitles[kind]
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	notification := entity.Notification{
		ID:         uuid.NewString(),
		Type:       kind,
		Title:      title,
		Message:    message,
		Time:       "Hozir",
		TargetView: view,
		TargetID:   targetID,
		CreatedAt:  now,
	}

	n.toasts = append(n.toasts, toast{notification: notification, expiresAt: now.Add(n.ttl)})
	n.inbox = append([]entity.Notification{notification}, n.inbox...)
	if len(n.inbox) > maxInbox {
		n.inbox = n.inbox[:maxInbox]
	}

	return notification
}

// Toasts returns the live toast queue, pruning expired entries.
func (n *Notifier) Toasts() []entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	kept := n.toasts[:0]
	for _, item := range n.toasts {
		if item.expiresAt.After(now) {
			kept = append(kept, item)
		}
	}
	n.toasts = kept

	out := make([]entity.Notification, 0, len(n.toasts))
	for _, item := range n.toasts {
		out = append(out, item.notification)
	}

	return out
}

// Dismiss drops one toast before its TTL elapses.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, item := range n.toasts {
		if item.notification.ID == id {
			n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
			return
		}
	}
}

// Inbox returns the persistent notification list, newest first.
func (n *Notifier) Inbox() []entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]entity.Notification, len(n.inbox))
	copy(out, n.inbox)

	return out
}

// UnreadCount reports how many inbox entries are unread.
func (n *Notifier) UnreadCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := 0
	for _, item := range n.inbox {
		if !item.Read {
			count++
		}
	}

	return count
}

// MarkRead flags one inbox entry as read.
func (n *Notifier) MarkRead(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.inbox {
		if n.inbox[i].ID == id {
			n.inbox[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every inbox entry as read.
func (n *Notifier) MarkAllRead() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.inbox {
		n.inbox[i].Read = true
	}
}

// Clear empties the inbox.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.inbox = nil
}
