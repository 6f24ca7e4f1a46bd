package store

import (
	"sync"
	"time"

	"staradmin/internal/domain/entity"

	"github.com/google/uuid"
)

const maxActivityEntries = 200

// ActivityLog is the gateway-local audit trail of admin actions. It is
// a bounded ring: the oldest entries fall off past the cap. Nothing
// here is sent upstream.
type ActivityLog struct {
	mu      sync.Mutex
	now     func() time.Time
	entries []entity.ActivityEntry
}

// NewActivityLog builds an empty activity log.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{now: time.Now}
}

// Record appends one audit row, newest first.
func (l *ActivityLog) Record(action, user, target string, status entity.ActivityStatus, icon string) entity.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := entity.ActivityEntry{
		ID:        uuid.NewString(),
		Action:    action,
		User:      user,
		Target:    target,
		Timestamp: l.now(),
		Status:    status,
		Icon:      icon,
	}

	l.entries = append([]entity.ActivityEntry{entry}, l.entries...)
	if len(l.entries) > maxActivityEntries {
		l.entries = l.entries[:maxActivityEntries]
	}

	return entry
}

// Entries returns the audit rows, newest first.
func (l *ActivityLog) Entries() []entity.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.ActivityEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Clear empties the log.
func (l *ActivityLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}
