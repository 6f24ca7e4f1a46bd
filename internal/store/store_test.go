package store

import (
	"testing"
	"time"

	"staradmin/config"
	"staradmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProducts() *Collection[entity.Product] {
	return NewCollection(func(p entity.Product) string { return p.ID })
}

func TestCollection_UpsertPrependsNewRecords(t *testing.T) {
	c := newProducts()
	c.ReplaceAll([]entity.Product{{ID: "a"}, {ID: "b"}})

	c.Upsert(entity.Product{ID: "c", Name: "Yangi"})

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID, "new records lead the list")
}

func TestCollection_UpsertReplacesInPlace(t *testing.T) {
	c := newProducts()
	c.ReplaceAll([]entity.Product{{ID: "a", Name: "Eski"}, {ID: "b"}})

	c.Upsert(entity.Product{ID: "a", Name: "Yangilangan"})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID, "position is preserved on replace")
	assert.Equal(t, "Yangilangan", items[0].Name)
}

func TestCollection_RemoveMany(t *testing.T) {
	c := newProducts()
	c.ReplaceAll([]entity.Product{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	c.RemoveMany([]string{"a", "c", "missing"})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestCollection_ItemsReturnsCopy(t *testing.T) {
	c := newProducts()
	c.ReplaceAll([]entity.Product{{ID: "a"}})

	items := c.Items()
	items[0].ID = "mutated"

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func notifierWithClock(ttl time.Duration, now *time.Time) *Notifier {
	cfg := &config.Config{}
	cfg.Notifications.ToastTTL = ttl

	n := NewNotifier(cfg)
	n.now = func() time.Time { return *now }

	return n
}

func TestNotifier_DefaultTitles(t *testing.T) {
	now := time.Now()
	n := notifierWithClock(4*time.Second, &now)

	assert.Equal(t, "Muvaffaqiyatli", n.Push(entity.NotifySuccess, "", "saqlandi").Title)
	assert.Equal(t, "Xatolik", n.Push(entity.NotifyError, "", "xato").Title)
	assert.Equal(t, "Diqqat", n.Push(entity.NotifyWarning, "", "ogohlantirish").Title)
	assert.Equal(t, "Yangi Buyurtma", n.Push(entity.NotifyOrder, "", "buyurtma").Title)
	assert.Equal(t, "Tizim Xabari", n.Push(entity.NotifyAlert, "", "tizim").Title)
	assert.Equal(t, "Ma'lumot", n.Push(entity.NotifyInfo, "", "info").Title)
	assert.Equal(t, "Maxsus", n.Push(entity.NotifyInfo, "Maxsus", "info").Title)
}

func TestNotifier_ToastsExpireAfterTTL(t *testing.T) {
	now := time.Now()
	n := notifierWithClock(4*time.Second, &now)

	n.Push(entity.NotifySuccess, "", "birinchi")
	assert.Len(t, n.Toasts(), 1)

	now = now.Add(4*time.Second + time.Millisecond)
	assert.Empty(t, n.Toasts())
	assert.Len(t, n.Inbox(), 1, "inbox keeps the record past the toast TTL")
}

func TestNotifier_ReadFlags(t *testing.T) {
	now := time.Now()
	n := notifierWithClock(4*time.Second, &now)

	first := n.Push(entity.NotifyInfo, "", "bir")
	n.Push(entity.NotifyInfo, "", "ikki")
	require.Equal(t, 2, n.UnreadCount())

	n.MarkRead(first.ID)
	assert.Equal(t, 1, n.UnreadCount())

	n.MarkAllRead()
	assert.Zero(t, n.UnreadCount())

	n.Clear()
	assert.Empty(t, n.Inbox())
}

func TestActivityLog_NewestFirstAndBounded(t *testing.T) {
	l := NewActivityLog()

	l.Record("Mahsulot qo'shildi", "Admin", "Palto", entity.ActivityOK, "box")
	l.Record("Buyurtma yangilandi", "Admin", "#1001", entity.ActivityOK, "truck")

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Buyurtma yangilandi", entries[0].Action)

	for i := 0; i < maxActivityEntries+10; i++ {
		l.Record("A", "Admin", "", entity.ActivityOK, "box")
	}
	assert.Len(t, l.Entries(), maxActivityEntries)
}

func TestState_SessionLifecycle(t *testing.T) {
	s := NewState()

	_, ok := s.User()
	assert.False(t, ok)

	s.SetUser(entity.AdminUser{Name: "Boss", Role: entity.RoleAdmin})
	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Boss", user.Name)

	s.Products.Upsert(entity.Product{ID: "p1"})
	s.ClearUser()
	s.ClearAll()

	_, ok = s.User()
	assert.False(t, ok)
	assert.Zero(t, s.Products.Len())
}
