package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"staradmin/config"
	"staradmin/internal/domain/entity"
	"staradmin/internal/infra/prefs"
	"staradmin/internal/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNotifier() *store.Notifier {
	cfg := &config.Config{}
	cfg.Notifications.ToastTTL = 4 * time.Second

	return store.NewNotifier(cfg)
}

func testPrefs(t interface{ TempDir() string }) *prefs.Store {
	s, err := prefs.Open(t.TempDir() + "/prefs.json")
	if err != nil {
		panic(err)
	}

	return s
}

// fakeAuthRepo scripts the auth endpoints.
type fakeAuthRepo struct {
	user      entity.AdminUser
	token     string
	loginErr  error
	meErr     error
	ticket    entity.UploadTicket
	signErr   error
	meCalled  int
	signCalls int
}

func (f *fakeAuthRepo) Login(_ context.Context, _, _ string) (entity.AdminUser, string, error) {
	if f.loginErr != nil {
		return entity.AdminUser{}, "", f.loginErr
	}

	return f.user, f.token, nil
}

func (f *fakeAuthRepo) Me(_ context.Context) (entity.AdminUser, error) {
	f.meCalled++
	if f.meErr != nil {
		return entity.AdminUser{}, f.meErr
	}

	return f.user, nil
}

func (f *fakeAuthRepo) SignUpload(_ context.Context, _ entity.UploadScope) (entity.UploadTicket, error) {
	f.signCalls++
	if f.signErr != nil {
		return entity.UploadTicket{}, f.signErr
	}

	return f.ticket, nil
}

// fakeProductRepo echoes writes back, assigning ids on create.
type fakeProductRepo struct {
	list     []entity.Product
	failWith error
	deleted  []string
}

func (f *fakeProductRepo) ListProducts(_ context.Context) ([]entity.Product, error) {
	return f.list, f.failWith
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, p entity.Product) (entity.Product, error) {
	if f.failWith != nil {
		return entity.Product{}, f.failWith
	}
	p.ID = uuid.NewString()

	return p, nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, p entity.Product) (entity.Product, error) {
	if f.failWith != nil {
		return entity.Product{}, f.failWith
	}

	return p, nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, id)

	return nil
}

type fakeCategoryRepo struct{}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, c entity.Category) (entity.Category, error) {
	c.ID = uuid.NewString()

	return c, nil
}

type fakeOrderRepo struct {
	list      []entity.Order
	listErr   error
	statusErr error
	updates   map[string]entity.OrderStatus
}

func (f *fakeOrderRepo) ListOrders(_ context.Context) ([]entity.Order, error) {
	return f.list, f.listErr
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ context.Context, id string, status entity.OrderStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	if f.updates == nil {
		f.updates = map[string]entity.OrderStatus{}
	}
	f.updates[id] = status

	return nil
}

// fakeSectionRepo stores sections in memory and records reorder calls.
type fakeSectionRepo struct {
	created  []entity.SiteSection
	reorders [][]entity.SiteSection
	deleted  []string
	failWith error
}

func (f *fakeSectionRepo) ListSections(_ context.Context) ([]entity.SiteSection, error) {
	return nil, nil
}

func (f *fakeSectionRepo) CreateSection(_ context.Context, s entity.SiteSection) (entity.SiteSection, error) {
	if f.failWith != nil {
		return entity.SiteSection{}, f.failWith
	}
	s.ID = uuid.NewString()
	f.created = append(f.created, s)

	return s, nil
}

func (f *fakeSectionRepo) UpdateSection(_ context.Context, s entity.SiteSection) (entity.SiteSection, error) {
	if f.failWith != nil {
		return entity.SiteSection{}, f.failWith
	}

	return s, nil
}

func (f *fakeSectionRepo) DeleteSection(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, id)

	return nil
}

func (f *fakeSectionRepo) ReorderSections(_ context.Context, sections []entity.SiteSection) error {
	if f.failWith != nil {
		return f.failWith
	}
	snapshot := make([]entity.SiteSection, len(sections))
	copy(snapshot, sections)
	f.reorders = append(f.reorders, snapshot)

	return nil
}

// fakeTranslator uppercases with a language suffix, or fails.
type fakeTranslator struct {
	failWith error
}

func (f *fakeTranslator) Translate(_ context.Context, text, target string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}

	return text + " [" + target + "]", nil
}

type fakeQR struct{}

func (fakeQR) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("empty content")
	}

	return []byte("png:" + content), nil
}

func adminUser() entity.AdminUser {
	return entity.AdminUser{Name: "Boss", Email: "boss@star.uz", Role: entity.RoleAdmin}
}
