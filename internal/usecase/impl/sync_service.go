package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"
	"staradmin/internal/store"
	"staradmin/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// syncService implements the SyncUsecase interface: it mirrors every
// upstream collection into the working set on a fixed cadence.
type syncService struct {
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	categoryRepo  repository.CategoryRepository
	couponRepo    repository.CouponRepository
	defectiveRepo repository.DefectiveRepository
	sectionRepo   repository.SectionRepository

	orders  usecase.OrderUsecase
	builder usecase.BuilderUsecase

	state    *store.State
	notifier *store.Notifier
	logger   *slog.Logger

	mu           sync.Mutex
	ordersPrimed bool
	knownOrders  map[string]struct{}
	lastWarning  string
}

// NewSyncService is the constructor for syncService.
func NewSyncService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	categoryRepo repository.CategoryRepository,
	couponRepo repository.CouponRepository,
	defectiveRepo repository.DefectiveRepository,
	sectionRepo repository.SectionRepository,
	orders usecase.OrderUsecase,
	builder usecase.BuilderUsecase,
	state *store.State,
	notifier *store.Notifier,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		categoryRepo:  categoryRepo,
		couponRepo:    couponRepo,
		defectiveRepo: defectiveRepo,
		sectionRepo:   sectionRepo,
		orders:        orders,
		builder:       builder,
		state:         state,
		notifier:      notifier,
		logger:        logger,
		knownOrders:   map[string]struct{}{},
	}
}

// RefreshAll polls every collection in parallel. Each successful fetch
// replaces its collection wholesale; failures are collected into one
// warning toast, deduplicated against the previous cycle.
func (srv *syncService) RefreshAll(ctx context.Context) error {
	if _, ok := srv.state.User(); !ok {
		return nil // nothing to sync while logged out
	}

	var (
		failMu   sync.Mutex
		failures []string
	)
	fail := func(name string, err error) {
		failMu.Lock()
		failures = append(failures, fmt.Sprintf("%s: %s", name, rootMessage(err)))
		failMu.Unlock()
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if items, err := srv.productRepo.ListProducts(groupCtx); err != nil {
			fail("mahsulotlar", err)
		} else {
			srv.state.Products.ReplaceAll(items)
		}

		return nil
	})
	group.Go(func() error {
		if items, err := srv.orderRepo.ListOrders(groupCtx); err != nil {
			fail("buyurtmalar", err)
		} else {
			srv.ingestOrders(items)
		}

		return nil
	})
	group.Go(func() error {
		if items, err := srv.customerRepo.ListCustomers(groupCtx); err != nil {
			fail("mijozlar", err)
		} else {
			srv.state.Customers.ReplaceAll(items)
		}

		return nil
	})
	group.Go(func() error {
		if items, err := srv.categoryRepo.ListCategories(groupCtx); err != nil {
			fail("kategoriyalar", err)
		} else {
			srv.state.Categories.ReplaceAll(items)
		}

		return nil
	})
	group.Go(func() error {
		if items, err := srv.couponRepo.ListCoupons(groupCtx); err != nil {
			fail("kuponlar", err)
		} else {
			srv.state.Coupons.ReplaceAll(items)
		}

		return nil
	})
	group.Go(func() error {
		if items, err := srv.defectiveRepo.ListDefectiveItems(groupCtx); err != nil {
			fail("yaroqsizlar", err)
		} else {
			srv.state.Defectives.ReplaceAll(items)
		}

		return nil
	})
	group.Go(func() error {
		if items, err := srv.sectionRepo.ListSections(groupCtx); err != nil {
			fail("bo'limlar", err)
		} else {
			srv.state.Sections.ReplaceAll(items)
			if len(items) == 0 {
				if err := srv.builder.SeedDefaultLayout(groupCtx); err != nil {
					srv.logger.WarnContext(groupCtx, "default layout seed failed", slog.Any("error", err))
				}
			}
		}

		return nil
	})

	_ = group.Wait() // workers report through failures, never an error

	srv.orders.CheckDeliveryETAs()

	if len(failures) == 0 {
		srv.mu.Lock()
		srv.lastWarning = ""
		srv.mu.Unlock()

		return nil
	}

	sort.Strings(failures)
	warning := fmt.Sprintf("Ba'zi ma'lumotlar yuklanmadi: %s", strings.Join(failures, " | "))

	srv.mu.Lock()
	repeat := warning == srv.lastWarning
	srv.lastWarning = warning
	srv.mu.Unlock()

	srv.logger.WarnContext(ctx, "partial sync", slog.Int("failed", len(failures)))
	if !repeat {
		srv.notifier.Push(entity.NotifyWarning, "", warning)
	}

	return errors.New(warning)
}

// ingestOrders replaces the order collection and raises a toast for
// every order id not seen before. The first successful order fetch only
// primes the known set, so a restart never replays old orders as new.
func (srv *syncService) ingestOrders(items []entity.Order) {
	srv.mu.Lock()
	primed := srv.ordersPrimed
	srv.ordersPrimed = true
	var fresh []entity.Order
	for _, order := range items {
		if _, known := srv.knownOrders[order.ID]; !known {
			srv.knownOrders[order.ID] = struct{}{}
			if primed {
				fresh = append(fresh, order)
			}
		}
	}
	srv.mu.Unlock()

	srv.state.Orders.ReplaceAll(items)

	for _, order := range fresh {
		srv.notifier.PushTargeted(
			entity.NotifyOrder,
			"",
			fmt.Sprintf("%s: %s buyurtma berdi.", order.ID, order.CustomerName),
			entity.ViewOrders,
			order.ID,
		)
	}
}
