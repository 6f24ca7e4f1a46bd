package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/repository"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// etaWarningWindowDays is how close to the delivery deadline a
// Processing order must be before the gateway starts warning.
const etaWarningWindowDays = 3

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	state     *store.State
	notifier  *store.Notifier
	activity  *store.ActivityLog
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	warned map[string]struct{}
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	state *store.State,
	notifier *store.Notifier,
	activity *store.ActivityLog,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		state:     state,
		notifier:  notifier,
		activity:  activity,
		logger:    logger,
		now:       time.Now,
		warned:    map[string]struct{}{},
	}
}

func (srv *orderService) Orders() []entity.Order {
	return srv.state.Orders.Items()
}

func (srv *orderService) Order(id string) (entity.Order, error) {
	order, ok := srv.state.Orders.Get(id)
	if !ok {
		return entity.Order{}, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus transitions an order's delivery status. Only Processing
// orders may move, to Delivered or Cancelled.
func (srv *orderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (entity.Order, error) {
	order, ok := srv.state.Orders.Get(id)
	if !ok {
		return entity.Order{}, domainerrors.ErrOrderNotFound
	}

	if order.Status != entity.OrderProcessing {
		return entity.Order{}, domainerrors.ErrInvalidInput.WithDetails("only processing orders can change status")
	}
	if status != entity.OrderDelivered && status != entity.OrderCancelled {
		return entity.Order{}, domainerrors.ErrInvalidInput.WithDetails("unknown target status")
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		srv.logger.ErrorContext(ctx, "order status update failed", slog.String("orderID", id), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Holat yangilanmadi: %s", rootMessage(err)))
		srv.activity.Record("Buyurtma holati", actorName(srv.state), id, entity.ActivityFailed, "truck")

		return entity.Order{}, err
	}

	order.Status = status
	srv.state.Orders.Upsert(order)

	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("Buyurtma %s holati yangilandi.", id))
	srv.activity.Record("Buyurtma holati yangilandi", actorName(srv.state), id, entity.ActivityOK, "truck")

	return order, nil
}

// CheckDeliveryETAs raises a warning for every Processing order whose
// delivery window closes within three days. Each order warns once per
// process lifetime.
func (srv *orderService) CheckDeliveryETAs() {
	now := srv.now()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, order := range srv.state.Orders.Items() {
		if order.Status != entity.OrderProcessing || order.DeliveryETA == 0 {
			continue
		}
		if _, done := srv.warned[order.ID]; done {
			continue
		}

		eta := time.UnixMilli(order.DeliveryETA)
		daysLeft := int(math.Ceil(eta.Sub(now).Hours() / 24))
		if daysLeft < 0 || daysLeft > etaWarningWindowDays {
			continue
		}

		srv.warned[order.ID] = struct{}{}
		srv.notifier.PushTargeted(
			entity.NotifyWarning,
			"",
			fmt.Sprintf("Buyurtma %s yetkazilishigacha %d kun qoldi.", order.ID, daysLeft),
			entity.ViewOrders,
			order.ID,
		)
	}
}
