package usecase

import (
	"context"

	"staradmin/internal/domain/entity"
)

// OrderUsecase defines the interface for order management operations.
type OrderUsecase interface {
	// Orders returns the cached order list, newest first.
	Orders() []entity.Order
	// Order returns one cached order.
	Order(id string) (entity.Order, error)
	// UpdateStatus transitions an order's delivery status. Only Processing
	// orders may move, to Delivered or Cancelled.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (entity.Order, error)
	// CheckDeliveryETAs raises a warning for every Processing order whose
	// delivery window closes within three days, once per order.
	CheckDeliveryETAs()
}
