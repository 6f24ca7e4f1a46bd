package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository implements repository.OrderRepository over the
// backend's /orders resource.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[orderDTO](raw, "orders", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}

	orders := make([]entity.Order, 0, len(dtos))
	for _, dto := range dtos {
		order := dto.toEntity()
		order.PreviewImage = r.client.imageURL(order.PreviewImage)
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	_, err := r.client.do(ctx, http.MethodPut, pathID("/orders", id)+"/status", body)

	return err
}
