package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type customerRepository struct {
	client *Client
}

// NewCustomerRepository implements repository.CustomerRepository over
// the backend's /customers resource.
func NewCustomerRepository(client *Client) repository.CustomerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/customers", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[customerDTO](raw, "customers", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode customers")
	}

	customers := make([]entity.Customer, 0, len(dtos))
	for _, dto := range dtos {
		customer := dto.toEntity()
		customer.Avatar = r.client.imageURL(customer.Avatar)
		customers = append(customers, customer)
	}

	return customers, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/customers", customerToDTO(customer))
	if err != nil {
		return entity.Customer{}, err
	}

	dto, err := decodeRecord[customerDTO](raw, "customer", "data")
	if err != nil {
		return entity.Customer{}, errors.Wrap(err, "decode created customer")
	}
	created := dto.toEntity()
	if created.ID == "" {
		created = customer
	}

	return created, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	raw, err := r.client.do(ctx, http.MethodPut, pathID("/customers", customer.ID), customerToDTO(customer))
	if err != nil {
		return entity.Customer{}, err
	}

	dto, err := decodeRecord[customerDTO](raw, "customer", "data")
	if err != nil {
		return entity.Customer{}, errors.Wrap(err, "decode updated customer")
	}
	updated := dto.toEntity()
	if updated.ID == "" {
		updated = customer
	}

	return updated, nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, pathID("/customers", id), nil)

	return err
}
