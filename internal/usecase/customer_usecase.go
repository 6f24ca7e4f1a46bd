package usecase

import (
	"context"

	"staradmin/internal/domain/entity"
)

// CustomerUsecase defines the interface for CRM operations.
type CustomerUsecase interface {
	// Customers returns the cached CRM list, newest first.
	Customers() []entity.Customer
	// SaveCustomer creates or updates a customer (create when ID is empty).
	SaveCustomer(ctx context.Context, input *SaveCustomerInput) (entity.Customer, error)
	// DeleteCustomer removes one customer.
	DeleteCustomer(ctx context.Context, id string) error
}

// SaveCustomerInput defines the editable fields of the customer form.
type SaveCustomerInput struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Location string `json:"location"`
	JoinDate string `json:"join_date"`
}
