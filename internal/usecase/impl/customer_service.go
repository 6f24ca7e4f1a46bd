package impl

import (
	"context"
	"fmt"
	"log/slog"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	state        *store.State
	notifier     *store.Notifier
	activity     *store.ActivityLog
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	state *store.State,
	notifier *store.Notifier,
	activity *store.ActivityLog,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		state:        state,
		notifier:     notifier,
		activity:     activity,
		logger:       logger,
	}
}

func (srv *customerService) Customers() []entity.Customer {
	return srv.state.Customers.Items()
}

// SaveCustomer creates or updates a customer record.
func (srv *customerService) SaveCustomer(ctx context.Context, input *usecase.SaveCustomerInput) (entity.Customer, error) {
	customer := entity.Customer{
		ID:       input.ID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Avatar:   input.Avatar,
		Status:   entity.CustomerStatus(input.Status),
		Location: input.Location,
		JoinDate: input.JoinDate,
	}
	if customer.Status != entity.CustomerInactive {
		customer.Status = entity.CustomerActive
	}

	if customer.ID != "" {
		if cached, ok := srv.state.Customers.Get(customer.ID); ok {
			customer.LastSeenAt = cached.LastSeenAt
			customer.TotalTimeSeconds = cached.TotalTimeSeconds
			customer.IsOnline = cached.IsOnline
			customer.Orders = cached.Orders
			customer.Spent = cached.Spent
		}
	}

	var (
		saved entity.Customer
		err   error
	)
	if customer.ID == "" {
		saved, err = srv.customerRepo.CreateCustomer(ctx, customer)
	} else {
		saved, err = srv.customerRepo.UpdateCustomer(ctx, customer)
	}
	if err != nil {
		srv.logger.ErrorContext(ctx, "customer save failed", slog.String("name", customer.Name), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Mijoz saqlanmadi: %s", rootMessage(err)))

		return entity.Customer{}, err
	}

	srv.state.Customers.Upsert(saved)
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s saqlandi.", saved.Name))
	srv.activity.Record("Mijoz saqlandi", actorName(srv.state), saved.Name, entity.ActivityOK, "user")

	return saved, nil
}

func (srv *customerService) DeleteCustomer(ctx context.Context, id string) error {
	customer, _ := srv.state.Customers.Get(id)

	if err := srv.customerRepo.DeleteCustomer(ctx, id); err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Mijoz o'chirilmadi: %s", rootMessage(err)))

		return err
	}

	srv.state.Customers.Remove(id)
	srv.notifier.Push(entity.NotifySuccess, "", "Mijoz o'chirildi.")
	srv.activity.Record("Mijoz o'chirildi", actorName(srv.state), customer.Name, entity.ActivityOK, "user")

	return nil
}
