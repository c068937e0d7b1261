package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
	"github.com/RaffaFachrizal29/belivps/internal/domain/repository"
	"github.com/RaffaFachrizal29/belivps/internal/pkg/secrets"
)

// OrderUseCase encapsulates the order lifecycle: place, read, confirm, delete.
type OrderUseCase struct {
	orders repository.OrderRepository
	sealer secrets.Sealer
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, sealer secrets.Sealer) *OrderUseCase {
	return &OrderUseCase{orders: orders, sealer: sealer}
}

// Place validates and persists a new PENDING order. The VPS password is
// sealed before it reaches storage.
func (u *OrderUseCase) Place(ctx context.Context, order *model.Order) error {
	if !ValidateOrderID(order.ID) {
		return domainErrors.ErrInvalidOrderID
	}
	if err := VerifyPricing(order); err != nil {
		return err
	}

	sealed, err := u.sealer.Seal(order.Password)
	if err != nil {
		return err
	}

	stored := *order
	stored.Password = sealed
	if err := u.orders.Create(ctx, &stored); err != nil {
		return err
	}

	order.Status = stored.Status
	order.CreatedAt = stored.CreatedAt
	return nil
}

// Get returns the full order record or ErrNotFound.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Password, err = u.sealer.Open(order.Password); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns every order, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Password, err = u.sealer.Open(orders[i].Password); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// Confirm moves the order to CONFIRMED and records the assigned addresses.
// Confirming an already confirmed order overwrites the addresses; confirming
// an unknown id does nothing. Both are deliberate, callers see no error.
func (u *OrderUseCase) Confirm(ctx context.Context, id, ipv6, ipv4Addr string) error {
	ipv6 = strings.TrimSpace(ipv6)
	if ipv6 == "" {
		return domainErrors.ErrInvalidAddress
	}

	var v4 *string
	if trimmed := strings.TrimSpace(ipv4Addr); trimmed != "" {
		v4 = &trimmed
	}
	return u.orders.Confirm(ctx, id, ipv6, v4)
}

// Delete removes the order regardless of status. Unknown ids are a no-op.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

// PrunePendingBefore drops unpaid PENDING orders created before the cutoff.
func (u *OrderUseCase) PrunePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return u.orders.DeletePendingBefore(ctx, cutoff)
}
