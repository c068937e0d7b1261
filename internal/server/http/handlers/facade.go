package handlers

import (
	"context"

	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// OrderFacade encapsulates customer-facing order operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, order *model.Order) error
	Order(ctx context.Context, id string) (*model.Order, error)
	NotifyOrder(ctx context.Context, id string) (simulated bool, err error)
}

// AdminFacade covers authentication and administrative order management.
type AdminFacade interface {
	Login(login, password string) (string, error)
	Logout(token string)
	ValidateSession(token string) error
	Orders(ctx context.Context) ([]model.Order, error)
	ConfirmOrder(ctx context.Context, id, ipv6, ipv4Addr string) error
	RemoveOrder(ctx context.Context, id string) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	OrderFacade
	AdminFacade
}
