package test

import (
	"context"
	"time"

	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
	"github.com/RaffaFachrizal29/belivps/internal/pkg/secrets"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, *model.Order) error
	OrderFn  func(context.Context, string) (*model.Order, error)
	NotifyFn func(context.Context, string) (bool, error)
}

// PlaceOrder delegates to the override or accepts the order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, order *model.Order) error {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, order)
	}
	order.Status = model.OrderStatusPending
	order.CreatedAt = time.Unix(0, 0)
	return nil
}

// Order returns a predefined record.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

// NotifyOrder reports configured delivery outcome.
func (s OrderFacadeStub) NotifyOrder(ctx context.Context, id string) (bool, error) {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, id)
	}
	return false, nil
}

// AdminFacadeStub simulates admin operations for handler tests.
type AdminFacadeStub struct {
	LoginFn    func(string, string) (string, error)
	LogoutFn   func(string)
	ValidateFn func(string) error
	OrdersFn   func(context.Context) ([]model.Order, error)
	ConfirmFn  func(context.Context, string, string, string) error
	RemoveFn   func(context.Context, string) error
}

// Login returns a token for successful logins.
func (s AdminFacadeStub) Login(login, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(login, password)
	}
	return "session-token", nil
}

// Logout delegates to the override when present.
func (s AdminFacadeStub) Logout(token string) {
	if s.LogoutFn != nil {
		s.LogoutFn(token)
	}
}

// ValidateSession accepts every token unless overridden.
func (s AdminFacadeStub) ValidateSession(token string) error {
	if s.ValidateFn != nil {
		return s.ValidateFn(token)
	}
	return nil
}

// Orders returns preconfigured orders.
func (s AdminFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "AB12CD34"}}, nil
}

// ConfirmOrder executes the configured confirmation handler.
func (s AdminFacadeStub) ConfirmOrder(ctx context.Context, id, ipv6, ipv4Addr string) error {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, id, ipv6, ipv4Addr)
	}
	return nil
}

// RemoveOrder executes the configured deletion handler.
func (s AdminFacadeStub) RemoveOrder(ctx context.Context, id string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, id)
	}
	return nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	OrderFacadeStub
	AdminFacadeStub
}

// MailerStub records notification attempts.
type MailerStub struct {
	SendFn func(context.Context, *model.Order) (bool, error)
	Sent   []*model.Order
}

// SendOrderNotice delegates to the override or records a simulated success.
func (s *MailerStub) SendOrderNotice(ctx context.Context, order *model.Order) (bool, error) {
	s.Sent = append(s.Sent, order)
	if s.SendFn != nil {
		return s.SendFn(ctx, order)
	}
	return true, nil
}

// SealerStub marks values so tests can observe sealing without cryptography.
type SealerStub struct {
	SealFn func(string) (string, error)
	OpenFn func(string) (string, error)
}

// Seal returns a predictable sealed form of the value.
func (s SealerStub) Seal(plaintext string) (string, error) {
	if s.SealFn != nil {
		return s.SealFn(plaintext)
	}
	return "sealed:" + plaintext, nil
}

// Open reverses Seal.
func (s SealerStub) Open(stored string) (string, error) {
	if s.OpenFn != nil {
		return s.OpenFn(stored)
	}
	if len(stored) > 7 && stored[:7] == "sealed:" {
		return stored[7:], nil
	}
	return stored, nil
}

var _ secrets.Sealer = SealerStub{}
