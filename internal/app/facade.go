package app

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
	"github.com/RaffaFachrizal29/belivps/internal/adapter/mailer"
	"github.com/RaffaFachrizal29/belivps/internal/pkg/auth"
	"github.com/RaffaFachrizal29/belivps/internal/usecase"
)

// StorefrontFacade aggregates the order lifecycle, admin auth, and
// notifications behind one surface for the HTTP layer and the worker.
type StorefrontFacade struct {
	orders   *usecase.OrderUseCase
	creds    *auth.Credentials
	sessions auth.Sessions
	mail     mailer.Mailer
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(orders *usecase.OrderUseCase, creds *auth.Credentials, sessions auth.Sessions, mail mailer.Mailer) *StorefrontFacade {
	return &StorefrontFacade{orders: orders, creds: creds, sessions: sessions, mail: mail}
}

// PlaceOrder validates and persists a new PENDING order.
func (f *StorefrontFacade) PlaceOrder(ctx context.Context, order *model.Order) error {
	return f.orders.Place(ctx, order)
}

// Order fetches one order by id.
func (f *StorefrontFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

// Orders lists every order, newest first.
func (f *StorefrontFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// ConfirmOrder records the assigned addresses and flips the order to CONFIRMED.
func (f *StorefrontFacade) ConfirmOrder(ctx context.Context, id, ipv6, ipv4Addr string) error {
	return f.orders.Confirm(ctx, id, ipv6, ipv4Addr)
}

// RemoveOrder drops the order unconditionally.
func (f *StorefrontFacade) RemoveOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

// PrunePendingBefore removes abandoned pending orders older than the cutoff.
func (f *StorefrontFacade) PrunePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.orders.PrunePendingBefore(ctx, cutoff)
}

// Login verifies the admin credential pair and opens a new session.
func (f *StorefrontFacade) Login(login, password string) (string, error) {
	if err := f.creds.Verify(login, password); err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			return "", domainErrors.ErrInvalidCredentials
		}
		return "", err
	}
	return f.sessions.Issue()
}

// Logout revokes the session behind the token. Unknown tokens are ignored.
func (f *StorefrontFacade) Logout(token string) {
	f.sessions.Revoke(token)
}

// ValidateSession reports whether the token belongs to a live admin session.
func (f *StorefrontFacade) ValidateSession(token string) error {
	return f.sessions.Validate(token)
}

// NotifyOrder sends the status-appropriate email for the order. The order
// record is read, never written.
func (f *StorefrontFacade) NotifyOrder(ctx context.Context, id string) (bool, error) {
	order, err := f.orders.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return f.mail.SendOrderNotice(ctx, order)
}
