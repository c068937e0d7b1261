package repository

import (
	"context"
	"time"

	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists a new order. Returns ErrAlreadyExists when the id is taken.
	Create(ctx context.Context, order *model.Order) error
	// GetByID returns the full record or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// ListAll returns every order, most recent first.
	ListAll(ctx context.Context) ([]model.Order, error)
	// Confirm marks the order CONFIRMED and records the assigned addresses.
	// An unknown id is a silent no-op, not an error.
	Confirm(ctx context.Context, id, ipv6 string, ipv4Addr *string) error
	// Delete removes the order. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
	// DeletePendingBefore removes PENDING orders created before the cutoff
	// and reports how many were dropped.
	DeletePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
