package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[string]*model.Order
	Err    error
	clock  time.Time
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[string]*model.Order),
		clock:  time.Unix(1700000000, 0).UTC(),
	}
}

// Create persists the order unless the id is taken or an explicit error is set.
// Each insert gets a strictly later created_at so list ordering is observable.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	if _, exists := s.Orders[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	s.clock = s.clock.Add(time.Second)
	order.Status = model.OrderStatusPending
	order.CreatedAt = s.clock
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

// GetByID returns a copy of the stored record or ErrNotFound.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order := *stored
	return &order, nil
}

// ListAll returns copies of every record, newest first.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.Orders))
	for _, stored := range s.Orders {
		result = append(result, *stored)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Confirm updates status and addresses; unknown ids are silently ignored.
func (s *OrderRepositoryStub) Confirm(ctx context.Context, id, ipv6 string, ipv4Addr *string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.Orders[id]
	if !ok {
		return nil
	}
	stored.Status = model.OrderStatusConfirmed
	v6 := ipv6
	stored.IPv6 = &v6
	stored.IPv4Addr = ipv4Addr
	return nil
}

// Delete removes the record when present.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Orders, id)
	return nil
}

// DeletePendingBefore drops pending records older than cutoff.
func (s *OrderRepositoryStub) DeletePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var dropped int64
	for id, stored := range s.Orders {
		if stored.Status == model.OrderStatusPending && stored.CreatedAt.Before(cutoff) {
			delete(s.Orders, id)
			dropped++
		}
	}
	return dropped, nil
}
