package repository

import (
	"context"
	"sync"

	"github.com/adarshshan/stationaryPro/internal/domain"
)

// MemoryStore implements UserStore and OrderStore with in-memory storage.
// All state is lost on restart; no durability is promised.
type MemoryStore struct {
	mu            sync.RWMutex
	usersByMobile map[string]domain.User
	orders        []domain.Order // creation order
	orderIndex    map[string]int // orderID -> position in orders
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByMobile: make(map[string]domain.User),
		orderIndex:    make(map[string]int),
	}
}

func (s *MemoryStore) GetByMobile(_ context.Context, mobile string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByMobile[mobile]
	if !exists {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryStore) Create(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByMobile[user.Mobile]; exists {
		return ErrUserExists
	}
	s.usersByMobile[user.Mobile] = user
	return nil
}

func (s *MemoryStore) Append(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderIndex[order.ID] = len(s.orders)
	s.orders = append(s.orders, order)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.orderIndex[orderID]
	if !exists {
		return domain.Order{}, ErrOrderNotFound
	}
	s.orders[idx].Status = status
	return s.orders[idx], nil
}
