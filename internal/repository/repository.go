package repository

import (
	"context"
	"errors"

	"github.com/adarshshan/stationaryPro/internal/domain"
)

// Common errors returned by the stores
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists for this mobile")
	ErrOrderNotFound = errors.New("order not found")
)

// UserStore holds user records. A mobile number maps to at most one user
// for the store's lifetime; Create enforces that.
type UserStore interface {
	// GetByMobile returns the user registered for the mobile number
	GetByMobile(ctx context.Context, mobile string) (domain.User, error)

	// Create registers a new user; returns ErrUserExists if the mobile
	// is already taken
	Create(ctx context.Context, user domain.User) error
}

// OrderStore is append-only except for status transitions.
type OrderStore interface {
	// Append stores a new order
	Append(ctx context.Context, order domain.Order) error

	// List returns every order in creation order
	List(ctx context.Context) ([]domain.Order, error)

	// ListByUser returns the user's orders in creation order
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// UpdateStatus sets the order's status and returns the updated record
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error)
}
