package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adarshshan/stationaryPro/internal/auth"
	"github.com/adarshshan/stationaryPro/internal/catalog"
	"github.com/adarshshan/stationaryPro/internal/domain"
	"github.com/adarshshan/stationaryPro/internal/repository"
)

// Service converts cart snapshots into persisted orders and lists them.
//
// By default the client-computed total and product ids are trusted, and
// listing returns every order system-wide; both are deliberate demo gaps.
// Strict mode recomputes the total from catalog prices, rejects unknown
// product ids, and scopes listing to the caller's own orders.
type Service struct {
	orders  repository.OrderStore
	catalog *catalog.Catalog
	strict  bool
}

func NewService(orders repository.OrderStore, cat *catalog.Catalog, strict bool) *Service {
	return &Service{
		orders:  orders,
		catalog: cat,
		strict:  strict,
	}
}

// Create validates the checkout input, then stores and returns a new order
// with a fresh id and Pending status. Items and address are stored verbatim.
// Nothing is written until every check has passed.
func (s *Service) Create(ctx context.Context, userID string, items []domain.OrderItem, total float64, address domain.Address) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: items", ErrMissingField)
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: product %d", ErrNonPositiveQuantity, it.ProductID)
		}
	}
	if err := validateAddress(address); err != nil {
		return domain.Order{}, err
	}

	if s.strict {
		if err := s.checkAgainstCatalog(items, total); err != nil {
			return domain.Order{}, err
		}
	}

	order := domain.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     append([]domain.OrderItem(nil), items...),
		Total:     total,
		Address:   address,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orders.Append(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// List returns orders in creation order: all of them by default, only the
// caller's own in strict mode.
func (s *Service) List(ctx context.Context, ident auth.Identity) ([]domain.Order, error) {
	if s.strict {
		return s.orders.ListByUser(ctx, ident.UserID)
	}
	return s.orders.List(ctx)
}

// UpdateStatus is the administrative status transition.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return domain.Order{}, fmt.Errorf("%w: %q", ErrBadStatus, status)
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

func validateAddress(address domain.Address) error {
	fields := []struct {
		name  string
		value string
	}{
		{"street", address.Street},
		{"city", address.City},
		{"state", address.State},
		{"zip", address.Zip},
		{"country", address.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: address.%s", ErrMissingField, f.name)
		}
	}
	return nil
}

func (s *Service) checkAgainstCatalog(items []domain.OrderItem, total float64) error {
	want := decimal.Zero
	for _, it := range items {
		p, ok := s.catalog.Get(it.ProductID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownProduct, it.ProductID)
		}
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		want = want.Add(line)
	}
	if !want.Equal(decimal.NewFromFloat(total)) {
		return fmt.Errorf("%w: got %v, want %v", ErrTotalMismatch, total, want)
	}
	return nil
}
