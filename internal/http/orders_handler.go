package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adarshshan/stationaryPro/internal/domain"
	"github.com/adarshshan/stationaryPro/internal/order"
	"github.com/adarshshan/stationaryPro/internal/repository"
)

type OrdersHandler struct {
	orders  *order.Service
	timeout time.Duration
}

func NewOrdersHandler(orders *order.Service, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		timeout: timeout,
	}
}

type CreateOrderRequestDTO struct {
	UserID  string             `json:"userId"`
	Items   []domain.OrderItem `json:"items"`
	Total   float64            `json:"total"`
	Address domain.Address     `json:"address"`
}

type UpdateStatusRequestDTO struct {
	Status domain.OrderStatus `json:"status"`
}

// GET /api/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ident, ok := identityFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	orders, err := h.orders.List(ctx, ident)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	if orders == nil {
		// serialise as [] not null
		orders = []domain.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

// POST /api/orders
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, ok := identityFromContext(r.Context()); !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.orders.Create(ctx, req.UserID, req.Items, req.Total, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingField),
			errors.Is(err, order.ErrNonPositiveQuantity),
			errors.Is(err, order.ErrUnknownProduct),
			errors.Is(err, order.ErrTotalMismatch):
			respondMessage(w, http.StatusBadRequest, err.Error())
		default:
			respondMessage(w, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// PATCH /api/admin/orders/{order_id}/status
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, ok := identityFromContext(r.Context()); !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		respondMessage(w, http.StatusBadRequest, "order_id is required")
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.orders.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrBadStatus):
			respondMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrOrderNotFound):
			respondMessage(w, http.StatusNotFound, "Order not found")
		default:
			respondMessage(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
