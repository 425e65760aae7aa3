// Package cart implements the client-resident cart model: pure functions
// over an item slice, each returning a fresh slice so callers never observe
// partial mutation.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/adarshshan/stationaryPro/internal/domain"
)

// Item is a product line in the cart. At most one Item per product id.
type Item struct {
	domain.Product
	Quantity int `json:"quantity"`
}

// Add merges the product into the cart: an existing line's quantity is
// incremented by one, otherwise a new line with quantity 1 is appended.
// Line order is preserved.
func Add(items []Item, p domain.Product) []Item {
	out := clone(items)
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Item{Product: p, Quantity: 1})
}

// Remove drops the line for productID. Removing an absent id is a no-op,
// not an error.
func Remove(items []Item, productID int64) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	return out
}

// UpdateQuantity sets the line's quantity to the given value, even when it
// is zero or negative; the line is retained either way. Absent ids are a
// no-op. Checkout validation is where non-positive quantities get rejected.
func UpdateQuantity(items []Item, productID int64, quantity int) []Item {
	out := clone(items)
	for i := range out {
		if out[i].ID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// Clear returns an empty cart.
func Clear([]Item) []Item {
	return []Item{}
}

// Subtotal is the sum of price times quantity over all lines. Decimal
// arithmetic keeps the displayed and the submitted total identical.
func Subtotal(items []Item) float64 {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

// OrderItems converts the cart to the checkout wire shape.
func OrderItems(items []Item) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.OrderItem{ProductID: it.ID, Quantity: it.Quantity})
	}
	return out
}

func clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
