// Package client is the collaborator side of the API: it holds the
// client-resident cart, keeps auth and cart state in durable local storage
// and talks to the backend over HTTP JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adarshshan/stationaryPro/internal/cart"
	"github.com/adarshshan/stationaryPro/internal/domain"
)

var ErrNotLoggedIn = errors.New("not logged in")

type authState struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

type cartState struct {
	Items []cart.Item `json:"items"`
}

type Client struct {
	baseURL string
	http    *http.Client
	store   *LocalStore

	auth authState
	cart cartState
}

// New builds a client and restores any persisted auth and cart state.
func New(baseURL string, store *LocalStore) (*Client, error) {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
	if err := store.Load(AuthStorageKey, &c.auth); err != nil && !errors.Is(err, ErrNoState) {
		return nil, err
	}
	if err := store.Load(CartStorageKey, &c.cart); err != nil && !errors.Is(err, ErrNoState) {
		return nil, err
	}
	return c, nil
}

func (c *Client) LoggedIn() bool {
	return c.auth.Token != ""
}

func (c *Client) User() domain.User {
	return c.auth.User
}

// Login exchanges the mobile number and one-time code for a credential and
// persists it.
func (c *Client) Login(ctx context.Context, mobile, otp string) (domain.User, error) {
	body := map[string]string{"mobile": mobile, "otp": otp}
	var resp struct {
		Message string      `json:"message"`
		User    domain.User `json:"user"`
		Token   string      `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, http.StatusOK, &resp); err != nil {
		return domain.User{}, err
	}

	c.auth = authState{User: resp.User, Token: resp.Token}
	if err := c.store.Save(AuthStorageKey, c.auth); err != nil {
		return domain.User{}, err
	}
	return resp.User, nil
}

// Logout drops the credential; the cart is untouched.
func (c *Client) Logout() error {
	c.auth = authState{}
	return c.store.Delete(AuthStorageKey)
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, http.StatusOK, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, http.StatusOK, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Cart returns a copy of the current cart contents.
func (c *Client) Cart() []cart.Item {
	out := make([]cart.Item, len(c.cart.Items))
	copy(out, c.cart.Items)
	return out
}

func (c *Client) Subtotal() float64 {
	return cart.Subtotal(c.cart.Items)
}

func (c *Client) AddToCart(p domain.Product) error {
	return c.setCart(cart.Add(c.cart.Items, p))
}

func (c *Client) RemoveFromCart(productID int64) error {
	return c.setCart(cart.Remove(c.cart.Items, productID))
}

func (c *Client) UpdateQuantity(productID int64, quantity int) error {
	return c.setCart(cart.UpdateQuantity(c.cart.Items, productID, quantity))
}

func (c *Client) ClearCart() error {
	return c.setCart(cart.Clear(c.cart.Items))
}

// Checkout submits the cart snapshot with the delivery address. On success
// the cart is cleared; on failure it stays intact for retry.
func (c *Client) Checkout(ctx context.Context, address domain.Address) (domain.Order, error) {
	if !c.LoggedIn() {
		return domain.Order{}, ErrNotLoggedIn
	}

	body := map[string]interface{}{
		"userId":  c.auth.User.ID,
		"items":   cart.OrderItems(c.cart.Items),
		"total":   cart.Subtotal(c.cart.Items),
		"address": address,
	}
	var created domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", body, http.StatusCreated, &created); err != nil {
		return domain.Order{}, err
	}

	if err := c.setCart(cart.Clear(c.cart.Items)); err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (c *Client) setCart(items []cart.Item) error {
	c.cart.Items = items
	return c.store.Save(CartStorageKey, c.cart)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request failed: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.auth.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, msg.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response failed: %w", err)
		}
	}
	return nil
}
