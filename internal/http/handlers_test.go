package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adarshshan/stationaryPro/internal/auth"
	"github.com/adarshshan/stationaryPro/internal/cart"
	"github.com/adarshshan/stationaryPro/internal/catalog"
	"github.com/adarshshan/stationaryPro/internal/domain"
	"github.com/adarshshan/stationaryPro/internal/order"
	"github.com/adarshshan/stationaryPro/internal/repository"
)

// --- helpers ---

func newTestRouter(secret string, strict bool) http.Handler {
	store := repository.NewMemoryStore()
	cat := catalog.New()
	tokens := auth.NewTokenManager(secret, time.Hour)
	authService := auth.NewService(store, auth.FixedCodeVerifier{Code: "123456"}, tokens)
	orderService := order.NewService(store, cat, strict)

	return NewRouter(
		NewAuthHandler(authService, 5*time.Second),
		NewProductHandler(cat),
		NewOrdersHandler(orderService, 5*time.Second),
		authService,
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	request := httptest.NewRequest(method, path, &buf)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func loginAs(t *testing.T, router http.Handler, mobile string) (domain.User, string) {
	t.Helper()

	recorder := doJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"mobile": mobile,
		"otp":    "123456",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", recorder.Code, recorder.Body.String())
	}

	var response LoginResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return response.User, response.Token
}

var testAddress = domain.Address{
	Street:  "1 MG Road",
	City:    "Pune",
	State:   "MH",
	Zip:     "411001",
	Country: "India",
}

// --- login ---

func TestLogin_Success(t *testing.T) {
	router := newTestRouter("test-secret", false)

	recorder := doJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"mobile": "9999999999",
		"otp":    "123456",
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	var response LoginResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Message != "Login successful" {
		t.Errorf("expected 'Login successful', got '%s'", response.Message)
	}
	if response.Token == "" {
		t.Error("expected a token")
	}
	if response.User.Mobile != "9999999999" {
		t.Errorf("expected mobile '9999999999', got '%s'", response.User.Mobile)
	}
	if response.User.ID == "" {
		t.Error("expected a user id")
	}
}

func TestLogin_SameMobileKeepsUserID(t *testing.T) {
	router := newTestRouter("test-secret", false)

	first, _ := loginAs(t, router, "9999999999")
	second, _ := loginAs(t, router, "9999999999")

	if first.ID != second.ID {
		t.Errorf("expected same user id, got '%s' and '%s'", first.ID, second.ID)
	}
}

func TestLogin_InvalidOTP(t *testing.T) {
	router := newTestRouter("test-secret", false)

	recorder := doJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"mobile": "9999999999",
		"otp":    "000000",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response MessageResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Message != "Invalid OTP" {
		t.Errorf("expected 'Invalid OTP', got '%s'", response.Message)
	}
}

func TestLogin_InvalidBody(t *testing.T) {
	router := newTestRouter("test-secret", false)

	request := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

// --- bearer auth ---

func TestProtectedRoutes_NoToken(t *testing.T) {
	router := newTestRouter("test-secret", false)

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/products"},
		{"GET", "/api/orders"},
		{"POST", "/api/orders"},
		{"PATCH", "/api/admin/orders/o1/status"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := doJSON(t, router, tt.method, tt.path, "", nil)

			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
			}

			var response MessageResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Message != "Not authorized, no token" {
				t.Errorf("expected 'Not authorized, no token', got '%s'", response.Message)
			}
		})
	}
}

func TestProtectedRoutes_BadToken(t *testing.T) {
	router := newTestRouter("test-secret", false)

	recorder := doJSON(t, router, "GET", "/api/orders", "garbage-token", nil)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var response MessageResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Message != "Not authorized, token failed" {
		t.Errorf("expected 'Not authorized, token failed', got '%s'", response.Message)
	}
}

func TestOrders_NoToken_DisclosesNothing(t *testing.T) {
	router := newTestRouter("test-secret", false)

	// create an order first
	user, token := loginAs(t, router, "9999999999")
	recorder := doJSON(t, router, "POST", "/api/orders", token, CreateOrderRequestDTO{
		UserID:  user.ID,
		Items:   []domain.OrderItem{{ProductID: 1, Quantity: 1}},
		Total:   5.99,
		Address: testAddress,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("order creation failed: %d", recorder.Code)
	}

	recorder = doJSON(t, router, "GET", "/api/orders", "", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
	if bytes.Contains(recorder.Body.Bytes(), []byte(user.ID)) {
		t.Error("unauthorized response must not leak order data")
	}
}

func TestProtectedRoutes_MissingSigningKey(t *testing.T) {
	// token minted while a key existed, verified by a server without one
	signed := newTestRouter("test-secret", false)
	_, token := loginAs(t, signed, "9999999999")

	unsigned := newTestRouter("", false)
	recorder := doJSON(t, unsigned, "GET", "/api/products", token, nil)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, recorder.Code)
	}

	var response MessageResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Message != "Server configuration error: JWT secret not found." {
		t.Errorf("unexpected message '%s'", response.Message)
	}
}

// --- products ---

func TestProducts_List(t *testing.T) {
	router := newTestRouter("test-secret", false)
	_, token := loginAs(t, router, "9999999999")

	recorder := doJSON(t, router, "GET", "/api/products", token, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	var products []domain.Product
	if err := json.NewDecoder(recorder.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	if products[0].Name != "Ballpoint Pens" {
		t.Errorf("expected 'Ballpoint Pens', got '%s'", products[0].Name)
	}
}

// --- orders ---

func TestOrders_EmptyList(t *testing.T) {
	router := newTestRouter("test-secret", false)
	_, token := loginAs(t, router, "9999999999")

	recorder := doJSON(t, router, "GET", "/api/orders", token, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	// Must be a JSON array, not null
	var raw json.RawMessage
	if err := json.Unmarshal(recorder.Body.Bytes(), &raw); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		t.Error("expected empty JSON array [], got null")
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	router := newTestRouter("test-secret", false)
	user, token := loginAs(t, router, "9999999999")

	tests := []struct {
		name string
		body CreateOrderRequestDTO
	}{
		{"empty items", CreateOrderRequestDTO{UserID: user.ID, Address: testAddress}},
		{"zero quantity", CreateOrderRequestDTO{
			UserID:  user.ID,
			Items:   []domain.OrderItem{{ProductID: 1, Quantity: 0}},
			Address: testAddress,
		}},
		{"missing city", CreateOrderRequestDTO{
			UserID: user.ID,
			Items:  []domain.OrderItem{{ProductID: 1, Quantity: 1}},
			Total:  5.99,
			Address: domain.Address{
				Street: "1 MG Road", State: "MH", Zip: "411001", Country: "India",
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doJSON(t, router, "POST", "/api/orders", token, tt.body)

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response MessageResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Message == "" {
				t.Error("expected a message field")
			}
		})
	}
}

func TestCreateOrder_StrictMode(t *testing.T) {
	router := newTestRouter("test-secret", true)
	user, token := loginAs(t, router, "9999999999")

	// total does not match the catalog price
	recorder := doJSON(t, router, "POST", "/api/orders", token, CreateOrderRequestDTO{
		UserID:  user.ID,
		Items:   []domain.OrderItem{{ProductID: 1, Quantity: 2}},
		Total:   1.00,
		Address: testAddress,
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	// unknown product id
	recorder = doJSON(t, router, "POST", "/api/orders", token, CreateOrderRequestDTO{
		UserID:  user.ID,
		Items:   []domain.OrderItem{{ProductID: 999, Quantity: 1}},
		Total:   5.99,
		Address: testAddress,
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	router := newTestRouter("test-secret", false)
	user, token := loginAs(t, router, "9999999999")

	recorder := doJSON(t, router, "POST", "/api/orders", token, CreateOrderRequestDTO{
		UserID:  user.ID,
		Items:   []domain.OrderItem{{ProductID: 1, Quantity: 1}},
		Total:   5.99,
		Address: testAddress,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("order creation failed: %d", recorder.Code)
	}
	var created domain.Order
	json.NewDecoder(recorder.Body).Decode(&created)

	recorder = doJSON(t, router, "PATCH", "/api/admin/orders/"+created.ID+"/status", token,
		UpdateStatusRequestDTO{Status: domain.OrderStatusShipped})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	var updated domain.Order
	json.NewDecoder(recorder.Body).Decode(&updated)
	if updated.Status != domain.OrderStatusShipped {
		t.Errorf("expected status 'Shipped', got '%s'", updated.Status)
	}

	// unknown status
	recorder = doJSON(t, router, "PATCH", "/api/admin/orders/"+created.ID+"/status", token,
		UpdateStatusRequestDTO{Status: "Lost"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	// unknown order
	recorder = doJSON(t, router, "PATCH", "/api/admin/orders/missing/status", token,
		UpdateStatusRequestDTO{Status: domain.OrderStatusShipped})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

// --- end to end ---

func TestCheckoutScenario(t *testing.T) {
	router := newTestRouter("test-secret", false)
	cat := catalog.New()

	// login
	user, token := loginAs(t, router, "9999999999")

	// build the cart client-side: product 1 added twice merges to one line
	pens, _ := cat.Get(1)
	items := cart.Add(cart.Add(nil, pens), pens)
	if len(items) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}

	// checkout
	recorder := doJSON(t, router, "POST", "/api/orders", token, CreateOrderRequestDTO{
		UserID:  user.ID,
		Items:   cart.OrderItems(items),
		Total:   cart.Subtotal(items),
		Address: testAddress,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	var created domain.Order
	if err := json.NewDecoder(recorder.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Total != 2*pens.Price {
		t.Errorf("expected total %f, got %f", 2*pens.Price, created.Total)
	}
	if created.Status != domain.OrderStatusPending {
		t.Errorf("expected status 'Pending', got '%s'", created.Status)
	}
	if created.Address != testAddress {
		t.Errorf("address mismatch: %+v", created.Address)
	}
	if len(created.Items) != 1 || created.Items[0].ProductID != 1 || created.Items[0].Quantity != 2 {
		t.Errorf("items mismatch: %+v", created.Items)
	}

	// the admin view sees the order
	recorder = doJSON(t, router, "GET", "/api/orders", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var orders []domain.Order
	if err := json.NewDecoder(recorder.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != created.ID {
		t.Errorf("expected order '%s', got '%s'", created.ID, orders[0].ID)
	}
}
