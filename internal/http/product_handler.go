package http

import (
	"net/http"

	"github.com/adarshshan/stationaryPro/internal/catalog"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromContext(r.Context()); !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	respondJSON(w, http.StatusOK, h.catalog.List())
}
