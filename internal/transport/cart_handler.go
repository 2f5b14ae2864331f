package transport

import (
	"net/http"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/cart"
	"pasarku-be/internal/middleware"
)

// CartHandler exposes the cart endpoints. Every route runs behind the buyer
// role guard; the cart acted on is always the authenticated buyer's own.
type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	// Quantity defaults to 1 when the field is omitted; an explicit
	// zero or negative value is rejected.
	Quantity *int64 `json:"quantity"`
}

type removedResponse struct {
	Removed int64 `json:"removed"`
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	view, err := h.svc.GetCart(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Add handles POST /cart/add.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	line, err := h.svc.AddToCart(r.Context(), cart.AddParams{
		BuyerID:   claims.UserID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, line)
}

// Remove handles DELETE /cart/{productID}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	n, err := h.svc.RemoveFromCart(r.Context(), claims.UserID, r.PathValue("productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, removedResponse{Removed: n})
}

// Clear handles DELETE /cart/clear.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	n, err := h.svc.ClearCart(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, removedResponse{Removed: n})
}
