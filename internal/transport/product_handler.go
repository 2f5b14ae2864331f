package transport

import (
	"net/http"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/middleware"
	"pasarku-be/internal/product"
)

// ProductHandler exposes the catalog endpoints. Mutations run behind the
// seller role guard; ownership is checked here against the token identity
// before anything changes.
type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Search handles GET /search?name=&category=.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := product.Filter{
		NameContains:   r.URL.Query().Get("name"),
		CategoryEquals: r.URL.Query().Get("category"),
	}

	products, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), product.CreateParams{
		SellerID:    claims.UserID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// Update handles PUT /products/{id}. Only the owning seller may update.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	id := r.PathValue("id")
	if err := h.checkOwnership(r, id, claims.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, product.UpdateParams{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /products/{id}. Only the owning seller may delete.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, r, auth.ErrMissingToken)
		return
	}

	id := r.PathValue("id")
	if err := h.checkOwnership(r, id, claims.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// checkOwnership answers ErrProductNotFound for an unknown id and
// errNotOwner when the product belongs to a different seller. Nothing is
// mutated until this passes.
func (h *ProductHandler) checkOwnership(r *http.Request, id string, sellerID uint) error {
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	if p.SellerID != sellerID {
		return errNotOwner
	}
	return nil
}
