package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/cart"
	"pasarku-be/internal/middleware"
	"pasarku-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartService is a mock implementation of cart.Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, buyerID uint) (cart.CartView, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).(cart.CartView), args.Error(1)
}

func (m *MockCartService) AddToCart(ctx context.Context, params cart.AddParams) (cart.CartLine, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(cart.CartLine), args.Error(1)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, buyerID uint, productID string) (int64, error) {
	args := m.Called(ctx, buyerID, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, buyerID uint) (int64, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).(int64), args.Error(1)
}

func buyerRequest(method, target, body string, buyerID uint) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	claims := &auth.Claims{UserID: buyerID, Email: "buyer@example.com", Role: user.RoleBuyer}
	return req.WithContext(middleware.WithClaims(req.Context(), claims))
}

func TestCartHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("GetCart", mock.Anything, uint(1)).Return(cart.CartView{
			CartID: 7,
			Lines: []cart.ValuedLine{{
				ProductID: "prod-1", Name: "Beras Premium",
				Price: 100, Discount: 10, Quantity: 2,
				DiscountAmount: 10, UnitPrice: 90, LineTotal: 180,
			}},
			Total: 180,
		}, nil)

		req := buyerRequest("GET", "/cart", "", 1)
		w := httptest.NewRecorder()

		h.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"line_total":180`)
		assert.Contains(t, w.Body.String(), `"total":180`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Error - no cart yet", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("GetCart", mock.Anything, uint(1)).
			Return(cart.CartView{}, cart.ErrCartNotFound)

		req := buyerRequest("GET", "/cart", "", 1)
		w := httptest.NewRecorder()

		h.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error - no claims in context", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		req := httptest.NewRequest("GET", "/cart", nil)
		w := httptest.NewRecorder()

		h.Get(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockSvc.AssertNotCalled(t, "GetCart")
	})
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("AddToCart", mock.Anything, cart.AddParams{BuyerID: 1, ProductID: "prod-1", Quantity: 2}).
			Return(cart.CartLine{ID: 11, CartID: 7, ProductID: "prod-1", Quantity: 2}, nil)

		req := buyerRequest("POST", "/cart/add", `{"product_id":"prod-1","quantity":2}`, 1)
		w := httptest.NewRecorder()

		h.Add(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Success - omitted quantity defaults to one", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("AddToCart", mock.Anything, cart.AddParams{BuyerID: 1, ProductID: "prod-1", Quantity: 1}).
			Return(cart.CartLine{ID: 11, CartID: 7, ProductID: "prod-1", Quantity: 1}, nil)

		req := buyerRequest("POST", "/cart/add", `{"product_id":"prod-1"}`, 1)
		w := httptest.NewRecorder()

		h.Add(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Error - explicit zero quantity is rejected", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("AddToCart", mock.Anything, cart.AddParams{BuyerID: 1, ProductID: "prod-1", Quantity: 0}).
			Return(cart.CartLine{}, cart.ErrInvalidQuantity)

		req := buyerRequest("POST", "/cart/add", `{"product_id":"prod-1","quantity":0}`, 1)
		w := httptest.NewRecorder()

		h.Add(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error - unknown product is invalid input, not 404", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("AddToCart", mock.Anything, mock.Anything).
			Return(cart.CartLine{}, cart.ErrProductNotFound)

		req := buyerRequest("POST", "/cart/add", `{"product_id":"missing"}`, 1)
		w := httptest.NewRecorder()

		h.Add(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error - malformed body", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		req := buyerRequest("POST", "/cart/add", "{broken", 1)
		w := httptest.NewRecorder()

		h.Add(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "AddToCart")
	})
}

func TestCartHandler_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("RemoveFromCart", mock.Anything, uint(1), "prod-1").Return(int64(1), nil)

		req := buyerRequest("DELETE", "/cart/prod-1", "", 1)
		req.SetPathValue("productID", "prod-1")
		w := httptest.NewRecorder()

		h.Remove(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"removed":1`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Error - absent line is 404, not 500", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("RemoveFromCart", mock.Anything, uint(1), "missing").
			Return(int64(0), cart.ErrLineNotFound)

		req := buyerRequest("DELETE", "/cart/missing", "", 1)
		req.SetPathValue("productID", "missing")
		w := httptest.NewRecorder()

		h.Remove(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_Clear(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("ClearCart", mock.Anything, uint(1)).Return(int64(3), nil)

		req := buyerRequest("DELETE", "/cart/clear", "", 1)
		w := httptest.NewRecorder()

		h.Clear(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"removed":3`)
	})

	t.Run("Success - empty cart clears to zero", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("ClearCart", mock.Anything, uint(1)).Return(int64(0), nil)

		req := buyerRequest("DELETE", "/cart/clear", "", 1)
		w := httptest.NewRecorder()

		h.Clear(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"removed":0`)
	})

	t.Run("Error - buyer without a cart", func(t *testing.T) {
		mockSvc := new(MockCartService)
		h := NewCartHandler(mockSvc)

		mockSvc.On("ClearCart", mock.Anything, uint(1)).
			Return(int64(0), cart.ErrCartNotFound)

		req := buyerRequest("DELETE", "/cart/clear", "", 1)
		w := httptest.NewRecorder()

		h.Clear(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
