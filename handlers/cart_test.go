package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wednest/models"
	"wednest/services/cart"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartService struct {
	view        *models.CartView
	checkout    *models.CheckoutView
	addErr      error
	removeErr   error
	aggregated  bool
	addedVendor string
}

func (f *fakeCartService) AggregateCart(ctx context.Context, sess *models.Session) (*models.CartView, error) {
	f.aggregated = true
	return f.view, nil
}

func (f *fakeCartService) Checkout(ctx context.Context, sess *models.Session) (*models.CheckoutView, error) {
	return f.checkout, nil
}

func (f *fakeCartService) AddVendor(ctx context.Context, sess *models.Session, vendorID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.addedVendor = vendorID
	return nil
}

func (f *fakeCartService) RemoveVendor(ctx context.Context, sess *models.Session, vendorID string) error {
	return f.removeErr
}

// withSession places an authenticated couple session in the context the way
// the auth middleware does.
func withSession(sess *models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", sess)
		c.Next()
	}
}

func cartRouter(svc cart.Service, sess *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCartHandler(svc)
	r := gin.New()
	group := r.Group("/api")
	if sess != nil {
		group.Use(withSession(sess))
	}
	group.GET("/cart/:coupleId", h.GetCartHandler)
	group.POST("/cart/add", h.AddToCartHandler)
	group.DELETE("/cart/remove", h.RemoveFromCartHandler)
	group.POST("/checkout/:coupleId/pay", h.ConfirmPaymentHandler)
	return r
}

func coupleSess() *models.Session {
	return &models.Session{UserID: "couple-1", AuthToken: "tok", Role: models.RoleCouple}
}

func TestGetCartHandler(t *testing.T) {
	svc := &fakeCartService{view: &models.CartView{TotalCost: 300}}
	r := cartRouter(svc, coupleSess())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/couple-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.aggregated)

	var body struct {
		Status string          `json:"status"`
		Data   models.CartView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 300.0, body.Data.TotalCost)
}

func TestGetCartHandlerRejectsOtherCouple(t *testing.T) {
	svc := &fakeCartService{view: &models.CartView{}}
	r := cartRouter(svc, coupleSess())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/couple-2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, svc.aggregated)
}

func TestGetCartHandlerRequiresSession(t *testing.T) {
	svc := &fakeCartService{view: &models.CartView{}}
	r := cartRouter(svc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/couple-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddToCartHandler(t *testing.T) {
	t.Run("adds a vendor", func(t *testing.T) {
		svc := &fakeCartService{}
		r := cartRouter(svc, coupleSess())

		payload := bytes.NewBufferString(`{"vendor_id":"v1"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", payload)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "v1", svc.addedVendor)
	})

	t.Run("rejects a missing vendor id", func(t *testing.T) {
		svc := &fakeCartService{}
		r := cartRouter(svc, coupleSess())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps duplicate vendor to conflict", func(t *testing.T) {
		svc := &fakeCartService{addErr: cart.ErrDuplicateVendor}
		r := cartRouter(svc, coupleSess())

		payload := bytes.NewBufferString(`{"vendor_id":"v1"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", payload)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRemoveFromCartHandlerLockedEntry(t *testing.T) {
	svc := &fakeCartService{removeErr: cart.ErrEntryLocked}
	r := cartRouter(svc, coupleSess())

	payload := bytes.NewBufferString(`{"vendor_id":"v1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/remove", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmPaymentHandler(t *testing.T) {
	t.Run("confirms locked entries", func(t *testing.T) {
		svc := &fakeCartService{checkout: &models.CheckoutView{
			Entries:   []models.AggregatedCartEntry{{Price: 1000}},
			TotalCost: 1000,
		}}
		r := cartRouter(svc, coupleSess())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkout/couple-1/pay", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Order Confirmed")
	})

	t.Run("rejects an empty locked set", func(t *testing.T) {
		svc := &fakeCartService{checkout: &models.CheckoutView{}}
		r := cartRouter(svc, coupleSess())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkout/couple-1/pay", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No locked services to checkout.")
	})
}
