package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkoutRecorder captures the request placeOrder hands to the usecase.
type checkoutRecorder struct {
	req     *usecase.PlaceOrderReq
	orderID int64
	err     error
}

func (c *checkoutRecorder) PlaceOrder(_ context.Context, req *usecase.PlaceOrderReq) (int64, error) {
	c.req = req
	return c.orderID, c.err
}

func (c *checkoutRecorder) GetOrder(_ context.Context, _ int64) (*domain.Order, []domain.OrderItem, error) {
	return nil, nil, e.ErrNotFound
}

func postCheckout(t *testing.T, store *memorySessionStore, uc *checkoutRecorder, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	manager := newTestSessionManager(store)
	handler := NewCheckoutHandler(uc, nil, manager, logger.NewSlogLogger())

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})

	rec := httptest.NewRecorder()
	manager.Middleware(http.HandlerFunc(handler.placeOrder)).ServeHTTP(rec, req)
	return rec
}

func checkoutForm(cartPayload string) url.Values {
	return url.Values{
		"customer_name":  {"Alice"},
		"address":        {"1 Main St"},
		"phone":          {"0812345678"},
		"payment_method": {"PromptPay QR"},
		"cart_payload":   {cartPayload},
	}
}

func TestPlaceOrderSubmitsCartPayload(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7, UserName: "alice"}}
	uc := &checkoutRecorder{orderID: 42}

	rec := postCheckout(t, store, uc, checkoutForm(`[{"id":1,"qty":2}]`))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/checkout/success/42", rec.Header().Get("Location"))

	require.NotNil(t, uc.req)
	assert.Equal(t, `[{"id":1,"qty":2}]`, uc.req.CartPayload)
	assert.Equal(t, int64(7), uc.req.UserID)
	assert.Equal(t, "Alice", uc.req.CustomerName)
}

func TestPlaceOrderEmptyCartFlash(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7}}
	uc := &checkoutRecorder{err: e.ErrEmptyCart}

	rec := postCheckout(t, store, uc, checkoutForm(""))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))

	saved := store.sessions["tok"]
	require.NotNil(t, saved)
	assert.Equal(t, "Your cart is empty.", saved.Flash)
}

func TestPlaceOrderNoValidItemsFlash(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7}}
	uc := &checkoutRecorder{err: e.ErrNoValidItems}

	rec := postCheckout(t, store, uc, checkoutForm(`[{"id":999,"qty":1}]`))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))

	saved := store.sessions["tok"]
	require.NotNil(t, saved)
	assert.Equal(t, "No valid items in your cart.", saved.Flash)
}
