package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	catalogUsecase  usecase.CatalogUC
	sessions        *SessionManager
	logger          logger.Logger
}

func NewCheckoutHandler(
	checkoutUsecase usecase.CheckoutUC,
	catalogUsecase usecase.CatalogUC,
	sessions *SessionManager,
	logger logger.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUsecase: checkoutUsecase,
		catalogUsecase:  catalogUsecase,
		sessions:        sessions,
		logger:          logger,
	}
}

// checkoutForm serves the data the checkout page renders against. The cart
// contents stay client-side until submission.
func (c *CheckoutHandler) checkoutForm(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalogUsecase.AllProducts(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":  products,
		"principal": c.sessions.Principal(r),
		"flash":     c.sessions.PopFlash(w, r),
	})
}

// placeOrder turns the submitted cart payload into a persisted order. The
// cart is a client-side intent only: prices always come from storage.
func (c *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	principal := c.sessions.Principal(r)
	req := usecase.NewPlaceOrderReq(
		principal.UserID,
		r.FormValue("customer_name"),
		r.FormValue("address"),
		r.FormValue("phone"),
		r.FormValue("payment_method"),
		r.FormValue("cart_payload"),
	)

	orderID, err := c.checkoutUsecase.PlaceOrder(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		switch {
		case errors.Is(err, e.ErrMissingFields):
			c.sessions.Flash(w, r, "Please fill in all required fields.")
			seeOther(w, r, "/checkout")
		case errors.Is(err, e.ErrEmptyCart):
			c.sessions.Flash(w, r, "Your cart is empty.")
			seeOther(w, r, "/cart")
		case errors.Is(err, e.ErrNoValidItems):
			c.sessions.Flash(w, r, "No valid items in your cart.")
			seeOther(w, r, "/cart")
		default:
			WriteError(w, err)
		}
		return
	}

	seeOther(w, r, fmt.Sprintf("/checkout/success/%d", orderID))
}

// orderSuccess shows a placed order to its owner or to an admin. Anyone else
// is bounced to the storefront without leaking whether the order exists.
func (c *CheckoutHandler) orderSuccess(w http.ResponseWriter, r *http.Request) {
	principal := c.sessions.Principal(r)
	if principal.IsAnonymous() {
		c.sessions.Flash(w, r, "Please log in to continue.")
		seeOther(w, r, "/user-login?next="+url.QueryEscape(r.URL.RequestURI()))
		return
	}

	orderID, err := parseID(chi.URLParam(r, "orderID"))
	if err != nil {
		WriteError(w, err)
		return
	}

	order, items, err := c.checkoutUsecase.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			seeOther(w, r, "/")
			return
		}

		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if order.UserID != principal.UserID && !principal.IsAdmin() {
		seeOther(w, r, "/")
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order":     order,
		"items":     items,
		"principal": principal,
	})
}
