package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	checkoutUC usecase.CheckoutUC,
	authUC usecase.AuthUC,
	adminUC usecase.AdminUC,
	sessions *SessionManager,
	images *cfg.ImagesCfg,
) {
	r.router.Use(chimiddleware.Recoverer)
	r.router.Use(sessions.Middleware)

	catalog := NewCatalogHandler(catalogUC, sessions, r.logger)
	checkout := NewCheckoutHandler(checkoutUC, catalogUC, sessions, r.logger)
	auth := NewAuthHandler(authUC, sessions, r.logger)
	admin := NewAdminHandler(adminUC, catalogUC, sessions, r.logger)

	registerStorefrontRoutes(r.router, catalog)
	registerCheckoutRoutes(r.router, checkout, sessions)
	registerAuthRoutes(r.router, auth)
	registerAdminRoutes(r.router, admin, sessions)

	fileServer := http.StripPrefix(images.PublicPrefix, http.FileServer(http.Dir(images.Dir)))
	r.router.Get(images.PublicPrefix+"/*", fileServer.ServeHTTP)
}

func registerStorefrontRoutes(router chi.Router, catalog *CatalogHandler) {
	router.Get("/", catalog.home)
	router.Get("/product/{id}", catalog.productDetail)
	router.Get("/cart", catalog.cart)
}

func registerCheckoutRoutes(router chi.Router, checkout *CheckoutHandler, sessions *SessionManager) {
	router.Group(func(gated chi.Router) {
		gated.Use(sessions.RequireCustomer)
		gated.Get("/checkout", checkout.checkoutForm)
		gated.Post("/checkout", checkout.placeOrder)
	})

	// Owner-or-admin, so it cannot sit behind the customer guard.
	router.Get("/checkout/success/{orderID}", checkout.orderSuccess)
}

func registerAuthRoutes(router chi.Router, auth *AuthHandler) {
	router.Get("/register", auth.registerForm)
	router.Post("/register", auth.register)

	router.Get("/user-login", auth.customerLoginForm)
	router.Post("/user-login", auth.customerLogin)
	// legacy alias
	router.Get("/customer-login", auth.customerLoginForm)
	router.Post("/customer-login", auth.customerLogin)
	router.Get("/user-logout", auth.customerLogout)

	router.Get("/login", auth.adminLoginForm)
	router.Post("/login", auth.adminLogin)
	// legacy alias
	router.Get("/admin-login", auth.adminLoginForm)
	router.Post("/admin-login", auth.adminLogin)
	router.Get("/logout", auth.adminLogout)
}

func registerAdminRoutes(router chi.Router, admin *AdminHandler, sessions *SessionManager) {
	router.Route("/admin", func(ar chi.Router) {
		ar.Use(sessions.RequireAdmin)

		ar.Get("/", admin.adminRoot)
		ar.Get("/dashboard", admin.dashboard)

		ar.Get("/products", admin.productsSection)
		ar.Get("/products/new", admin.newProductForm)
		ar.Post("/products/new", admin.createProduct)
		ar.Get("/products/{id}/edit", admin.editProductForm)
		ar.Post("/products/{id}/edit", admin.updateProduct)
		ar.Post("/products/{id}/delete", admin.deleteProduct)

		// legacy aliases
		ar.Post("/add", admin.createProduct)
		ar.Get("/edit/{id}", admin.editProductForm)
		ar.Post("/edit/{id}", admin.updateProduct)
		ar.Post("/delete/{id}", admin.deleteProduct)

		ar.Get("/orders", admin.ordersSection)
		ar.Post("/orders/{id}/status", admin.updateOrderStatus)
		ar.Get("/users", admin.usersSection)

		ar.Get("/static-images", admin.staticImages)
		ar.Post("/settings", admin.saveSettings)
	})
}
