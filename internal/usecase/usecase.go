package usecase

import (
	"context"

	"github.com/my-shop/go-backend/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, req *CatalogReq) (*CatalogRes, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	AllProducts(ctx context.Context) ([]domain.Product, error)
}

type CheckoutUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (int64, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) error
	AuthenticateCustomer(ctx context.Context, username, password string) (*domain.User, error)
	AuthenticateAdmin(ctx context.Context, username, password string) error
	EnsureAdminCredential(ctx context.Context) error
}

type AdminUC interface {
	Dashboard(ctx context.Context) (*DashboardRes, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) error
	UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) error
	DeleteProduct(ctx context.Context, id int64) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
	ListImages(ctx context.Context) ([]string, error)
	SaveSettings(ctx context.Context, settings domain.SiteSettings) error
}
