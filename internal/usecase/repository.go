package usecase

import (
	"context"

	"github.com/my-shop/go-backend/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context, search, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	CategoryStrings(ctx context.Context) ([]string, error)
	ReferencedByOrders(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type AdminCredentialRepository interface {
	Upsert(ctx context.Context, username, passwordHash string) error
	GetByUsername(ctx context.Context, username string) (*domain.AdminCredential, error)
}

type OrderRepository interface {
	// Create and CreateItems run inside the transaction carried by ctx.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateItems(ctx context.Context, items []domain.OrderItem) error
	// UpdateStatus runs inside the transaction carried by ctx.
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	List(ctx context.Context) ([]domain.Order, error)
	Latest(ctx context.Context, limit int) ([]domain.Order, error)
	Stats(ctx context.Context) (*OrderStats, error)
}

type OutboxRepository interface {
	// Create runs inside the transaction carried by ctx.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
