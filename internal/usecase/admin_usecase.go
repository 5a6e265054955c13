package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
)

// AdminUseCase implements the admin mutation surface: product CRUD, order
// status transitions, the dashboard aggregate and site settings.
type AdminUseCase struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	userRepo    UserRepository
	outboxRepo  OutboxRepository
	imageStore  ImageStore
	settings    SettingsStore
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewAdminUC(
	productRepo ProductRepository,
	orderRepo OrderRepository,
	userRepo UserRepository,
	outboxRepo OutboxRepository,
	imageStore ImageStore,
	settings SettingsStore,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		imageStore:  imageStore,
		settings:    settings,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Dashboard assembles the admin dashboard aggregate.
func (a *AdminUseCase) Dashboard(ctx context.Context) (*DashboardRes, error) {
	const op = "AdminUseCase.Dashboard"

	stats, err := a.orderRepo.Stats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	productCount, err := a.productRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	userCount, err := a.userRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	latest, err := a.orderRepo.Latest(ctx, 5)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := a.productRepo.List(ctx, "", "")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := a.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	users, err := a.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &DashboardRes{
		Stats:        *stats,
		ProductCount: productCount,
		UserCount:    userCount,
		LatestOrders: latest,
		Products:     products,
		Orders:       orders,
		Users:        users,
	}, nil
}

// CreateProduct validates and stores a new product. The category input is
// normalized to the storage format before the write.
func (a *AdminUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) error {
	const op = "AdminUseCase.CreateProduct"

	if err := a.validateProduct(req); err != nil {
		return e.Wrap(op, err)
	}

	product := &domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Description: strings.TrimSpace(req.Description),
		Category:    domain.NormalizeCategory(req.Category),
		Rating:      req.Rating,
		ReviewText:  strings.TrimSpace(req.ReviewText),
		Stock:       req.Stock,
		IsNew:       req.IsNew,
		IsSale:      req.IsSale,
	}

	if err := a.applyUploadedImage(ctx, product, req.Image); err != nil {
		return e.Wrap(op, err)
	}

	id, err := a.productRepo.Create(ctx, product)
	if err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("product %d created: %s", id, product.Name)
	return nil
}

// UpdateProduct applies an admin edit to an existing product.
func (a *AdminUseCase) UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) error {
	const op = "AdminUseCase.UpdateProduct"

	if err := a.validateProduct(req); err != nil {
		return e.Wrap(op, err)
	}

	product, err := a.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Price = req.Price
	product.ImageURL = strings.TrimSpace(req.ImageURL)
	product.Description = strings.TrimSpace(req.Description)
	product.Category = domain.NormalizeCategory(req.Category)
	product.Rating = req.Rating
	product.ReviewText = strings.TrimSpace(req.ReviewText)
	product.Stock = req.Stock
	product.IsNew = req.IsNew
	product.IsSale = req.IsSale

	if err := a.applyUploadedImage(ctx, product, req.Image); err != nil {
		return e.Wrap(op, err)
	}

	if err := a.productRepo.Update(ctx, product); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("product %d updated", id)
	return nil
}

// DeleteProduct removes a product. Deletion is blocked while historical
// order items still reference the product.
func (a *AdminUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "AdminUseCase.DeleteProduct"

	referenced, err := a.productRepo.ReferencedByOrders(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if referenced {
		return e.Wrap(op, e.ErrProductReferenced)
	}

	if err := a.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("product %d deleted", id)
	return nil
}

// UpdateOrderStatus moves an order to one of the allowed statuses and
// enqueues a status-changed event in the same transaction. Any other value
// is rejected without touching the row.
func (a *AdminUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	const op = "AdminUseCase.UpdateOrderStatus"

	parsed, ok := domain.ParseOrderStatus(strings.TrimSpace(status))
	if !ok {
		return e.Wrap(op, e.ErrInvalidStatus)
	}

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = a.orderRepo.UpdateStatus(ctx, orderID, parsed); err != nil {
		return e.Wrap(op, err)
	}

	if err = a.enqueueStatusEvent(ctx, orderID, parsed); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("order %d status set to %s", orderID, parsed)
	return nil
}

// ListImages lists the uploaded image URLs for the admin image picker.
func (a *AdminUseCase) ListImages(ctx context.Context) ([]string, error) {
	const op = "AdminUseCase.ListImages"

	images, err := a.imageStore.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return images, nil
}

// SaveSettings persists the site settings document. Write failures are
// absorbed and logged, matching the read side.
func (a *AdminUseCase) SaveSettings(ctx context.Context, settings domain.SiteSettings) error {
	const op = "AdminUseCase.SaveSettings"

	if err := a.settings.Save(settings); err != nil {
		a.logger.Warnf("%s: settings save failed: %v", op, err)
	}

	return nil
}

func (a *AdminUseCase) applyUploadedImage(ctx context.Context, product *domain.Product, image *UploadImage) error {
	if image == nil || len(image.Data) == 0 {
		return nil
	}

	url, err := a.imageStore.Save(ctx, image.Name, image.Data)
	if err != nil {
		return err
	}

	product.ImageURL = url
	return nil
}

func (a *AdminUseCase) enqueueStatusEvent(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(&OrderStatusChangedEvent{
		EventID:   eventID,
		OrderID:   orderID,
		Status:    string(status),
		ChangedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = a.outboxRepo.Create(ctx, NewOutboxEvent(eventID, EventOrderStatusChanged, orderID, payload))
	return err
}

func (a *AdminUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price < 0 {
		return e.ErrInvalidPrice
	}

	if req.Stock < 0 {
		return e.ErrInvalidStock
	}

	return nil
}
