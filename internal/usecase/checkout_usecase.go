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

// CheckoutUseCase converts a client-side cart into a persisted order.
type CheckoutUseCase struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewCheckoutUC(
	productRepo ProductRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// PlaceOrder validates the cart payload against the live catalog, computes
// the total from stored prices and persists the order, its items and an
// order.created outbox event as a single transaction.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (int64, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	var err error
	if err = validateShipping(req); err != nil {
		return 0, e.Wrap(op, err)
	}

	lines := parseCartPayload(req.CartPayload)
	if len(lines) == 0 {
		return 0, e.Wrap(op, e.ErrEmptyCart)
	}

	products, err := c.fetchCartProducts(ctx, lines)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	items, total := buildOrderLines(lines, products)
	if len(items) == 0 {
		return 0, e.Wrap(op, e.ErrNoValidItems)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order := &domain.Order{
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
		TotalPrice:    total,
		Status:        domain.StatusPending,
	}

	order, err = c.orderRepo.Create(ctx, order)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err = c.orderRepo.CreateItems(ctx, items); err != nil {
		return 0, e.Wrap(op, err)
	}

	if err = c.enqueueCreatedEvent(ctx, order, items); err != nil {
		return 0, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, e.Wrap(op, err)
	}

	c.logger.Infof("order %d placed: user=%d total=%d items=%d", order.ID, order.UserID, total, len(items))
	return order.ID, nil
}

// GetOrder returns an order with its items. Ownership is the caller's check.
func (c *CheckoutUseCase) GetOrder(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error) {
	const op = "CheckoutUseCase.GetOrder"

	order, err := c.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}

	items, err := c.orderRepo.ItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}

	return order, items, nil
}

func (c *CheckoutUseCase) fetchCartProducts(ctx context.Context, lines []CartLine) (map[int64]domain.Product, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if line.ID > 0 {
			ids = append(ids, line.ID)
		}
	}

	products, err := c.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return byID, nil
}

func (c *CheckoutUseCase) enqueueCreatedEvent(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	itemData := make([]OrderItemData, 0, len(items))
	for _, item := range items {
		itemData = append(itemData, OrderItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	eventID := uuid.NewString()
	payload, err := json.Marshal(&OrderCreatedEvent{
		EventID:    eventID,
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		Items:      itemData,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(eventID, EventOrderCreated, order.ID, payload))
	return err
}

func validateShipping(req *PlaceOrderReq) error {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.PaymentMethod) == "" {
		return e.ErrMissingFields
	}

	return nil
}

// parseCartPayload decodes the client cart. Malformed JSON degrades to an
// empty cart rather than an error.
func parseCartPayload(payload string) []CartLine {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil
	}

	var lines []CartLine
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		return nil
	}

	return lines
}

// buildOrderLines resolves cart lines against the fetched products, silently
// skipping unknown ids and non-positive quantities. Unit prices snapshot the
// current stored price; any client-supplied price is ignored by construction.
func buildOrderLines(lines []CartLine, products map[int64]domain.Product) ([]domain.OrderItem, int64) {
	items := make([]domain.OrderItem, 0, len(lines))
	var total int64
	for _, line := range lines {
		product, ok := products[line.ID]
		if !ok || line.Qty <= 0 {
			continue
		}

		total += product.Price * int64(line.Qty)
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Qty,
			UnitPrice: product.Price,
		})
	}

	return items, total
}
