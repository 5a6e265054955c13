package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/repository/pgdb/converter"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/tr"
)

// OrderRepo implements the order repository over PostgreSQL. Writes expect
// the transaction carried by ctx; reads run on the pool.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

const orderColumns = `
	id, user_id, customer_name, address, phone,
	payment_method, total_price, status, created_at
`

func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (
			user_id, customer_name, address, phone,
			payment_method, total_price, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	created := *order
	err = tx.QueryRow(ctx, query,
		order.UserID, order.CustomerName, order.Address, order.Phone,
		order.PaymentMethod, order.TotalPrice, order.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (o *OrderRepo) CreateItems(ctx context.Context, items []domain.OrderItem) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.UserID, &model.CustomerName, &model.Address,
		&model.Phone, &model.PaymentMethod, &model.TotalPrice,
		&model.Status, &model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

func (o *OrderRepo) ItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.OrderItem, 0)
	for rows.Next() {
		var model converter.OrderItemModel
		err := rows.Scan(&model.ID, &model.OrderID, &model.ProductID, &model.UnitPrice, &model.Quantity)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *o.conv.ItemToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (o *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY id DESC
	`

	return o.queryOrders(ctx, query)
}

func (o *OrderRepo) Latest(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY id DESC
		LIMIT $1
	`

	return o.queryOrders(ctx, query, limit)
}

// Stats aggregates the lifetime and same-day order counters in one query.
func (o *OrderRepo) Stats(ctx context.Context) (*usecase.OrderStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price), 0),
			COUNT(*) FILTER (WHERE created_at::date = CURRENT_DATE),
			COALESCE(SUM(total_price) FILTER (WHERE created_at::date = CURRENT_DATE), 0)
		FROM orders
	`

	var stats usecase.OrderStats
	err := o.pool.QueryRow(ctx, query).Scan(
		&stats.TotalOrders, &stats.TotalSales, &stats.TodayOrders, &stats.TodaySales,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &stats, nil
}

func (o *OrderRepo) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := o.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		err := rows.Scan(
			&model.ID, &model.UserID, &model.CustomerName, &model.Address,
			&model.Phone, &model.PaymentMethod, &model.TotalPrice,
			&model.Status, &model.CreatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *o.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
