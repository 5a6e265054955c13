package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/repository/pgdb/converter"
	"github.com/my-shop/go-backend/pkg/e"
)

// ProductRepo implements the product repository over PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, name, price, image_url, description, category,
	rating, review_text, is_new, is_sale, stock, created_at
`

// List returns products newest-first, optionally narrowed by a name
// substring and a category substring. Both filters match case-insensitively.
func (p *ProductRepo) List(ctx context.Context, search, category string) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category ILIKE '%' || $2 || '%')
		ORDER BY id DESC
	`

	rows, err := p.pool.Query(ctx, query, search, category)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Price, &model.ImageURL,
		&model.Description, &model.Category, &model.Rating, &model.ReviewText,
		&model.IsNew, &model.IsSale, &model.Stock, &model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByIDs fetches the given products in one round trip. Unknown ids are
// silently absent from the result.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (int64, error) {
	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			name, price, image_url, description, category,
			rating, review_text, is_new, is_sale, stock
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := p.pool.QueryRow(ctx, query,
		model.Name, model.Price, model.ImageURL, model.Description,
		model.Category, model.Rating, model.ReviewText,
		model.IsNew, model.IsSale, model.Stock,
	).Scan(&id)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	model := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET name = $2, price = $3, image_url = $4, description = $5,
			category = $6, rating = $7, review_text = $8,
			is_new = $9, is_sale = $10, stock = $11
		WHERE id = $1
	`

	result, err := p.pool.Exec(ctx, query,
		model.ID, model.Name, model.Price, model.ImageURL, model.Description,
		model.Category, model.Rating, model.ReviewText,
		model.IsNew, model.IsSale, model.Stock,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductReferenced)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// CategoryStrings returns the distinct raw category values in storage. The
// caller splits and deduplicates the comma-joined labels.
func (p *ProductRepo) CategoryStrings(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT DISTINCT category FROM products`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, category)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// ReferencedByOrders reports whether any order item references the product.
func (p *ProductRepo) ReferencedByOrders(ctx context.Context, id int64) (bool, error) {
	var referenced bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM order_items WHERE product_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return referenced, nil
}

func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		err := rows.Scan(
			&model.ID, &model.Name, &model.Price, &model.ImageURL,
			&model.Description, &model.Category, &model.Rating, &model.ReviewText,
			&model.IsNew, &model.IsSale, &model.Stock, &model.CreatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
