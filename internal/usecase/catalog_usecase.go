package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
)

// AllCategories is the sentinel meaning "no category filter".
const AllCategories = "All"

// CatalogUseCase implements catalog browsing.
type CatalogUseCase struct {
	productRepo ProductRepository
	settings    SettingsStore
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, settings SettingsStore, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		settings:    settings,
		logger:      logger,
	}
}

// ListProducts returns the filtered catalog, the dynamic category list and
// the current site settings in one payload.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *CatalogReq) (*CatalogRes, error) {
	const op = "CatalogUseCase.ListProducts"

	search := strings.TrimSpace(req.Search)
	category := strings.TrimSpace(req.Category)
	if category == AllCategories {
		category = ""
	}

	products, err := c.productRepo.List(ctx, search, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stored, err := c.productRepo.CategoryStrings(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	selected := strings.TrimSpace(req.Category)
	if selected == "" {
		selected = AllCategories
	}

	return &CatalogRes{
		Products:   products,
		Categories: buildCategoryList(stored),
		Selected:   selected,
		Search:     search,
		Settings:   c.settings.Load(),
	}, nil
}

// GetProduct returns a single product or e.ErrNotFound.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// AllProducts returns the unfiltered catalog, used by the cart and checkout
// pages which resolve the client-side cart against it.
func (c *CatalogUseCase) AllProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.AllProducts"

	products, err := c.productRepo.List(ctx, "", "")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// buildCategoryList derives the filter list from the stored comma-joined
// category strings: split, trim, dedupe, sort, prefix the "All" sentinel.
func buildCategoryList(stored []string) []string {
	set := make(map[string]struct{})
	for _, raw := range stored {
		for _, label := range domain.SplitCategories(raw) {
			set[label] = struct{}{}
		}
	}

	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return append([]string{AllCategories}, labels...)
}
