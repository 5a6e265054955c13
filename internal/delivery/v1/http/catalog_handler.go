package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	sessions       *SessionManager
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, sessions *SessionManager, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, sessions: sessions, logger: logger}
}

type catalogResponse struct {
	Products   []domain.Product    `json:"products"`
	Categories []string            `json:"categories"`
	Selected   string              `json:"selected_category"`
	Search     string              `json:"search"`
	Settings   domain.SiteSettings `json:"settings"`
	Principal  domain.Principal    `json:"principal"`
	Flash      string              `json:"flash,omitempty"`
}

// home serves the storefront catalog, optionally narrowed by the search and
// category query params.
func (c *CatalogHandler) home(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewCatalogReq(r.URL.Query().Get("search"), r.URL.Query().Get("category"))

	res, err := c.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &catalogResponse{
		Products:   res.Products,
		Categories: res.Categories,
		Selected:   res.Selected,
		Search:     res.Search,
		Settings:   res.Settings,
		Principal:  c.sessions.Principal(r),
		Flash:      c.sessions.PopFlash(w, r),
	})
}

func (c *CatalogHandler) productDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := c.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product":   product,
		"principal": c.sessions.Principal(r),
	})
}

// cart returns the full product list; the cart itself lives in the browser
// and is rendered client-side against these products.
func (c *CatalogHandler) cart(w http.ResponseWriter, r *http.Request) {
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
