package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
)

type AdminHandler struct {
	adminUsecase   usecase.AdminUC
	catalogUsecase usecase.CatalogUC
	sessions       *SessionManager
	logger         logger.Logger
}

func NewAdminHandler(
	adminUsecase usecase.AdminUC,
	catalogUsecase usecase.CatalogUC,
	sessions *SessionManager,
	logger logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase:   adminUsecase,
		catalogUsecase: catalogUsecase,
		sessions:       sessions,
		logger:         logger,
	}
}

func (a *AdminHandler) adminRoot(w http.ResponseWriter, r *http.Request) {
	seeOther(w, r, "/admin/dashboard")
}

// dashboard serves the whole admin aggregate; the section param selects the
// tab the client renders.
func (a *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	if section == "" {
		section = "overview"
	}

	res, err := a.adminUsecase.Dashboard(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"section":       section,
		"stats":         res.Stats,
		"product_count": res.ProductCount,
		"user_count":    res.UserCount,
		"latest_orders": res.LatestOrders,
		"products":      res.Products,
		"orders":        res.Orders,
		"users":         res.Users,
		"flash":         a.sessions.PopFlash(w, r),
	})
}

func (a *AdminHandler) productsSection(w http.ResponseWriter, r *http.Request) {
	seeOther(w, r, "/admin/dashboard?section=products")
}

func (a *AdminHandler) ordersSection(w http.ResponseWriter, r *http.Request) {
	seeOther(w, r, "/admin/dashboard?section=orders")
}

func (a *AdminHandler) usersSection(w http.ResponseWriter, r *http.Request) {
	seeOther(w, r, "/admin/dashboard?section=users")
}

// newProductForm serves the product form data, including the stored images
// for the picker.
func (a *AdminHandler) newProductForm(w http.ResponseWriter, r *http.Request) {
	images, err := a.adminUsecase.ListImages(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"images": images,
		"flash":  a.sessions.PopFlash(w, r),
	})
}

func (a *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseSaveProductReq(r)
	if err != nil {
		a.flashFormError(w, r, err, "/admin/products/new")
		return
	}

	if err := a.adminUsecase.CreateProduct(r.Context(), req); err != nil {
		a.logger.Warnf("%s", err.Error())
		a.flashFormError(w, r, err, "/admin/products/new")
		return
	}

	a.sessions.Flash(w, r, "Product created.")
	seeOther(w, r, "/admin/dashboard?section=products")
}

func (a *AdminHandler) editProductForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := a.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	images, err := a.adminUsecase.ListImages(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product": product,
		"images":  images,
		"flash":   a.sessions.PopFlash(w, r),
	})
}

func (a *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := a.parseSaveProductReq(r)
	if err != nil {
		a.flashFormError(w, r, err, "/admin/products/"+chi.URLParam(r, "id")+"/edit")
		return
	}

	if err := a.adminUsecase.UpdateProduct(r.Context(), id, req); err != nil {
		a.logger.Warnf("%s", err.Error())
		if errors.Is(err, e.ErrNotFound) {
			WriteError(w, err)
			return
		}
		a.flashFormError(w, r, err, "/admin/products/"+chi.URLParam(r, "id")+"/edit")
		return
	}

	a.sessions.Flash(w, r, "Product updated.")
	seeOther(w, r, "/admin/dashboard?section=products")
}

func (a *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.adminUsecase.DeleteProduct(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		if errors.Is(err, e.ErrProductReferenced) {
			a.sessions.Flash(w, r, "Cannot delete: this product appears in existing orders.")
			seeOther(w, r, "/admin/dashboard?section=products")
			return
		}

		WriteError(w, err)
		return
	}

	a.sessions.Flash(w, r, "Product deleted.")
	seeOther(w, r, "/admin/dashboard?section=products")
}

func (a *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	if err := a.adminUsecase.UpdateOrderStatus(r.Context(), id, r.FormValue("status")); err != nil {
		a.logger.Warnf("%s", err.Error())
		switch {
		case errors.Is(err, e.ErrInvalidStatus):
			a.sessions.Flash(w, r, "Invalid order status.")
			seeOther(w, r, "/admin/dashboard?section=orders")
		case errors.Is(err, e.ErrNotFound):
			WriteError(w, err)
		default:
			WriteError(w, err)
		}
		return
	}

	a.sessions.Flash(w, r, "Order status updated.")
	seeOther(w, r, "/admin/dashboard?section=orders")
}

func (a *AdminHandler) staticImages(w http.ResponseWriter, r *http.Request) {
	images, err := a.adminUsecase.ListImages(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"images": images,
	})
}

func (a *AdminHandler) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	settings := domain.DefaultSiteSettings()
	if v := strings.TrimSpace(r.FormValue("hero_image")); v != "" {
		settings.HeroImage = v
	}
	if v := strings.TrimSpace(r.FormValue("hero_overlay")); v != "" {
		settings.HeroOverlay = v
	}

	if err := a.adminUsecase.SaveSettings(r.Context(), settings); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	a.sessions.Flash(w, r, "Settings saved.")
	seeOther(w, r, "/admin/dashboard?section=settings")
}

// parseSaveProductReq reads the product form, multipart when an image file
// rides along, urlencoded otherwise.
func (a *AdminHandler) parseSaveProductReq(r *http.Request) (*usecase.SaveProductReq, error) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(nil, r.Body, maxTotalRequestSize)
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	price, err := parsePriceToCents(r.FormValue("price"))
	if err != nil {
		return nil, err
	}

	rating, err := parseRating(r.FormValue("rating"))
	if err != nil {
		return nil, err
	}

	stock, err := parseStock(r.FormValue("stock"))
	if err != nil {
		return nil, err
	}

	image, err := parseUploadedImage(formFile(r, "image_file"))
	if err != nil {
		return nil, err
	}

	return &usecase.SaveProductReq{
		Name:        r.FormValue("name"),
		Price:       price,
		ImageURL:    r.FormValue("image_url"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Rating:      rating,
		ReviewText:  r.FormValue("review_text"),
		Stock:       stock,
		IsNew:       r.FormValue("is_new") != "",
		IsSale:      r.FormValue("is_sale") != "",
		Image:       image,
	}, nil
}

// flashFormError folds a validation failure into a flash and bounces back to
// the originating form; anything unexpected becomes a JSON error.
func (a *AdminHandler) flashFormError(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	code, msg := ToHTTPResponse(err)
	if code == http.StatusBadRequest {
		a.sessions.Flash(w, r, msg)
		seeOther(w, r, backTo)
		return
	}

	WriteError(w, err)
}
