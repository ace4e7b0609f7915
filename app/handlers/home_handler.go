package handlers

import (
	"net/http"

	"github.com/modashop/go-catalog/app/helpers"
	"github.com/modashop/go-catalog/app/services"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render  *render.Render
	catalog *services.CatalogService
	site    *services.SiteService
}

func NewHomeHandler(r *render.Render, catalog *services.CatalogService, site *services.SiteService) *HomeHandler {
	return &HomeHandler{render: r, catalog: catalog, site: site}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.HomePage(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, page)
}

// BaseContext serves the shared navigation/footer data every page needs.
func (h *HomeHandler) BaseContext(w http.ResponseWriter, r *http.Request) {
	base, err := h.site.BaseContext(r.Context(), helpers.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, base)
}
