package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/modashop/go-catalog/app/helpers"
	"github.com/modashop/go-catalog/app/repositories"
	"github.com/modashop/go-catalog/app/services"
	"github.com/unrolled/render"
)

type ShopHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewShopHandler(r *render.Render, catalog *services.CatalogService) *ShopHandler {
	return &ShopHandler{render: r, catalog: catalog}
}

// parseConstraints reads the filter widget submission. Malformed price bounds
// degrade to absent rather than erroring.
func parseConstraints(r *http.Request) repositories.FilterConstraints {
	_ = r.ParseForm()
	q := r.Form
	return repositories.FilterConstraints{
		CategoryIDs: helpers.IDList(q["category"]),
		SizeIDs:     helpers.IDList(q["size"]),
		ColorIDs:    helpers.IDList(q["color"]),
		MinPrice:    helpers.ParsePriceBound(q.Get("min_price")),
		MaxPrice:    helpers.ParsePriceBound(q.Get("max_price")),
	}
}

func (h *ShopHandler) Shop(w http.ResponseWriter, r *http.Request) {
	listing, err := h.catalog.ShopListing(r.Context(), parseConstraints(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, listing)
}

func (h *ShopHandler) Category(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	listing, err := h.catalog.CategoryListing(r.Context(), slug, parseConstraints(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, listing)
}
