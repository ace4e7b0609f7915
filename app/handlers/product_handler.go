package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/modashop/go-catalog/app/helpers"
	"github.com/modashop/go-catalog/app/services"
	"github.com/modashop/go-catalog/app/utils/format"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render   *render.Render
	catalog  *services.CatalogService
	reviews  *services.ReviewService
	wishlist *services.WishlistService
}

func NewProductHandler(
	r *render.Render,
	catalog *services.CatalogService,
	reviews *services.ReviewService,
	wishlist *services.WishlistService,
) *ProductHandler {
	return &ProductHandler{render: r, catalog: catalog, reviews: reviews, wishlist: wishlist}
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_ = r.ParseForm()

	detail, err := h.catalog.ProductDetail(r.Context(), id, r.Form.Get("color_id"), r.Form.Get("size_id"))
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"detail":                 detail,
		"display_price":          format.Price(detail.Price.FinalPrice),
		"display_original_price": format.Price(detail.Price.OriginalPrice),
	})
}

func (h *ProductHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		respondError(h.render, w, err)
		return
	}

	form := services.ReviewForm{
		Name:   r.Form.Get("name"),
		Detail: r.Form.Get("detail"),
		Rating: helpers.ParseRating(r.Form.Get("rating")),
		Image:  r.Form.Get("image"),
	}

	review, err := h.reviews.Submit(r.Context(), id, form)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, review)
}

func (h *ProductHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	liked, err := h.wishlist.ToggleLike(r.Context(), id, helpers.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

func (h *ProductHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.wishlist.Wishlist(r.Context(), helpers.UserID(r))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"wishlist": entries})
}
