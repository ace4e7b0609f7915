package handlers

import (
	"net/http"

	"github.com/modashop/go-catalog/app/helpers"
	"github.com/modashop/go-catalog/app/services"
	"github.com/unrolled/render"
)

type SearchHandler struct {
	render *render.Render
	search *services.SearchService
}

func NewSearchHandler(r *render.Render, search *services.SearchService) *SearchHandler {
	return &SearchHandler{render: r, search: search}
}

func (h *SearchHandler) Products(w http.ResponseWriter, r *http.Request) {
	result, err := h.search.SearchProducts(r.Context(), helpers.UserID(r), r.URL.Query().Get("q"))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, result)
}

func (h *SearchHandler) Blogs(w http.ResponseWriter, r *http.Request) {
	results, err := h.search.SearchBlogs(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
