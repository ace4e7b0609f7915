package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/modashop/go-catalog/app/services"
	"github.com/unrolled/render"
)

type BlogHandler struct {
	render *render.Render
	blogs  *services.BlogService
}

func NewBlogHandler(r *render.Render, blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{render: r, blogs: blogs}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.List(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"blogs": blogs})
}

func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.blogs.Detail(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, detail)
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(h.render, w, err)
		return
	}

	form := services.CommentForm{
		Name:    r.Form.Get("name"),
		Comment: r.Form.Get("comment"),
		Image:   r.Form.Get("image"),
	}

	comment, err := h.blogs.AddComment(r.Context(), mux.Vars(r)["slug"], form)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, comment)
}

func (h *BlogHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(h.render, w, err)
		return
	}

	form := services.ReplyForm{
		Name:      r.Form.Get("name"),
		ReplyText: r.Form.Get("reply_text"),
		Image:     r.Form.Get("image"),
	}

	reply, err := h.blogs.AddReply(r.Context(), mux.Vars(r)["id"], form)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, reply)
}
