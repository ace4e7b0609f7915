package handlers

import (
	"net/http"

	"github.com/modashop/go-catalog/app/services"
	"github.com/unrolled/render"
)

type SiteHandler struct {
	render *render.Render
	site   *services.SiteService
}

func NewSiteHandler(r *render.Render, site *services.SiteService) *SiteHandler {
	return &SiteHandler{render: r, site: site}
}

func (h *SiteHandler) Contact(w http.ResponseWriter, r *http.Request) {
	info, err := h.site.ContactInfo(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	links, err := h.site.SocialLinks(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"contact_info": info,
		"social_links": links,
	})
}

func (h *SiteHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(h.render, w, err)
		return
	}

	form := services.ContactMessageForm{
		Name:    r.Form.Get("name"),
		Email:   r.Form.Get("email"),
		Phone:   r.Form.Get("phone"),
		Message: r.Form.Get("message"),
	}

	msg, err := h.site.SubmitContactMessage(r.Context(), form)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, msg)
}

func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	about, err := h.site.AboutPage(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"about": about})
}
