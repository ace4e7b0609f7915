package handlers

import (
	"errors"
	"net/http"

	"github.com/modashop/go-catalog/app/services"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// respondError maps the service error taxonomy onto HTTP statuses. Store
// failures are logged and surfaced as 500 without detail.
func respondError(rnd *render.Render, w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotFound) {
		_ = rnd.JSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		_ = rnd.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}

	zap.S().Errorw("request failed", "error", err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
