package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modashop/go-catalog/app/services"
	"github.com/modashop/go-catalog/app/utils/renderer"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	rnd := renderer.New()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"validation", &services.ValidationError{Fields: map[string]string{"Name": "required"}}, http.StatusUnprocessableEntity},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rnd, rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRespondErrorValidationIncludesFields(t *testing.T) {
	rnd := renderer.New()
	rec := httptest.NewRecorder()

	respondError(rnd, rec, &services.ValidationError{Fields: map[string]string{"Name": "required"}})

	assert.Contains(t, rec.Body.String(), "Name")
	assert.Contains(t, rec.Body.String(), "required")
}
