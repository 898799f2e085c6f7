// Package health implements the liveness endpoint.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/billing-portal/internal/http/response"
)

// New returns the health check handler.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"service": "billing-portal",
		}))
	}
}
