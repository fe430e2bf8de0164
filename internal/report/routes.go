package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
)

func Routes(r chi.Router, h *Handler, limit func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.With(limit).Get("/modulos/{nome}/relatorio", h.Generate)
		r.Get("/relatorios/arquivados", h.ListArchived)
	})
}
