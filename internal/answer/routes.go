package answer

import (
	"github.com/go-chi/chi/v5"

	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
)

// Routes registra as rotas autenticadas de respostas no roteador informado.
func Routes(r chi.Router, h *Handler) {
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/modulos/{nome}/respostas", h.Submit)
		r.Put("/modulos/{nome}/respostas-parciais", h.SavePartial)
		r.Get("/modulos/{nome}/respostas-parciais", h.GetPartial)
		r.Get("/questionario/{identificador}/check_deadline", h.CheckDeadline)
		r.Get("/relatorios", h.SearchByDate)
		r.Get("/relatorios/datas", h.AllDates)
		r.Get("/dimensoes/ultimos-resultados", h.LastDimensionResults)
		r.Get("/respostas-modulo", h.GetModuleAnswer)
	})
}
