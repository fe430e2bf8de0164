package questionnaire

import "github.com/go-chi/chi/v5"

// Routes registra as rotas públicas do catálogo direto no roteador raiz.
func Routes(r chi.Router, h *Handler) {
	r.Get("/questionario", h.GetQuestionnaire)
	r.Get("/questionario/modulos/{nome}", h.GetModule)
}
