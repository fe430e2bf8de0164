package questionnaire

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetQuestionnaire godoc
// @Summary Lista os módulos do questionário com suas dimensões
// @Tags questionario
// @Produce json
// @Success 200 {object} QuestionnaireDTO
// @Router /questionario [get]
func (h *Handler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetQuestionnaire(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, out)
}

// GetModule godoc
// @Summary Detalha um módulo com dimensões e perguntas
// @Tags questionario
// @Produce json
// @Param nome path string true "Nome do módulo"
// @Success 200 {object} ModuleDetailDTO
// @Failure 404 {object} config.ErrorResponse
// @Router /questionario/modulos/{nome} [get]
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "nome")

	out, err := h.service.GetModule(r.Context(), name)
	switch {
	case errors.Is(err, ErrModuleNotFound):
		config.WithContext(r.Context()).WithField("modulo", name).Warn("Módulo não encontrado")
		config.Error(w, http.StatusNotFound, "Módulo com nome \""+name+"\" não encontrado.")
		return
	case err != nil:
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, out)
}
