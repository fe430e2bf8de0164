package answer

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/cooldown"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("Usuário não autenticado")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return claims.UserID, true
}

// writeError traduz os erros do domínio para respostas HTTP.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *scoring.ValidationError
	var active *cooldown.ActiveError
	var persist *PersistenceError

	switch {
	case errors.As(err, &validation):
		config.Error(w, http.StatusBadRequest,
			"Falha na validação das respostas. Nenhuma resposta foi salva.", validation.Messages()...)
	case errors.As(err, &active):
		config.JSON(w, http.StatusConflict, map[string]interface{}{
			"error":     active.Error(),
			"unlock_at": active.UnlockAt,
		})
	case errors.Is(err, questionnaire.ErrModuleNotFound):
		config.Error(w, http.StatusNotFound, "Módulo não encontrado.")
	case errors.Is(err, ErrModuleAnswerNotFound),
		errors.Is(err, ErrDimensionAnswersNotFound),
		errors.Is(err, ErrPartialAnswerNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidUser):
		config.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrMissingDate), errors.Is(err, ErrInvalidDate), IsPayloadError(err):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &persist):
		config.Error(w, http.StatusInternalServerError, "Erro ao salvar respostas no banco de dados.")
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro inesperado")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// Submit godoc
// @Summary Envia as respostas de um módulo
// @Tags respostas
// @Accept json
// @Produce json
// @Param nome path string true "Nome do módulo"
// @Success 200 {object} SubmissionResponse
// @Failure 400 {object} config.ErrorResponse
// @Failure 404 {object} config.ErrorResponse
// @Failure 409 {object} config.ErrorResponse
// @Router /modulos/{nome}/respostas [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := DecodeSubmission(r.Body)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Payload de respostas inválido")
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, chi.URLParam(r, "nome"), items)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CheckDeadline(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.CheckDeadline(r.Context(), userID, chi.URLParam(r, "identificador"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) SearchByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.SearchByDate(r.Context(), userID, r.URL.Query().Get("data"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) AllDates(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.AllDates(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) LastDimensionResults(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.LastDimensionResults(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetModuleAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id := r.URL.Query().Get("modulo_id")
	if id == "" {
		config.Error(w, http.StatusBadRequest, "Parâmetro modulo_id não informado.")
		return
	}

	resp, err := h.service.GetModuleAnswer(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) SavePartial(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	answers, err := DecodePartial(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.SavePartial(r.Context(), userID, chi.URLParam(r, "nome"), answers)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetPartial(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetPartial(r.Context(), userID, chi.URLParam(r, "nome"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}
