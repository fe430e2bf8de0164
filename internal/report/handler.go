package report

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lucalvex/hub-projeto-diag-api/internal/answer"
	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
	"github.com/lucalvex/hub-projeto-diag-api/internal/user"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Generate godoc
// @Summary Gera o relatório PDF de um módulo respondido
// @Tags relatorios
// @Produce application/pdf
// @Param nome path string true "Nome do módulo ou id da resposta"
// @Success 200 {file} binary
// @Failure 404 {object} config.ErrorResponse
// @Router /modulos/{nome}/relatorio [get]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para gerar relatório")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	identifier := chi.URLParam(r, "nome")
	doc, err := h.service.Generate(r.Context(), claims.UserID, identifier)
	var renderErr *RenderError
	switch {
	case err == nil:
	case errors.Is(err, questionnaire.ErrModuleNotFound):
		config.Error(w, http.StatusNotFound, fmt.Sprintf("Módulo com nome \"%s\" não encontrado.", identifier))
		return
	case errors.Is(err, answer.ErrModuleAnswerNotFound), errors.Is(err, answer.ErrDimensionAnswersNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrInvalidUserID), errors.Is(err, answer.ErrInvalidUser):
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	case errors.As(err, &renderErr):
		config.Error(w, http.StatusInternalServerError, ErrRender.Error())
		return
	default:
		log.WithError(err).Error("Erro inesperado ao gerar relatório")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		log.WithError(err).Warn("Falha ao enviar relatório")
	}
}

func (h *Handler) ListArchived(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	reports, err := h.service.ListArchived(r.Context(), claims.UserID)
	switch {
	case errors.Is(err, answer.ErrInvalidUser):
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	case err != nil:
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, reports)
}
