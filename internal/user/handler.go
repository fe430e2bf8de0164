package user

import (
	"errors"
	"net/http"

	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para buscar perfil")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidUserID):
		config.Error(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, u)
}
