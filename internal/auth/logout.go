package auth

import (
	"net/http"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.WithContext(r.Context()).Info("Sessão encerrada")
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
