package config

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error    string   `json:"error"`
	Detalhes []string `json:"detalhes,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode JSON response")
	}
}

func Error(w http.ResponseWriter, status int, message string, details ...string) {
	JSON(w, status, ErrorResponse{Error: message, Detalhes: details})
}
