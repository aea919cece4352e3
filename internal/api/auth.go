package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"paradas/internal/auth"
	"paradas/internal/models"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(req.Identifier) == "" || req.Password == "" {
		models.WriteError(w, http.StatusBadRequest, "identifier and password required")
		return
	}

	token, user, err := h.d.Auth.Login(r.Context(), req.Identifier, req.Password)
	if errors.Is(err, auth.ErrUnauthorized) {
		models.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.writeErr(w, r, err, "login")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	const p = "Bearer "
	token := strings.TrimPrefix(r.Header.Get("Authorization"), p)
	if err := h.d.Auth.Logout(r.Context(), token); err != nil {
		h.writeErr(w, r, err, "logout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
