package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/auth"
	"paradas/internal/models"
)

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	models.WriteJSON(w, http.StatusOK, auth.UserFrom(r))
}

type meUpdateRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Imagem   *string `json:"imagem"`
	Password *string `json:"password"`
}

// MeUpdate обновляет собственный профиль. Коллизии email/username
// проверяются заранее; unique constraint из БД — страховка.
func (h *Handler) MeUpdate(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r)
	var req meUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	fields := map[string]any{}
	if req.Nome != nil && *req.Nome != "" {
		fields["nome"] = *req.Nome
	}
	if req.Email != nil && *req.Email != "" {
		taken, err := h.d.Users.EmailTaken(r.Context(), *req.Email, u.ID)
		if err != nil {
			h.writeErr(w, r, err, "user")
			return
		}
		if taken {
			models.WriteError(w, http.StatusBadRequest, "email already in use")
			return
		}
		fields["email"] = *req.Email
	}
	if req.Username != nil {
		if *req.Username == "" {
			fields["username"] = nil
		} else {
			taken, err := h.d.Users.UsernameTaken(r.Context(), *req.Username, u.ID)
			if err != nil {
				h.writeErr(w, r, err, "user")
				return
			}
			if taken {
				models.WriteError(w, http.StatusBadRequest, "username already in use")
				return
			}
			fields["username"] = *req.Username
		}
	}
	if req.Imagem != nil {
		if *req.Imagem == "" {
			fields["imagem"] = nil
		} else {
			fields["imagem"] = *req.Imagem
		}
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			h.writeErr(w, r, err, "user")
			return
		}
		fields["senha_hash"] = hash
	}
	if len(fields) == 0 {
		models.WriteError(w, http.StatusBadRequest, "nenhum campo para atualizar")
		return
	}

	updated, err := h.d.Users.Update(r.Context(), u.ID, fields)
	if err != nil {
		if f := uniqueField(err); f != "" {
			models.WriteError(w, http.StatusBadRequest, f+" already in use")
			return
		}
		h.writeErr(w, r, err, "user")
		return
	}
	models.WriteJSON(w, http.StatusOK, updated)
}
