package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/auth"
	"paradas/internal/models"
)

func (h *Handler) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := h.d.Users.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "users")
		return
	}
	models.WriteJSON(w, http.StatusOK, users)
}

type userCreateRequest struct {
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
}

func (h *Handler) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" || req.Email == "" || req.Password == "" {
		models.WriteError(w, http.StatusBadRequest, "nome, email and password required")
		return
	}

	taken, err := h.d.Users.EmailTaken(r.Context(), req.Email, 0)
	if err != nil {
		h.writeErr(w, r, err, "user")
		return
	}
	if taken {
		models.WriteError(w, http.StatusBadRequest, "email already in use")
		return
	}
	if req.Username != nil && *req.Username != "" {
		taken, err := h.d.Users.UsernameTaken(r.Context(), *req.Username, 0)
		if err != nil {
			h.writeErr(w, r, err, "user")
			return
		}
		if taken {
			models.WriteError(w, http.StatusBadRequest, "username already in use")
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.writeErr(w, r, err, "user")
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleUsuario
	}
	u := &models.User{
		Nome:      req.Nome,
		Email:     req.Email,
		Username:  req.Username,
		SenhaHash: hash,
		Role:      role,
	}
	if err := h.d.Users.Create(r.Context(), u); err != nil {
		if f := uniqueField(err); f != "" {
			models.WriteError(w, http.StatusBadRequest, f+" already in use")
			return
		}
		h.writeErr(w, r, err, "user")
		return
	}
	models.WriteJSON(w, http.StatusCreated, u)
}

type userUpdateRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (h *Handler) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if _, err := h.d.Users.Get(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "user")
		return
	}

	fields := map[string]any{}
	if req.Nome != nil && *req.Nome != "" {
		fields["nome"] = *req.Nome
	}
	if req.Email != nil && *req.Email != "" {
		taken, err := h.d.Users.EmailTaken(r.Context(), *req.Email, id)
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
			taken, err := h.d.Users.UsernameTaken(r.Context(), *req.Username, id)
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
	if req.Role != nil && *req.Role != "" {
		fields["role"] = *req.Role
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

	updated, err := h.d.Users.Update(r.Context(), id, fields)
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

func (h *Handler) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	// удалить самого себя нельзя
	if me := auth.UserFrom(r); me != nil && me.ID == id {
		models.WriteError(w, http.StatusBadRequest, "cannot delete yourself")
		return
	}
	if err := h.d.Users.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "user")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
