package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/models"
)

type areaRequest struct {
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

func (h *Handler) AreasList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.d.Areas.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "areas")
		return
	}
	models.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) AreaGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	a, err := h.d.Areas.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "area")
		return
	}
	models.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) AreaCreate(w http.ResponseWriter, r *http.Request) {
	var req areaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" {
		models.WriteError(w, http.StatusBadRequest, "nome required")
		return
	}
	a := &models.Area{Nome: req.Nome, Descricao: req.Descricao, Ativo: boolOr(req.Ativo, true)}
	if err := h.d.Areas.Create(r.Context(), a); err != nil {
		h.writeErr(w, r, err, "area")
		return
	}
	models.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) AreaUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req areaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" {
		models.WriteError(w, http.StatusBadRequest, "nome required")
		return
	}
	a := &models.Area{ID: id, Nome: req.Nome, Descricao: req.Descricao, Ativo: boolOr(req.Ativo, true)}
	if err := h.d.Areas.Update(r.Context(), a); err != nil {
		h.writeErr(w, r, err, "area")
		return
	}
	models.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) AreaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.d.Areas.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "area")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
