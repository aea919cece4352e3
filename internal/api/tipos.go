package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/models"
)

type tipoRequest struct {
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

func (h *Handler) TiposList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.d.Tipos.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "tipos")
		return
	}
	models.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) TipoGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := h.d.Tipos.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "tipo")
		return
	}
	models.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) TipoCreate(w http.ResponseWriter, r *http.Request) {
	var req tipoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" {
		models.WriteError(w, http.StatusBadRequest, "nome required")
		return
	}
	t := &models.TipoEquipamento{Nome: req.Nome, Descricao: req.Descricao, Ativo: boolOr(req.Ativo, true)}
	if err := h.d.Tipos.Create(r.Context(), t); err != nil {
		h.writeErr(w, r, err, "tipo")
		return
	}
	models.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) TipoUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req tipoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" {
		models.WriteError(w, http.StatusBadRequest, "nome required")
		return
	}
	t := &models.TipoEquipamento{ID: id, Nome: req.Nome, Descricao: req.Descricao, Ativo: boolOr(req.Ativo, true)}
	if err := h.d.Tipos.Update(r.Context(), t); err != nil {
		h.writeErr(w, r, err, "tipo")
		return
	}
	models.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) TipoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.d.Tipos.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "tipo")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
