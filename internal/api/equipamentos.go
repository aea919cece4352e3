package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/models"
)

type equipamentoRequest struct {
	Nome      string  `json:"nome"`
	Tag       string  `json:"tag"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
	AreaID    uint    `json:"areaId"`
	TipoID    *uint   `json:"tipoId"`
}

func (h *Handler) EquipamentosList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.d.Equipamentos.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "equipamentos")
		return
	}
	models.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) EquipamentoGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	e, err := h.d.Equipamentos.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "equipamento")
		return
	}
	models.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) EquipamentoCreate(w http.ResponseWriter, r *http.Request) {
	var req equipamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" || req.Tag == "" || req.AreaID == 0 {
		models.WriteError(w, http.StatusBadRequest, "nome, tag and areaId required")
		return
	}
	e := &models.Equipamento{
		Nome:      req.Nome,
		Tag:       req.Tag,
		Descricao: req.Descricao,
		Ativo:     boolOr(req.Ativo, true),
		AreaID:    req.AreaID,
		TipoID:    req.TipoID,
	}
	if err := h.d.Equipamentos.Create(r.Context(), e); err != nil {
		h.writeErr(w, r, err, "equipamento")
		return
	}
	models.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) EquipamentoUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req equipamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" || req.Tag == "" || req.AreaID == 0 {
		models.WriteError(w, http.StatusBadRequest, "nome, tag and areaId required")
		return
	}
	e := &models.Equipamento{
		ID:        id,
		Nome:      req.Nome,
		Tag:       req.Tag,
		Descricao: req.Descricao,
		Ativo:     boolOr(req.Ativo, true),
		AreaID:    req.AreaID,
		TipoID:    req.TipoID,
	}
	if err := h.d.Equipamentos.Update(r.Context(), e); err != nil {
		h.writeErr(w, r, err, "equipamento")
		return
	}
	models.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) EquipamentoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.d.Equipamentos.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "equipamento")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
