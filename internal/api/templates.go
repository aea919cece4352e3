package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/models"
)

type templateRequest struct {
	Nome        string   `json:"nome"`
	Descricao   *string  `json:"descricao"`
	Ordem       *int     `json:"ordem"`
	Obrigatorio *bool    `json:"obrigatorio"`
	TipoCampo   string   `json:"tipoCampo"`
	Unidade     *string  `json:"unidade"`
	ValorMinimo *float64 `json:"valorMinimo"`
	ValorMaximo *float64 `json:"valorMaximo"`
	TipoID      uint     `json:"tipoId"`
}

func (h *Handler) TemplatesList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.d.Templates.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "templates")
		return
	}
	models.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) TemplateGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := h.d.Templates.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "template")
		return
	}
	models.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) TemplateCreate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" || req.TipoID == 0 {
		models.WriteError(w, http.StatusBadRequest, "nome and tipoId required")
		return
	}
	t := &models.CheckTemplate{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		Ordem:       req.Ordem,
		Obrigatorio: boolOr(req.Obrigatorio, true),
		TipoCampo:   campoOrDefault(req.TipoCampo),
		Unidade:     req.Unidade,
		ValorMinimo: req.ValorMinimo,
		ValorMaximo: req.ValorMaximo,
		TipoID:      req.TipoID,
	}
	if err := h.d.Templates.Create(r.Context(), t); err != nil {
		h.writeErr(w, r, err, "template")
		return
	}
	models.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) TemplateUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" {
		models.WriteError(w, http.StatusBadRequest, "nome required")
		return
	}
	t := &models.CheckTemplate{
		ID:          id,
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		Ordem:       req.Ordem,
		Obrigatorio: boolOr(req.Obrigatorio, true),
		TipoCampo:   campoOrDefault(req.TipoCampo),
		Unidade:     req.Unidade,
		ValorMinimo: req.ValorMinimo,
		ValorMaximo: req.ValorMaximo,
	}
	if err := h.d.Templates.Update(r.Context(), t); err != nil {
		h.writeErr(w, r, err, "template")
		return
	}
	models.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) TemplateDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.d.Templates.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "template")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func campoOrDefault(c string) string {
	switch c {
	case models.CampoStatus, models.CampoTexto, models.CampoNumero, models.CampoTemperatura:
		return c
	default:
		return models.CampoStatus
	}
}
