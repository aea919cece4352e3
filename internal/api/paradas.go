package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/datatypes"

	"paradas/internal/checklist"
	"paradas/internal/models"
)

// paradaListItem дополняет параду сводкой по проверкам для списков
// (дашборд, история).
type paradaListItem struct {
	models.Parada
	TestesTotal     int `json:"testesTotal"`
	TestesPendentes int `json:"testesPendentes"`
}

func (h *Handler) ParadasList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.d.Paradas.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.writeErr(w, r, err, "paradas")
		return
	}
	out := make([]paradaListItem, 0, len(rows))
	for _, p := range rows {
		item := paradaListItem{Parada: p, TestesTotal: len(p.Testes)}
		for _, t := range p.Testes {
			if t.Status == models.TesteStatusPendente {
				item.TestesPendentes++
			}
		}
		out = append(out, item)
	}
	models.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) ParadaGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.d.Paradas.Get(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "parada")
		return
	}
	models.WriteJSON(w, http.StatusOK, p)
}

type paradaCreateRequest struct {
	Nome                 string  `json:"nome"`
	Descricao            *string `json:"descricao"`
	Tipo                 string  `json:"tipo"`
	EquipeResponsavel    *string `json:"equipeResponsavel"`
	Macro                *string `json:"macro"`
	DuracaoPrevistaHoras *int    `json:"duracaoPrevistaHoras"`
}

func (h *Handler) ParadaCreate(w http.ResponseWriter, r *http.Request) {
	var req paradaCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Nome == "" || req.Tipo == "" {
		models.WriteError(w, http.StatusBadRequest, "nome and tipo required")
		return
	}
	p := &models.Parada{
		Nome:                 req.Nome,
		Descricao:            req.Descricao,
		Tipo:                 req.Tipo,
		EquipeResponsavel:    req.EquipeResponsavel,
		Macro:                req.Macro,
		DuracaoPrevistaHoras: req.DuracaoPrevistaHoras,
	}
	if err := h.d.Paradas.Create(r.Context(), p); err != nil {
		h.writeErr(w, r, err, "parada")
		return
	}
	models.WriteJSON(w, http.StatusCreated, p)
}

type paradaUpdateRequest struct {
	Nome                 *string    `json:"nome"`
	Descricao            *string    `json:"descricao"`
	Tipo                 *string    `json:"tipo"`
	EquipeResponsavel    *string    `json:"equipeResponsavel"`
	Macro                *string    `json:"macro"`
	DuracaoPrevistaHoras *int       `json:"duracaoPrevistaHoras"`
	Status               *string    `json:"status"`
	DataFim              *time.Time `json:"dataFim"`
}

func (h *Handler) ParadaUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req paradaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	fields := map[string]any{}
	if req.Nome != nil && *req.Nome != "" {
		fields["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		fields["descricao"] = *req.Descricao
	}
	if req.Tipo != nil && *req.Tipo != "" {
		fields["tipo"] = *req.Tipo
	}
	if req.EquipeResponsavel != nil {
		fields["equipe_responsavel"] = *req.EquipeResponsavel
	}
	if req.Macro != nil {
		fields["macro"] = *req.Macro
	}
	if req.DuracaoPrevistaHoras != nil {
		fields["duracao_prevista_horas"] = *req.DuracaoPrevistaHoras
	}
	if req.Status != nil && *req.Status != "" {
		fields["status"] = *req.Status
	}
	if req.DataFim != nil {
		fields["data_fim"] = *req.DataFim
	}
	if len(fields) == 0 {
		models.WriteError(w, http.StatusBadRequest, "nenhum campo para atualizar")
		return
	}

	p, err := h.d.Paradas.Update(r.Context(), id, fields)
	if err != nil {
		h.writeErr(w, r, err, "parada")
		return
	}
	models.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ParadaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.d.Paradas.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "parada")
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type configuracaoRequest struct {
	Equipamentos []uint                  `json:"equipamentos"`
	Areas        *[]checklist.AreaConfig `json:"areas"`
}

// ParadaConfiguracao — «настроить параду»: генератор проверок
// (reconcile по выбору оборудования), затем — если прислали areas —
// нормализатор конфигурации по областям.
func (h *Handler) ParadaConfiguracao(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	exists, err := h.d.Paradas.Exists(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err, "parada")
		return
	}
	if !exists {
		models.WriteError(w, http.StatusNotFound, "parada not found")
		return
	}

	var req configuracaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if len(req.Equipamentos) == 0 {
		// пустой выбор — полный сброс проверок парады
		if _, err := h.d.Checklist.Reconcile(r.Context(), id, nil); err != nil {
			h.writeErr(w, r, err, "configuracao")
			return
		}
		if req.Areas != nil {
			if err := h.d.Paradas.SetAreasConfig(r.Context(), id, datatypes.JSON("[]")); err != nil {
				h.writeErr(w, r, err, "configuracao")
				return
			}
		}
		models.WriteJSON(w, http.StatusOK, map[string]any{"created": 0, "removed": "all"})
		return
	}

	created, err := h.d.Checklist.Reconcile(r.Context(), id, req.Equipamentos)
	if err != nil {
		h.writeErr(w, r, err, "configuracao")
		return
	}

	if req.Areas != nil {
		if err := h.d.Checklist.SaveAreaConfig(r.Context(), id, *req.Areas); err != nil {
			h.writeErr(w, r, err, "configuracao")
			return
		}
	}

	models.WriteJSON(w, http.StatusOK, map[string]any{"created": created})
}
