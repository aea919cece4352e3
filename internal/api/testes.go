package api

import (
	"encoding/json"
	"net/http"

	"paradas/internal/auth"
	"paradas/internal/checklist"
	"paradas/internal/models"
)

// TesteUpdate записывает результат одной проверки.
func (h *Handler) TesteUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		models.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var patch checklist.ResultPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	u := auth.UserFrom(r)
	actor := checklist.Actor{ID: u.ID, Nome: u.Nome, Email: u.Email}

	updated, err := h.d.Checklist.RecordResult(r.Context(), id, patch, actor)
	if err != nil {
		h.writeErr(w, r, err, "teste")
		return
	}
	models.WriteJSON(w, http.StatusOK, updated)
}
