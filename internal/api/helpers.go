package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"paradas/internal/checklist"
	"paradas/internal/logs"
	"paradas/internal/middleware"
	"paradas/internal/models"
	"paradas/internal/repo"
)

func pathID(r *http.Request) (uint, bool) {
	v, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// writeErr переводит ошибки нижних слоёв в HTTP-коды. Внутренние
// детали наружу не уходят — только generic сообщение и лог по reqid.
func (h *Handler) writeErr(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		models.WriteError(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, checklist.ErrValidation):
		models.WriteError(w, http.StatusBadRequest, validationDetail(err))
	default:
		logs.Logger.Errorf("reqid=%s %s: %v", middleware.GetRequestID(r), what, err)
		models.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func validationDetail(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// uniqueField — best-effort перевод unique-constraint ошибки БД в имя
// поля (используется только на записях пользователей).
func uniqueField(err error) string {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique") && !strings.Contains(msg, "duplicate") {
		return ""
	}
	if strings.Contains(msg, "email") {
		return "email"
	}
	if strings.Contains(msg, "username") {
		return "username"
	}
	return ""
}
