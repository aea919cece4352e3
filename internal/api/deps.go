package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"paradas/internal/auth"
	"paradas/internal/checklist"
	"paradas/internal/repo"
)

type Dependencies struct {
	Areas        *repo.AreaStore
	Tipos        *repo.TipoStore
	Equipamentos *repo.EquipamentoStore
	Templates    *repo.CheckTemplateStore
	Paradas      *repo.ParadaStore
	Users        *repo.UserStore
	Checklist    *checklist.Service
	Auth         *auth.Service
}

type Handler struct{ d Dependencies }

func Attach(r *mux.Router, d Dependencies) {
	h := &Handler{d: d}

	// без сессии — только логин
	pub := r.PathPrefix("/api/v1").Subrouter()
	pub.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	sub := r.PathPrefix("/api/v1").Subrouter()
	sub.Use(auth.SessionAuth(d.Auth))

	sub.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	sub.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	sub.HandleFunc("/me", h.MeUpdate).Methods(http.MethodPut)

	sub.HandleFunc("/areas", h.AreasList).Methods(http.MethodGet)
	sub.HandleFunc("/areas", h.AreaCreate).Methods(http.MethodPost)
	sub.HandleFunc("/areas/{id:[0-9]+}", h.AreaGet).Methods(http.MethodGet)
	sub.HandleFunc("/areas/{id:[0-9]+}", h.AreaUpdate).Methods(http.MethodPut)
	sub.HandleFunc("/areas/{id:[0-9]+}", h.AreaDelete).Methods(http.MethodDelete)

	sub.HandleFunc("/tipos", h.TiposList).Methods(http.MethodGet)
	sub.HandleFunc("/tipos", h.TipoCreate).Methods(http.MethodPost)
	sub.HandleFunc("/tipos/{id:[0-9]+}", h.TipoGet).Methods(http.MethodGet)
	sub.HandleFunc("/tipos/{id:[0-9]+}", h.TipoUpdate).Methods(http.MethodPut)
	sub.HandleFunc("/tipos/{id:[0-9]+}", h.TipoDelete).Methods(http.MethodDelete)

	sub.HandleFunc("/equipamentos", h.EquipamentosList).Methods(http.MethodGet)
	sub.HandleFunc("/equipamentos", h.EquipamentoCreate).Methods(http.MethodPost)
	sub.HandleFunc("/equipamentos/{id:[0-9]+}", h.EquipamentoGet).Methods(http.MethodGet)
	sub.HandleFunc("/equipamentos/{id:[0-9]+}", h.EquipamentoUpdate).Methods(http.MethodPut)
	sub.HandleFunc("/equipamentos/{id:[0-9]+}", h.EquipamentoDelete).Methods(http.MethodDelete)

	sub.HandleFunc("/check-templates", h.TemplatesList).Methods(http.MethodGet)
	sub.HandleFunc("/check-templates", h.TemplateCreate).Methods(http.MethodPost)
	sub.HandleFunc("/check-templates/{id:[0-9]+}", h.TemplateGet).Methods(http.MethodGet)
	sub.HandleFunc("/check-templates/{id:[0-9]+}", h.TemplateUpdate).Methods(http.MethodPut)
	sub.HandleFunc("/check-templates/{id:[0-9]+}", h.TemplateDelete).Methods(http.MethodDelete)

	sub.HandleFunc("/paradas", h.ParadasList).Methods(http.MethodGet)
	sub.HandleFunc("/paradas", h.ParadaCreate).Methods(http.MethodPost)
	sub.HandleFunc("/paradas/{id:[0-9]+}", h.ParadaGet).Methods(http.MethodGet)
	sub.HandleFunc("/paradas/{id:[0-9]+}", h.ParadaUpdate).Methods(http.MethodPut)
	sub.HandleFunc("/paradas/{id:[0-9]+}", h.ParadaDelete).Methods(http.MethodDelete)
	sub.HandleFunc("/paradas/{id:[0-9]+}/configuracao", h.ParadaConfiguracao).Methods(http.MethodPost)

	sub.HandleFunc("/testes/{id:[0-9]+}", h.TesteUpdate).Methods(http.MethodPut)

	// управление пользователями — только admin/superadmin
	adm := sub.PathPrefix("/users").Subrouter()
	adm.Use(auth.RequireAdmin)
	adm.HandleFunc("", h.UsersList).Methods(http.MethodGet)
	adm.HandleFunc("", h.UserCreate).Methods(http.MethodPost)
	adm.HandleFunc("/{id:[0-9]+}", h.UserUpdate).Methods(http.MethodPut)
	adm.HandleFunc("/{id:[0-9]+}", h.UserDelete).Methods(http.MethodDelete)
}
