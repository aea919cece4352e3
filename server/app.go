package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paradas/config"
	"paradas/internal/api"
	"paradas/internal/auth"
	"paradas/internal/checklist"
	"paradas/internal/db"
	"paradas/internal/health"
	"paradas/internal/logs"
	"paradas/internal/middleware"
	"paradas/internal/models"
	"paradas/internal/repo"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Логи */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB */
	d, err := db.Open(a.cfg.Database.Driver, a.cfg.Database.DSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	a.db = d

	if err := a.db.AutoMigrate(
		&models.Area{},
		&models.TipoEquipamento{},
		&models.Equipamento{},
		&models.CheckTemplate{},
		&models.Parada{},
		&models.Teste{},
		&models.ParadaArea{},
		&models.ParadaAreaMember{},
		&models.ParadaAreaEquip{},
		&models.User{},
		&models.Session{},
	); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	/* 3) Stores + сервисы */
	areas := repo.NewAreaStore(a.db)
	tipos := repo.NewTipoStore(a.db)
	equipamentos := repo.NewEquipamentoStore(a.db)
	templates := repo.NewCheckTemplateStore(a.db)
	paradas := repo.NewParadaStore(a.db)
	testes := repo.NewTesteStore(a.db)
	paradaAreas := repo.NewParadaAreaStore(a.db)
	users := repo.NewUserStore(a.db)
	sessions := repo.NewSessionStore(a.db)

	chk := checklist.New(equipamentos, testes, paradas, paradaAreas)
	authSvc := auth.New(users, sessions, a.cfg.Auth.SessionTTL)

	if err := authSvc.Bootstrap(context.Background(),
		a.cfg.Auth.BootstrapEmail, a.cfg.Auth.BootstrapPassword); err != nil {
		log.Fatalf("bootstrap admin failed: %v", err)
	}

	/* 4) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
	)

	health.RegisterRoutes(a.Router, a.db) // /healthz, /readyz

	api.Attach(a.Router, api.Dependencies{
		Areas:        areas,
		Tipos:        tipos,
		Equipamentos: equipamentos,
		Templates:    templates,
		Paradas:      paradas,
		Users:        users,
		Checklist:    chk,
		Auth:         authSvc,
	})

	/* (необязательно) вывести известные маршруты в лог при старте */
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Жёсткие таймауты — это важно для production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
