// Package checklist содержит ядро приложения: генерацию набора
// проверок парады (reconcile по выбранному оборудованию), нормализацию
// конфигурации по областям со снапшот-фоллбеком и запись результатов.
package checklist

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"paradas/internal/models"
)

// ErrValidation — входные данные не проходят проверку; оборачивается
// деталями через fmt.Errorf("%w: ...").
var ErrValidation = errors.New("validation failed")

// Репозитории — минимальные контракты, которые нужны ядру.
type EquipamentoRepo interface {
	ListByIDsWithTemplates(ctx context.Context, ids []uint) ([]models.Equipamento, error)
}

type TesteRepo interface {
	Get(ctx context.Context, id uint) (*models.Teste, error)
	DeleteByParada(ctx context.Context, paradaID uint) error
	DeleteNotIn(ctx context.Context, paradaID uint, keep []uint) error
	ListSelection(ctx context.Context, paradaID uint, equipIDs []uint) ([]models.Teste, error)
	CreateBatch(ctx context.Context, rows []models.Teste) error
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Teste, error)
}

type ParadaRepo interface {
	SetAreasConfig(ctx context.Context, id uint, cfg datatypes.JSON) error
}

type ParadaAreaRepo interface {
	Find(ctx context.Context, paradaID, areaID uint) (*models.ParadaArea, error)
	Update(ctx context.Context, pa *models.ParadaArea) error
	ReplaceChildren(ctx context.Context, paradaAreaID uint,
		membros []models.ParadaAreaMember, equips []models.ParadaAreaEquip) error
	Create(ctx context.Context, pa *models.ParadaArea) error
}

type Service struct {
	Equipamentos EquipamentoRepo
	Testes       TesteRepo
	Paradas      ParadaRepo
	ParadaAreas  ParadaAreaRepo
}

func New(eq EquipamentoRepo, ts TesteRepo, ps ParadaRepo, pas ParadaAreaRepo) *Service {
	return &Service{Equipamentos: eq, Testes: ts, Paradas: ps, ParadaAreas: pas}
}
