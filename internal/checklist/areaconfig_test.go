package checklist_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"paradas/internal/checklist"
	"paradas/internal/models"
	"paradas/internal/repo"
)

func TestSaveAreaConfigValidationGate(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)

	err := svc.SaveAreaConfig(context.Background(), f.parada.ID, []checklist.AreaConfig{
		{AreaID: 1, EquipamentosSelecionados: []uint{f.e1.ID}, Responsavel: "  "},
	})
	require.ErrorIs(t, err, checklist.ErrValidation)

	// ноль записей — ни нормализованных строк, ни снапшота
	var n int64
	require.NoError(t, db.Model(&models.ParadaArea{}).Count(&n).Error)
	require.Zero(t, n)
	var p models.Parada
	require.NoError(t, db.First(&p, f.parada.ID).Error)
	require.Empty(t, p.AreasConfig)
}

func TestSaveAreaConfigNormalizesAndSnapshots(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	setor := "Elétrica"
	areas := []checklist.AreaConfig{{
		AreaID:                   f.e1.AreaID,
		EquipamentosSelecionados: []uint{f.e1.ID, f.e2.ID},
		Responsavel:              "João Silva",
		Membros: []checklist.AreaMembro{
			{Nome: "Maria Santos", Setor: &setor},
			{Nome: "Pedro Costa"},
		},
	}}
	require.NoError(t, svc.SaveAreaConfig(ctx, f.parada.ID, areas))

	var pa models.ParadaArea
	require.NoError(t, db.Preload("Membros").Preload("Equipamentos").
		Where("parada_id = ? AND area_id = ?", f.parada.ID, f.e1.AreaID).First(&pa).Error)
	require.NotNil(t, pa.ResponsavelNome)
	require.Equal(t, "João Silva", *pa.ResponsavelNome)
	require.True(t, pa.EquipeHabilitada)
	require.Len(t, pa.Membros, 2)
	require.Len(t, pa.Equipamentos, 2)

	var p models.Parada
	require.NoError(t, db.First(&p, f.parada.ID).Error)
	var snapshot []checklist.AreaConfig
	require.NoError(t, json.Unmarshal(p.AreasConfig, &snapshot))
	require.Equal(t, areas, snapshot)

	// повторное сохранение: upsert шапки, полная замена детей
	areas[0].Responsavel = "Carlos Oliveira"
	areas[0].Membros = nil
	areas[0].EquipamentosSelecionados = []uint{f.e2.ID}
	require.NoError(t, svc.SaveAreaConfig(ctx, f.parada.ID, areas))

	var count int64
	require.NoError(t, db.Model(&models.ParadaArea{}).
		Where("parada_id = ?", f.parada.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	require.NoError(t, db.Preload("Membros").Preload("Equipamentos").
		First(&pa, pa.ID).Error)
	require.Equal(t, "Carlos Oliveira", *pa.ResponsavelNome)
	require.False(t, pa.EquipeHabilitada)
	require.Empty(t, pa.Membros)
	require.Len(t, pa.Equipamentos, 1)
	require.Equal(t, f.e2.ID, pa.Equipamentos[0].EquipamentoID)
}

// сломанный репозиторий нормализованных таблиц — имитация
// несмигрированной схемы
type brokenParadaAreas struct{}

var errNoTables = errors.New("no such table: parada_areas")

func (brokenParadaAreas) Find(context.Context, uint, uint) (*models.ParadaArea, error) {
	return nil, errNoTables
}
func (brokenParadaAreas) Update(context.Context, *models.ParadaArea) error { return errNoTables }
func (brokenParadaAreas) ReplaceChildren(context.Context, uint, []models.ParadaAreaMember, []models.ParadaAreaEquip) error {
	return errNoTables
}
func (brokenParadaAreas) Create(context.Context, *models.ParadaArea) error { return errNoTables }

func TestSaveAreaConfigSnapshotFallback(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := checklist.New(
		repo.NewEquipamentoStore(db),
		repo.NewTesteStore(db),
		repo.NewParadaStore(db),
		brokenParadaAreas{},
	)

	areas := []checklist.AreaConfig{{
		AreaID:                   f.e1.AreaID,
		EquipamentosSelecionados: []uint{f.e1.ID},
		Responsavel:              "Ana Paula",
	}}
	// нормализованный путь падает, но вызов успешен и снапшот записан
	require.NoError(t, svc.SaveAreaConfig(context.Background(), f.parada.ID, areas))

	var p models.Parada
	require.NoError(t, db.First(&p, f.parada.ID).Error)
	var snapshot []checklist.AreaConfig
	require.NoError(t, json.Unmarshal(p.AreasConfig, &snapshot))
	require.Equal(t, areas, snapshot)
}
