package checklist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"paradas/internal/checklist"
	"paradas/internal/models"
	"paradas/internal/repo"
)

var actor = checklist.Actor{ID: 1, Nome: "João Silva", Email: "joao@planta.local"}

func seedTeste(t *testing.T, db *gorm.DB, f fixture, equipamentoID, templateID uint) models.Teste {
	t.Helper()
	teste := models.Teste{
		ParadaID:        f.parada.ID,
		EquipamentoID:   equipamentoID,
		CheckTemplateID: &templateID,
		Status:          models.TesteStatusPendente,
	}
	require.NoError(t, db.Create(&teste).Error)
	return teste
}

func strPtr(s string) *string { return &s }

func TestRecordResultStatusClearsProblem(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	teste := seedTeste(t, db, f, f.e1.ID, f.tplA.ID)

	// сначала фиксируем проблему
	_, err := svc.RecordResult(context.Background(), teste.ID, checklist.ResultPatch{
		Status:            strPtr(models.TesteStatusProblema),
		ProblemaDescricao: strPtr("vazamento no selo"),
	}, actor)
	require.NoError(t, err)

	updated, err := svc.RecordResult(context.Background(), teste.ID, checklist.ResultPatch{
		Status: strPtr(models.TesteStatusOK),
	}, actor)
	require.NoError(t, err)
	require.Equal(t, models.TesteStatusOK, updated.Status)
	require.Nil(t, updated.ProblemaDescricao)
	require.NotNil(t, updated.DataTeste)
	require.NotNil(t, updated.TestadoPor)
	require.Equal(t, "João Silva", *updated.TestadoPor)
}

func TestRecordResultEmptyPatch(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	teste := seedTeste(t, db, f, f.e1.ID, f.tplA.ID)

	_, err := svc.RecordResult(context.Background(), teste.ID, checklist.ResultPatch{}, actor)
	require.ErrorIs(t, err, checklist.ErrValidation)
}

func TestRecordResultNotFound(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	svc := newService(db)

	_, err := svc.RecordResult(context.Background(), 9999, checklist.ResultPatch{
		Status: strPtr(models.TesteStatusOK),
	}, actor)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRecordResultActorFallbackToEmail(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	teste := seedTeste(t, db, f, f.e1.ID, f.tplA.ID)

	updated, err := svc.RecordResult(context.Background(), teste.ID, checklist.ResultPatch{
		Status: strPtr(models.TesteStatusOK),
	}, checklist.Actor{ID: 2, Email: "plantao@planta.local"})
	require.NoError(t, err)
	require.NotNil(t, updated.TestadoPor)
	require.Equal(t, "plantao@planta.local", *updated.TestadoPor)
}

// Автоклассификация числовых шаблонов: tplC настраивается на [10, 20].
func TestRecordMeasurementClassification(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	min, max := 10.0, 20.0
	require.NoError(t, db.Model(&models.CheckTemplate{}).Where("id = ?", f.tplC.ID).
		Updates(map[string]any{"valor_minimo": min, "valor_maximo": max}).Error)

	cases := []struct {
		raw        string
		wantStatus string
	}{
		{"15", models.TesteStatusOK},
		{"25", models.TesteStatusProblema},
		{"12,5", models.TesteStatusOK}, // запятая как десятичный разделитель
		{"9,99", models.TesteStatusProblema},
		{"10", models.TesteStatusOK}, // границы включительно
		{"20", models.TesteStatusOK},
	}
	for _, tc := range cases {
		teste := seedTeste(t, db, f, f.e2.ID, f.tplC.ID)
		updated, err := svc.RecordResult(ctx, teste.ID, checklist.ResultPatch{
			Valor: strPtr(tc.raw),
		}, actor)
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.wantStatus, updated.Status, tc.raw)
		require.NotNil(t, updated.Observacoes, tc.raw)
		require.Equal(t, tc.raw, *updated.Observacoes, tc.raw)
		require.NoError(t, db.Delete(&models.Teste{}, teste.ID).Error)
	}
}

func TestRecordMeasurementUnparsableKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	teste := seedTeste(t, db, f, f.e2.ID, f.tplC.ID)

	updated, err := svc.RecordResult(context.Background(), teste.ID, checklist.ResultPatch{
		Valor: strPtr("abc"),
	}, actor)
	require.NoError(t, err)
	// статус не переписан, сырой текст сохранён как есть
	require.Equal(t, models.TesteStatusPendente, updated.Status)
	require.NotNil(t, updated.Observacoes)
	require.Equal(t, "abc", *updated.Observacoes)
}

func TestRecordMeasurementOpenEndedBounds(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	// только нижняя граница
	min := 5.0
	require.NoError(t, db.Model(&models.CheckTemplate{}).Where("id = ?", f.tplC.ID).
		Update("valor_minimo", min).Error)

	teste := seedTeste(t, db, f, f.e2.ID, f.tplC.ID)
	updated, err := svc.RecordResult(ctx, teste.ID, checklist.ResultPatch{Valor: strPtr("1000")}, actor)
	require.NoError(t, err)
	require.Equal(t, models.TesteStatusOK, updated.Status)

	updated, err = svc.RecordResult(ctx, teste.ID, checklist.ResultPatch{Valor: strPtr("4.9")}, actor)
	require.NoError(t, err)
	require.Equal(t, models.TesteStatusProblema, updated.Status)
}
