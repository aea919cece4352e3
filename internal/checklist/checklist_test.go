package checklist_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"paradas/internal/checklist"
	"paradas/internal/models"
	"paradas/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "checklist.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Area{},
		&models.TipoEquipamento{},
		&models.Equipamento{},
		&models.CheckTemplate{},
		&models.Parada{},
		&models.Teste{},
		&models.ParadaArea{},
		&models.ParadaAreaMember{},
		&models.ParadaAreaEquip{},
	))
	return db
}

func newService(db *gorm.DB) *checklist.Service {
	return checklist.New(
		repo.NewEquipamentoStore(db),
		repo.NewTesteStore(db),
		repo.NewParadaStore(db),
		repo.NewParadaAreaStore(db),
	)
}

// fixture: область, два типа (T1: два шаблона, T2: один), e1/e2 с типами,
// e3 без типа, одна парада.
type fixture struct {
	parada     models.Parada
	e1, e2, e3 models.Equipamento
	tplA, tplB models.CheckTemplate
	tplC       models.CheckTemplate
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	area := models.Area{Nome: "Área de Produção", Ativo: true}
	require.NoError(t, db.Create(&area).Error)

	t1 := models.TipoEquipamento{Nome: "Bomba", Ativo: true}
	t2 := models.TipoEquipamento{Nome: "Motor", Ativo: true}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)

	f.tplA = models.CheckTemplate{Nome: "Vibração", TipoCampo: models.CampoStatus, Obrigatorio: true, TipoID: t1.ID}
	f.tplB = models.CheckTemplate{Nome: "Vazamento", TipoCampo: models.CampoStatus, Obrigatorio: true, TipoID: t1.ID}
	f.tplC = models.CheckTemplate{Nome: "Corrente", TipoCampo: models.CampoNumero, Obrigatorio: true, TipoID: t2.ID}
	require.NoError(t, db.Create(&f.tplA).Error)
	require.NoError(t, db.Create(&f.tplB).Error)
	require.NoError(t, db.Create(&f.tplC).Error)

	f.e1 = models.Equipamento{Nome: "Bomba Principal", Tag: "BOMB-001", Ativo: true, AreaID: area.ID, TipoID: &t1.ID}
	f.e2 = models.Equipamento{Nome: "Motor 1", Tag: "MOT-001", Ativo: true, AreaID: area.ID, TipoID: &t2.ID}
	f.e3 = models.Equipamento{Nome: "Válvula", Tag: "VAL-001", Ativo: true, AreaID: area.ID}
	require.NoError(t, db.Create(&f.e1).Error)
	require.NoError(t, db.Create(&f.e2).Error)
	require.NoError(t, db.Create(&f.e3).Error)

	f.parada = models.Parada{Nome: "Parada Preventiva", Tipo: models.ParadaPreventiva, Status: models.ParadaEmAndamento}
	require.NoError(t, db.Create(&f.parada).Error)
	return f
}

func loadTestes(t *testing.T, db *gorm.DB, paradaID uint) []models.Teste {
	t.Helper()
	var rows []models.Teste
	require.NoError(t, db.Where("parada_id = ?", paradaID).Order("id").Find(&rows).Error)
	return rows
}

func TestReconcileCrossProduct(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)

	created, err := svc.Reconcile(context.Background(), f.parada.ID, []uint{f.e1.ID, f.e2.ID})
	require.NoError(t, err)
	require.Equal(t, 3, created)

	rows := loadTestes(t, db, f.parada.ID)
	require.Len(t, rows, 3)
	got := map[[2]uint]bool{}
	for _, r := range rows {
		require.NotNil(t, r.CheckTemplateID)
		require.Equal(t, models.TesteStatusPendente, r.Status)
		got[[2]uint{r.EquipamentoID, *r.CheckTemplateID}] = true
	}
	require.True(t, got[[2]uint{f.e1.ID, f.tplA.ID}])
	require.True(t, got[[2]uint{f.e1.ID, f.tplB.ID}])
	require.True(t, got[[2]uint{f.e2.ID, f.tplC.ID}])
}

func TestReconcileIdempotent(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, f.parada.ID, []uint{f.e1.ID, f.e2.ID})
	require.NoError(t, err)
	before := loadTestes(t, db, f.parada.ID)

	created, err := svc.Reconcile(ctx, f.parada.ID, []uint{f.e1.ID, f.e2.ID})
	require.NoError(t, err)
	require.Zero(t, created)
	require.Equal(t, before, loadTestes(t, db, f.parada.ID))
}

func TestReconcilePreservesRecordedResults(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, f.parada.ID, []uint{f.e1.ID, f.e2.ID})
	require.NoError(t, err)

	// записываем результат на одной из проверок e1
	obs := "ruído anormal"
	require.NoError(t, db.Model(&models.Teste{}).
		Where("parada_id = ? AND equipamento_id = ? AND check_template_id = ?",
			f.parada.ID, f.e1.ID, f.tplA.ID).
		Updates(map[string]any{"status": models.TesteStatusProblema, "observacoes": obs}).Error)

	// e2 выпадает из выбора, e1 остаётся
	created, err := svc.Reconcile(ctx, f.parada.ID, []uint{f.e1.ID})
	require.NoError(t, err)
	require.Zero(t, created)

	rows := loadTestes(t, db, f.parada.ID)
	require.Len(t, rows, 2) // только проверки e1
	for _, r := range rows {
		require.Equal(t, f.e1.ID, r.EquipamentoID)
	}
	var kept models.Teste
	require.NoError(t, db.Where("parada_id = ? AND equipamento_id = ? AND check_template_id = ?",
		f.parada.ID, f.e1.ID, f.tplA.ID).First(&kept).Error)
	require.Equal(t, models.TesteStatusProblema, kept.Status)
	require.NotNil(t, kept.Observacoes)
	require.Equal(t, obs, *kept.Observacoes)
}

func TestReconcileEmptySelectionRemovesAll(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, f.parada.ID, []uint{f.e1.ID, f.e2.ID})
	require.NoError(t, err)
	require.NotEmpty(t, loadTestes(t, db, f.parada.ID))

	created, err := svc.Reconcile(ctx, f.parada.ID, nil)
	require.NoError(t, err)
	require.Zero(t, created)
	require.Empty(t, loadTestes(t, db, f.parada.ID))
}

func TestReconcileEquipmentWithoutTypeContributesNothing(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := newService(db)

	created, err := svc.Reconcile(context.Background(), f.parada.ID, []uint{f.e3.ID})
	require.NoError(t, err)
	require.Zero(t, created)
	require.Empty(t, loadTestes(t, db, f.parada.ID))
}
