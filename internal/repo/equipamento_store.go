package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type EquipamentoStore struct{ db *gorm.DB }

func NewEquipamentoStore(db *gorm.DB) *EquipamentoStore { return &EquipamentoStore{db: db} }

func (s *EquipamentoStore) List(ctx context.Context) ([]models.Equipamento, error) {
	var rows []models.Equipamento
	err := s.db.WithContext(ctx).Preload("Area").Order("id asc").Find(&rows).Error
	return rows, err
}

func (s *EquipamentoStore) Get(ctx context.Context, id uint) (*models.Equipamento, error) {
	var e models.Equipamento
	err := s.db.WithContext(ctx).Preload("Area").First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &e, err
}

// ListByIDsWithTemplates грузит выбранное оборудование вместе с типом
// и шаблонами проверок типа (оборудование без типа даёт ноль проверок).
func (s *EquipamentoStore) ListByIDsWithTemplates(ctx context.Context, ids []uint) ([]models.Equipamento, error) {
	var rows []models.Equipamento
	err := s.db.WithContext(ctx).
		Preload("Tipo.CheckTemplates").
		Where("id IN ?", ids).
		Find(&rows).Error
	return rows, err
}

func (s *EquipamentoStore) Create(ctx context.Context, e *models.Equipamento) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *EquipamentoStore) Update(ctx context.Context, e *models.Equipamento) error {
	res := s.db.WithContext(ctx).Model(&models.Equipamento{ID: e.ID}).
		Select("Nome", "Tag", "Descricao", "Ativo", "AreaID", "TipoID").Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет оборудование вместе с его проверками.
func (s *EquipamentoStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipamento_id = ?", id).Delete(&models.Teste{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Equipamento{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
