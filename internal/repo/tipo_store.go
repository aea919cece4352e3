package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type TipoStore struct{ db *gorm.DB }

func NewTipoStore(db *gorm.DB) *TipoStore { return &TipoStore{db: db} }

func (s *TipoStore) List(ctx context.Context) ([]models.TipoEquipamento, error) {
	var rows []models.TipoEquipamento
	err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (s *TipoStore) Get(ctx context.Context, id uint) (*models.TipoEquipamento, error) {
	var t models.TipoEquipamento
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (s *TipoStore) Create(ctx context.Context, t *models.TipoEquipamento) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *TipoStore) Update(ctx context.Context, t *models.TipoEquipamento) error {
	res := s.db.WithContext(ctx).Model(&models.TipoEquipamento{ID: t.ID}).
		Select("Nome", "Descricao", "Ativo").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет тип: его шаблоны проверок уходят, у оборудования
// этого типа TipoID обнуляется (оборудование остаётся).
func (s *TipoStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tipo_id = ?", id).Delete(&models.CheckTemplate{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Equipamento{}).
			Where("tipo_id = ?", id).Update("tipo_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.TipoEquipamento{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
