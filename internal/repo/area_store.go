package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type AreaStore struct{ db *gorm.DB }

func NewAreaStore(db *gorm.DB) *AreaStore { return &AreaStore{db: db} }

func (s *AreaStore) List(ctx context.Context) ([]models.Area, error) {
	var rows []models.Area
	err := s.db.WithContext(ctx).Preload("Equipamentos").Order("id asc").Find(&rows).Error
	return rows, err
}

func (s *AreaStore) Get(ctx context.Context, id uint) (*models.Area, error) {
	var a models.Area
	err := s.db.WithContext(ctx).Preload("Equipamentos").First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (s *AreaStore) Create(ctx context.Context, a *models.Area) error {
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *AreaStore) Update(ctx context.Context, a *models.Area) error {
	res := s.db.WithContext(ctx).Model(&models.Area{ID: a.ID}).
		Select("Nome", "Descricao", "Ativo").Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет область вместе с её оборудованием и проверками
// этого оборудования. Каскад явный — схема FK-каскада не задаёт.
func (s *AreaStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eqIDs []uint
		if err := tx.Model(&models.Equipamento{}).
			Where("area_id = ?", id).Pluck("id", &eqIDs).Error; err != nil {
			return err
		}
		if len(eqIDs) > 0 {
			if err := tx.Where("equipamento_id IN ?", eqIDs).Delete(&models.Teste{}).Error; err != nil {
				return err
			}
			if err := tx.Where("area_id = ?", id).Delete(&models.Equipamento{}).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.Area{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
