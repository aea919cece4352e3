package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type ParadaAreaStore struct{ db *gorm.DB }

func NewParadaAreaStore(db *gorm.DB) *ParadaAreaStore { return &ParadaAreaStore{db: db} }

// Find ищет строку конфигурации по паре (paradaId, areaId).
func (s *ParadaAreaStore) Find(ctx context.Context, paradaID, areaID uint) (*models.ParadaArea, error) {
	var pa models.ParadaArea
	err := s.db.WithContext(ctx).
		Where("parada_id = ? AND area_id = ?", paradaID, areaID).
		First(&pa).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &pa, err
}

// Update обновляет шапку ParadaArea (ответственный, флаг команды).
func (s *ParadaAreaStore) Update(ctx context.Context, pa *models.ParadaArea) error {
	return s.db.WithContext(ctx).Model(&models.ParadaArea{ID: pa.ID}).
		Select("ResponsavelNome", "EquipeHabilitada").Updates(pa).Error
}

// ReplaceChildren переписывает детей целиком: delete-all + bulk-insert,
// одним атомарным блоком. Списки маленькие и всегда приходят полностью,
// diff не нужен.
func (s *ParadaAreaStore) ReplaceChildren(ctx context.Context, paradaAreaID uint,
	membros []models.ParadaAreaMember, equips []models.ParadaAreaEquip) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parada_area_id = ?", paradaAreaID).
			Delete(&models.ParadaAreaMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parada_area_id = ?", paradaAreaID).
			Delete(&models.ParadaAreaEquip{}).Error; err != nil {
			return err
		}
		for i := range membros {
			membros[i].ID = 0
			membros[i].ParadaAreaID = paradaAreaID
		}
		for i := range equips {
			equips[i].ID = 0
			equips[i].ParadaAreaID = paradaAreaID
		}
		if len(membros) > 0 {
			if err := tx.Create(&membros).Error; err != nil {
				return err
			}
		}
		if len(equips) > 0 {
			if err := tx.Create(&equips).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Create пишет новую ParadaArea вместе с детьми одной составной записью.
func (s *ParadaAreaStore) Create(ctx context.Context, pa *models.ParadaArea) error {
	return s.db.WithContext(ctx).Create(pa).Error
}
