package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type TesteStore struct{ db *gorm.DB }

func NewTesteStore(db *gorm.DB) *TesteStore { return &TesteStore{db: db} }

func (s *TesteStore) Get(ctx context.Context, id uint) (*models.Teste, error) {
	var t models.Teste
	err := s.db.WithContext(ctx).Preload("CheckTemplate").First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

// DeleteByParada сносит все проверки парады (полный сброс выбора).
func (s *TesteStore) DeleteByParada(ctx context.Context, paradaID uint) error {
	return s.db.WithContext(ctx).
		Where("parada_id = ?", paradaID).
		Delete(&models.Teste{}).Error
}

// DeleteNotIn удаляет проверки оборудования, выпавшего из выбора.
// Ранее записанные результаты таких проверок теряются безвозвратно.
func (s *TesteStore) DeleteNotIn(ctx context.Context, paradaID uint, keep []uint) error {
	return s.db.WithContext(ctx).
		Where("parada_id = ? AND equipamento_id NOT IN ?", paradaID, keep).
		Delete(&models.Teste{}).Error
}

// ListSelection отдаёт существующие проверки парады по выбранному
// оборудованию (только поля, нужные для diff-а).
func (s *TesteStore) ListSelection(ctx context.Context, paradaID uint, equipIDs []uint) ([]models.Teste, error) {
	var rows []models.Teste
	err := s.db.WithContext(ctx).
		Select("id", "equipamento_id", "check_template_id").
		Where("parada_id = ? AND equipamento_id IN ?", paradaID, equipIDs).
		Find(&rows).Error
	return rows, err
}

func (s *TesteStore) CreateBatch(ctx context.Context, rows []models.Teste) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

// Update применяет патч к одной проверке и возвращает свежую строку.
func (s *TesteStore) Update(ctx context.Context, id uint, fields map[string]any) (*models.Teste, error) {
	res := s.db.WithContext(ctx).Model(&models.Teste{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var t models.Teste
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
