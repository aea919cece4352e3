package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paradas/internal/models"
)

type CheckTemplateStore struct{ db *gorm.DB }

func NewCheckTemplateStore(db *gorm.DB) *CheckTemplateStore { return &CheckTemplateStore{db: db} }

// Отдаём по возрастанию ordem; шаблоны без ordem — в конце.
func (s *CheckTemplateStore) List(ctx context.Context) ([]models.CheckTemplate, error) {
	var rows []models.CheckTemplate
	err := s.db.WithContext(ctx).
		Order("ordem is null, ordem asc, id asc").
		Find(&rows).Error
	return rows, err
}

func (s *CheckTemplateStore) Get(ctx context.Context, id uint) (*models.CheckTemplate, error) {
	var t models.CheckTemplate
	err := s.db.WithContext(ctx).Preload("Tipo").First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (s *CheckTemplateStore) Create(ctx context.Context, t *models.CheckTemplate) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *CheckTemplateStore) Update(ctx context.Context, t *models.CheckTemplate) error {
	res := s.db.WithContext(ctx).Model(&models.CheckTemplate{ID: t.ID}).
		Select("Nome", "Descricao", "Ordem", "Obrigatorio", "TipoCampo",
			"Unidade", "ValorMinimo", "ValorMaximo").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CheckTemplateStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.CheckTemplate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
