package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"paradas/internal/models"
)

type ParadaStore struct{ db *gorm.DB }

func NewParadaStore(db *gorm.DB) *ParadaStore { return &ParadaStore{db: db} }

// List отдаёт парады (свежие первыми), опционально отфильтрованные
// по статусу, с проверками для сводки по статусам.
func (s *ParadaStore) List(ctx context.Context, status string) ([]models.Parada, error) {
	var rows []models.Parada
	q := s.db.WithContext(ctx).
		Preload("Testes", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "parada_id", "status")
		}).
		Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&rows).Error
	return rows, err
}

// Get грузит параду со всеми вложениями: проверки с оборудованием
// (area+tipo) и шаблоном, конфигурация по областям с детьми.
func (s *ParadaStore) Get(ctx context.Context, id uint) (*models.Parada, error) {
	var p models.Parada
	err := s.db.WithContext(ctx).
		Preload("Testes.Equipamento.Area").
		Preload("Testes.Equipamento.Tipo").
		Preload("Testes.CheckTemplate").
		Preload("ParadaAreas.Membros").
		Preload("ParadaAreas.Equipamentos").
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (s *ParadaStore) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Parada{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (s *ParadaStore) Create(ctx context.Context, p *models.Parada) error {
	if p.Status == "" {
		p.Status = models.ParadaEmAndamento
	}
	if p.DataInicio.IsZero() {
		p.DataInicio = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(p).Error
}

// Update применяет частичный патч. Переход в concluida/cancelada без
// явного dataFim автоматически проставляет dataFim = now.
func (s *ParadaStore) Update(ctx context.Context, id uint, fields map[string]any) (*models.Parada, error) {
	if st, ok := fields["status"].(string); ok {
		if _, has := fields["data_fim"]; !has &&
			(st == models.ParadaConcluida || st == models.ParadaCancelada) {
			fields["data_fim"] = time.Now().UTC()
		}
	}
	res := s.db.WithContext(ctx).Model(&models.Parada{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var p models.Parada
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SetAreasConfig пишет JSON-снапшот конфигурации по областям.
func (s *ParadaStore) SetAreasConfig(ctx context.Context, id uint, cfg datatypes.JSON) error {
	res := s.db.WithContext(ctx).Model(&models.Parada{}).
		Where("id = ?", id).Update("areas_config", cfg)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет параду вместе с проверками и конфигурацией по областям.
func (s *ParadaStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parada_id = ?", id).Delete(&models.Teste{}).Error; err != nil {
			return err
		}
		var paIDs []uint
		if err := tx.Model(&models.ParadaArea{}).
			Where("parada_id = ?", id).Pluck("id", &paIDs).Error; err != nil {
			return err
		}
		if len(paIDs) > 0 {
			if err := tx.Where("parada_area_id IN ?", paIDs).Delete(&models.ParadaAreaMember{}).Error; err != nil {
				return err
			}
			if err := tx.Where("parada_area_id IN ?", paIDs).Delete(&models.ParadaAreaEquip{}).Error; err != nil {
				return err
			}
			if err := tx.Where("parada_id = ?", id).Delete(&models.ParadaArea{}).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.Parada{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
