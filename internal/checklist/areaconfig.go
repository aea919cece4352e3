package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"paradas/internal/logs"
	"paradas/internal/models"
	"paradas/internal/repo"
)

// AreaConfig — входной payload конфигурации одной области.
type AreaConfig struct {
	AreaID                   uint         `json:"areaId"`
	EquipamentosSelecionados []uint       `json:"equipamentosSelecionados"`
	Responsavel              string       `json:"responsavel"`
	Membros                  []AreaMembro `json:"membros"`
}

type AreaMembro struct {
	Nome  string  `json:"nome"`
	Setor *string `json:"setor"`
}

// SaveAreaConfig сохраняет конфигурацию парады по областям.
//
// Валидация выполняется до любых записей: область с непустым выбором
// оборудования обязана иметь непустого ответственного. Дальше — два
// независимых шага записи: нормализованные таблицы ParadaArea* (upsert
// шапки + полная замена детей) и безусловный JSON-снапшот на самой
// параде. Ошибка первого шага логируется как warning и не роняет
// вызов — снапшот пишется всегда (деградированный режим при
// несмигрированной схеме).
func (s *Service) SaveAreaConfig(ctx context.Context, paradaID uint, areas []AreaConfig) error {
	for _, a := range areas {
		if len(a.EquipamentosSelecionados) > 0 && strings.TrimSpace(a.Responsavel) == "" {
			return fmt.Errorf("%w: defina um responsavel para cada area selecionada", ErrValidation)
		}
	}

	if err := s.saveNormalized(ctx, paradaID, areas); err != nil {
		logs.Logger.Warnf("parada %d: normalized area config write failed, keeping JSON snapshot only: %v",
			paradaID, err)
	}

	snapshot, err := json.Marshal(areas)
	if err != nil {
		return err
	}
	return s.Paradas.SetAreasConfig(ctx, paradaID, snapshot)
}

func (s *Service) saveNormalized(ctx context.Context, paradaID uint, areas []AreaConfig) error {
	for _, a := range areas {
		if a.AreaID == 0 {
			continue
		}
		responsavel := optString(a.Responsavel)
		membros := make([]models.ParadaAreaMember, 0, len(a.Membros))
		for _, m := range a.Membros {
			membros = append(membros, models.ParadaAreaMember{Nome: m.Nome, Setor: m.Setor})
		}
		equips := make([]models.ParadaAreaEquip, 0, len(a.EquipamentosSelecionados))
		for _, eid := range a.EquipamentosSelecionados {
			equips = append(equips, models.ParadaAreaEquip{EquipamentoID: eid})
		}

		existing, err := s.ParadaAreas.Find(ctx, paradaID, a.AreaID)
		switch {
		case err == nil:
			existing.ResponsavelNome = responsavel
			existing.EquipeHabilitada = len(a.Membros) > 0
			if err := s.ParadaAreas.Update(ctx, existing); err != nil {
				return err
			}
			if err := s.ParadaAreas.ReplaceChildren(ctx, existing.ID, membros, equips); err != nil {
				return err
			}
		case errors.Is(err, repo.ErrNotFound):
			pa := &models.ParadaArea{
				ParadaID:         paradaID,
				AreaID:           a.AreaID,
				ResponsavelNome:  responsavel,
				EquipeHabilitada: len(a.Membros) > 0,
				Membros:          membros,
				Equipamentos:     equips,
			}
			if err := s.ParadaAreas.Create(ctx, pa); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

func optString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
