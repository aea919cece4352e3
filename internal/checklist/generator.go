package checklist

import (
	"context"
	"fmt"

	"paradas/internal/models"
)

// Reconcile приводит набор проверок парады к выбранному оборудованию.
// Это set-reconciliation, а не полная замена: проверки, чья пара
// (equipamento, template) остаётся в выборе, не трогаются вместе с уже
// записанными результатами. Повторный вызов с тем же выбором даёт 0.
//
// Пустой выбор — осознанный полный сброс: удаляются все проверки
// парады вместе с результатами.
func (s *Service) Reconcile(ctx context.Context, paradaID uint, selected []uint) (created int, err error) {
	if len(selected) == 0 {
		if err := s.Testes.DeleteByParada(ctx, paradaID); err != nil {
			return 0, err
		}
		return 0, nil
	}

	// оборудование с типом и шаблонами типа; без типа — ноль проверок
	equipamentos, err := s.Equipamentos.ListByIDsWithTemplates(ctx, selected)
	if err != nil {
		return 0, err
	}

	// оборудование, выпавшее из выбора, теряет проверки и результаты
	if err := s.Testes.DeleteNotIn(ctx, paradaID, selected); err != nil {
		return 0, err
	}

	existentes, err := s.Testes.ListSelection(ctx, paradaID, selected)
	if err != nil {
		return 0, err
	}
	existe := make(map[string]struct{}, len(existentes))
	for _, t := range existentes {
		if t.CheckTemplateID == nil {
			continue
		}
		existe[diffKey(t.EquipamentoID, *t.CheckTemplateID)] = struct{}{}
	}

	var toCreate []models.Teste
	for _, eq := range equipamentos {
		if eq.Tipo == nil {
			continue
		}
		for _, tpl := range eq.Tipo.CheckTemplates {
			if _, ok := existe[diffKey(eq.ID, tpl.ID)]; ok {
				continue
			}
			tplID := tpl.ID
			toCreate = append(toCreate, models.Teste{
				ParadaID:        paradaID,
				EquipamentoID:   eq.ID,
				CheckTemplateID: &tplID,
				Status:          models.TesteStatusPendente,
			})
		}
	}

	if err := s.Testes.CreateBatch(ctx, toCreate); err != nil {
		return 0, err
	}
	return len(toCreate), nil
}

func diffKey(equipamentoID, templateID uint) string {
	return fmt.Sprintf("%d:%d", equipamentoID, templateID)
}
