package checklist

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paradas/internal/models"
)

// Actor — кто записал результат (для testadoPor).
type Actor struct {
	ID    uint
	Nome  string
	Email string
}

func (a Actor) displayName() string {
	if a.Nome != "" {
		return a.Nome
	}
	return a.Email
}

// ResultPatch — частичное обновление проверки. nil-поля не трогаются.
// Valor — сырой текст измеренного значения для шаблонов
// numero/temperatura; хранится в Observacoes как есть, статус
// выставляется автоклассификатором только при успешном парсинге.
type ResultPatch struct {
	Status            *string `json:"status"`
	Observacoes       *string `json:"observacoes"`
	ProblemaDescricao *string `json:"problemaDescricao"`
	EvidenciaImagem   *string `json:"evidenciaImagem"`
	ResolucaoTexto    *string `json:"resolucaoTexto"`
	ResolucaoImagem   *string `json:"resolucaoImagem"`
	Valor             *string `json:"valor"`
}

// RecordResult применяет патч к одной проверке. Пустой патч — ошибка
// валидации; несуществующий teste — repo.ErrNotFound. Любое успешное
// обновление штампует dataTeste и testadoPor.
func (s *Service) RecordResult(ctx context.Context, testeID uint, patch ResultPatch, actor Actor) (*models.Teste, error) {
	teste, err := s.Testes.Get(ctx, testeID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if patch.Status != nil && *patch.Status != "" {
		fields["status"] = *patch.Status
		// ok/nao_aplica снимает описание проблемы
		if *patch.Status == models.TesteStatusOK || *patch.Status == models.TesteStatusNaoAplica {
			fields["problema_descricao"] = nil
		}
	}
	if patch.Observacoes != nil {
		fields["observacoes"] = *patch.Observacoes
	}
	if patch.ProblemaDescricao != nil {
		fields["problema_descricao"] = *patch.ProblemaDescricao
	}
	if patch.EvidenciaImagem != nil {
		fields["evidencia_imagem"] = nilIfEmpty(*patch.EvidenciaImagem)
	}
	if patch.ResolucaoTexto != nil {
		fields["resolucao_texto"] = nilIfEmpty(*patch.ResolucaoTexto)
	}
	if patch.ResolucaoImagem != nil {
		fields["resolucao_imagem"] = nilIfEmpty(*patch.ResolucaoImagem)
	}

	if patch.Valor != nil && isMeasured(teste.CheckTemplate) {
		applyMeasurement(fields, teste.CheckTemplate, *patch.Valor)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nenhum campo para atualizar", ErrValidation)
	}

	fields["data_teste"] = time.Now().UTC()
	if name := actor.displayName(); name != "" {
		fields["testado_por"] = name
	}

	return s.Testes.Update(ctx, testeID, fields)
}

func isMeasured(tpl *models.CheckTemplate) bool {
	return tpl != nil &&
		(tpl.TipoCampo == models.CampoNumero || tpl.TipoCampo == models.CampoTemperatura)
}

// applyMeasurement — автоклассификация числового значения: сырой текст
// всегда уходит в observacoes; при успешном парсинге (запятая как
// десятичный разделитель допустима) статус ok внутри
// [valorMinimo, valorMaximo] (границы опциональны), иначе problema.
func applyMeasurement(fields map[string]any, tpl *models.CheckTemplate, raw string) {
	fields["observacoes"] = raw

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64)
	if err != nil {
		return
	}

	dentroFaixa := (tpl.ValorMinimo == nil || value >= *tpl.ValorMinimo) &&
		(tpl.ValorMaximo == nil || value <= *tpl.ValorMaximo)
	if dentroFaixa {
		fields["status"] = models.TesteStatusOK
		fields["problema_descricao"] = nil
	} else {
		fields["status"] = models.TesteStatusProblema
	}
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
