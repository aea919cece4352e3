package models

import (
	"time"

	"gorm.io/datatypes"
)

// Типы и статусы парады (остановки оборудования).
const (
	ParadaPreventiva  = "preventiva"
	ParadaCorretiva   = "corretiva"
	ParadaEmergencial = "emergencial"

	ParadaEmAndamento = "em_andamento"
	ParadaConcluida   = "concluida"
	ParadaCancelada   = "cancelada"
)

// Статусы сгенерированной проверки.
const (
	TesteStatusPendente  = "pendente"
	TesteStatusOK        = "ok"
	TesteStatusProblema  = "problema"
	TesteStatusNaoAplica = "nao_aplica"
)

// Parada — событие остановки. Создаётся со статусом em_andamento,
// dataInicio = now; при переходе в concluida/cancelada dataFim
// проставляется автоматически, если не передан явно.
type Parada struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome                 string     `gorm:"size:255;not null" json:"nome"`
	Descricao            *string    `gorm:"size:2048" json:"descricao"`
	Tipo                 string     `gorm:"size:32;not null" json:"tipo"` // preventiva|corretiva|emergencial
	EquipeResponsavel    *string    `gorm:"size:1024" json:"equipeResponsavel"`
	Macro                *string    `gorm:"size:128" json:"macro"`
	DuracaoPrevistaHoras *int       `json:"duracaoPrevistaHoras"`
	Status               string     `gorm:"size:32;not null;default:em_andamento" json:"status"`
	DataInicio           time.Time  `gorm:"not null" json:"dataInicio"`
	DataFim              *time.Time `json:"dataFim"`

	// Снапшот конфигурации по областям — write-through зеркало
	// нормализованных таблиц ParadaArea* (резервный путь чтения).
	AreasConfig datatypes.JSON `json:"areasConfig"`

	Testes      []Teste      `gorm:"foreignKey:ParadaID" json:"testes,omitempty"`
	ParadaAreas []ParadaArea `gorm:"foreignKey:ParadaID" json:"paradaAreas,omitempty"`
}

// Teste — экземпляр проверки одного оборудования в рамках парады.
// Тройка (parada, equipamento, checkTemplate) уникальна; индекс — страховка,
// генератор поддерживает инвариант diff-ом.
type Teste struct {
	ID              uint  `gorm:"primaryKey" json:"id"`
	ParadaID        uint  `gorm:"index;not null;uniqueIndex:ux_teste_identidade" json:"paradaId"`
	EquipamentoID   uint  `gorm:"index;not null;uniqueIndex:ux_teste_identidade" json:"equipamentoId"`
	CheckTemplateID *uint `gorm:"index;uniqueIndex:ux_teste_identidade" json:"checkTemplateId"`

	Status            string     `gorm:"size:32;not null;default:pendente" json:"status"`
	Observacoes       *string    `gorm:"size:4096" json:"observacoes"`
	ProblemaDescricao *string    `gorm:"size:4096" json:"problemaDescricao"`
	EvidenciaImagem   *string    `json:"evidenciaImagem"` // data-URL, непрозрачный текст
	ResolucaoTexto    *string    `gorm:"size:4096" json:"resolucaoTexto"`
	ResolucaoImagem   *string    `json:"resolucaoImagem"`
	DataTeste         *time.Time `json:"dataTeste"`
	TestadoPor        *string    `gorm:"size:255" json:"testadoPor"`

	Equipamento   *Equipamento   `gorm:"foreignKey:EquipamentoID" json:"equipamento,omitempty"`
	CheckTemplate *CheckTemplate `gorm:"foreignKey:CheckTemplateID" json:"checkTemplate,omitempty"`
}

// ParadaArea — нормализованная конфигурация парады по области.
// Не более одной строки на (paradaId, areaId).
type ParadaArea struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ParadaID  uint      `gorm:"not null;uniqueIndex:ux_parada_area" json:"paradaId"`
	AreaID    uint      `gorm:"not null;uniqueIndex:ux_parada_area" json:"areaId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ResponsavelNome  *string `gorm:"size:255" json:"responsavelNome"`
	EquipeHabilitada bool    `gorm:"not null;default:false" json:"equipeHabilitada"`

	Membros      []ParadaAreaMember `gorm:"foreignKey:ParadaAreaID" json:"membros,omitempty"`
	Equipamentos []ParadaAreaEquip  `gorm:"foreignKey:ParadaAreaID" json:"equipamentos,omitempty"`
}

// Дочерние строки ParadaArea полностью перезаписываются при каждом сохранении.
type ParadaAreaMember struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	ParadaAreaID uint    `gorm:"index;not null" json:"paradaAreaId"`
	Nome         string  `gorm:"size:255;not null" json:"nome"`
	Setor        *string `gorm:"size:255" json:"setor"`
}

func (ParadaAreaMember) TableName() string { return "parada_area_members" }

type ParadaAreaEquip struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ParadaAreaID  uint `gorm:"index;not null" json:"paradaAreaId"`
	EquipamentoID uint `gorm:"not null" json:"equipamentoId"`
}

func (ParadaAreaEquip) TableName() string { return "parada_area_equips" }
