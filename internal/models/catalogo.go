package models

// Справочные сущности: области завода, типы оборудования, оборудование
// и шаблоны проверок. Долгоживущие данные, редактируются через CRUD.

type Area struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"size:255;not null" json:"nome"`
	Descricao *string `gorm:"size:1024" json:"descricao"`
	Ativo     bool    `gorm:"not null;default:true" json:"ativo"`

	Equipamentos []Equipamento `gorm:"foreignKey:AreaID" json:"equipamentos,omitempty"`
}

type TipoEquipamento struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"size:255;not null" json:"nome"`
	Descricao *string `gorm:"size:1024" json:"descricao"`
	Ativo     bool    `gorm:"not null;default:true" json:"ativo"`

	CheckTemplates []CheckTemplate `gorm:"foreignKey:TipoID" json:"checkTemplates,omitempty"`
}

func (TipoEquipamento) TableName() string { return "tipos_equipamento" }

type Equipamento struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"size:255;not null" json:"nome"`
	Tag       string  `gorm:"size:128;not null" json:"tag"` // свободный идентификатор, уникальность не гарантируем
	Descricao *string `gorm:"size:1024" json:"descricao"`
	Ativo     bool    `gorm:"not null;default:true" json:"ativo"`
	AreaID    uint    `gorm:"index;not null" json:"areaId"`
	TipoID    *uint   `gorm:"index" json:"tipoId"`

	Area *Area            `gorm:"foreignKey:AreaID" json:"area,omitempty"`
	Tipo *TipoEquipamento `gorm:"foreignKey:TipoID" json:"tipo,omitempty"`
}

// Типы поля шаблона проверки.
const (
	CampoStatus      = "status"
	CampoTexto       = "texto"
	CampoNumero      = "numero"
	CampoTemperatura = "temperatura"
)

// CheckTemplate описывает форму проверки для типа оборудования,
// не её конкретный экземпляр (см. Teste).
type CheckTemplate struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Nome        string   `gorm:"size:255;not null" json:"nome"`
	Descricao   *string  `gorm:"size:1024" json:"descricao"`
	Ordem       *int     `json:"ordem"`
	Obrigatorio bool     `gorm:"not null;default:true" json:"obrigatorio"`
	TipoCampo   string   `gorm:"size:32;not null;default:status" json:"tipoCampo"` // status|texto|numero|temperatura
	Unidade     *string  `gorm:"size:32" json:"unidade"`
	ValorMinimo *float64 `json:"valorMinimo"`
	ValorMaximo *float64 `json:"valorMaximo"`
	TipoID      uint     `gorm:"index;not null" json:"tipoId"`

	Tipo *TipoEquipamento `gorm:"foreignKey:TipoID" json:"tipo,omitempty"`
}
