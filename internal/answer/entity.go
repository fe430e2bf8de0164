package answer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

// ModuleAnswer é uma submissão completa de um módulo. Não é alterada depois de criada.
type ModuleAnswer struct {
	ID         uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID            `gorm:"type:uuid;not null;index:idx_module_answers_user_module" json:"user_id"`
	ModuleID   uint                 `gorm:"not null;index:idx_module_answers_user_module" json:"modulo_id"`
	Module     questionnaire.Module `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Total      int                  `gorm:"not null;default:0" json:"valorFinal"`
	AnsweredAt time.Time            `gorm:"not null;index" json:"dataResposta"`

	DimensionAnswers []DimensionAnswer `gorm:"foreignKey:ModuleAnswerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *ModuleAnswer) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type DimensionAnswer struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID               `gorm:"type:uuid;not null;index:idx_dimension_answers_dim_user" json:"user_id"`
	DimensionID    uint                    `gorm:"not null;index:idx_dimension_answers_dim_user" json:"dimensao_id"`
	Dimension      questionnaire.Dimension `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Total          int                     `gorm:"not null;default:0" json:"valorFinal"`
	AnsweredAt     time.Time               `gorm:"not null;index" json:"dataResposta"`
	ModuleAnswerID uuid.UUID               `gorm:"type:uuid;not null;index" json:"resposta_modulo_id"`
}

func (d *DimensionAnswer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// PartialAnswer guarda respostas em andamento; existe no máximo uma por usuário e módulo.
type PartialAnswer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_partial_answers_user_module" json:"user_id"`
	ModuleID  uint           `gorm:"not null;uniqueIndex:idx_partial_answers_user_module" json:"modulo_id"`
	Answers   datatypes.JSON `gorm:"type:jsonb;not null" json:"respostas"`
	UpdatedAt time.Time      `gorm:"not null" json:"dataResposta"`
}

func (p *PartialAnswer) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
