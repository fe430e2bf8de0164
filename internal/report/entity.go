package report

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report registra um PDF arquivado no BlobStore.
type Report struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ModuleAnswerID uuid.UUID `gorm:"type:uuid;not null;index" json:"respostaModuloId"`
	Path           string    `gorm:"type:varchar(255);not null" json:"path"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"data"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
