package report

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(r *Report) error
	ListByUser(userID uuid.UUID) ([]Report, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(rep *Report) error {
	return r.db.Create(rep).Error
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Report, error) {
	var out []Report
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
