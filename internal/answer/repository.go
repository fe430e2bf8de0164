package answer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	CreateSubmission(ma *ModuleAnswer, dims []DimensionAnswer) error
	LatestModuleAnswer(userID uuid.UUID, moduleID uint) (*ModuleAnswer, error)
	FindModuleAnswer(userID, id uuid.UUID) (*ModuleAnswer, error)
	ListModuleAnswersBetween(userID uuid.UUID, start, end time.Time) ([]ModuleAnswer, error)
	ListModuleAnswers(userID uuid.UUID) ([]ModuleAnswer, error)
	DimensionAnswersFor(moduleAnswerID uuid.UUID) ([]DimensionAnswer, error)
	LatestDimensionAnswer(userID uuid.UUID, dimensionID uint) (*DimensionAnswer, error)
	LatestDimensionAnswersByPeers(dimensionID uint, excludeUserID uuid.UUID) ([]int, error)
	UpsertPartial(p *PartialAnswer) error
	FindPartial(userID uuid.UUID, moduleID uint) (*PartialAnswer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateSubmission grava a resposta do módulo e todas as respostas de
// dimensão na mesma transação.
func (r *repository) CreateSubmission(ma *ModuleAnswer, dims []DimensionAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(ma).Error; err != nil {
			return err
		}
		if len(dims) == 0 {
			return nil
		}
		for i := range dims {
			dims[i].ModuleAnswerID = ma.ID
		}
		return tx.Omit(clause.Associations).Create(&dims).Error
	})
}

func firstOrNil[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *repository) LatestModuleAnswer(userID uuid.UUID, moduleID uint) (*ModuleAnswer, error) {
	return firstOrNil[ModuleAnswer](r.db.
		Preload("Module").
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Order("answered_at DESC"))
}

func (r *repository) FindModuleAnswer(userID, id uuid.UUID) (*ModuleAnswer, error) {
	return firstOrNil[ModuleAnswer](r.db.
		Preload("Module").
		Where("id = ? AND user_id = ?", id, userID))
}

func (r *repository) ListModuleAnswersBetween(userID uuid.UUID, start, end time.Time) ([]ModuleAnswer, error) {
	var out []ModuleAnswer
	err := r.db.
		Preload("Module").
		Where("user_id = ? AND answered_at BETWEEN ? AND ?", userID, start.UTC(), end.UTC()).
		Order("answered_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListModuleAnswers(userID uuid.UUID) ([]ModuleAnswer, error) {
	var out []ModuleAnswer
	if err := r.db.Where("user_id = ?", userID).Order("answered_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DimensionAnswersFor devolve as respostas de dimensão de uma submissão
// ordenadas pelo título da dimensão.
func (r *repository) DimensionAnswersFor(moduleAnswerID uuid.UUID) ([]DimensionAnswer, error) {
	var out []DimensionAnswer
	err := r.db.
		Joins("JOIN dimensions ON dimensions.id = dimension_answers.dimension_id").
		Preload("Dimension").
		Where("dimension_answers.module_answer_id = ?", moduleAnswerID).
		Order("dimensions.title ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) LatestDimensionAnswer(userID uuid.UUID, dimensionID uint) (*DimensionAnswer, error) {
	return firstOrNil[DimensionAnswer](r.db.
		Where("user_id = ? AND dimension_id = ?", userID, dimensionID).
		Order("answered_at DESC"))
}

type peerRow struct {
	UserID uuid.UUID
	Total  int
}

// LatestDimensionAnswersByPeers devolve um total por usuário (exceto o
// informado): o da resposta mais recente de cada um na dimensão.
func (r *repository) LatestDimensionAnswersByPeers(dimensionID uint, excludeUserID uuid.UUID) ([]int, error) {
	latest := r.db.Model(&DimensionAnswer{}).
		Select("user_id, MAX(answered_at) AS max_at").
		Where("dimension_id = ? AND user_id <> ?", dimensionID, excludeUserID).
		Group("user_id")

	var rows []peerRow
	err := r.db.Table("dimension_answers AS da").
		Select("da.user_id AS user_id, da.total AS total").
		Joins("JOIN (?) AS latest ON latest.user_id = da.user_id AND latest.max_at = da.answered_at", latest).
		Where("da.dimension_id = ?", dimensionID).
		Order("da.user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Empates no instante máximo contam uma vez por usuário.
	seen := make(map[uuid.UUID]struct{}, len(rows))
	totals := make([]int, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.UserID]; dup {
			continue
		}
		seen[row.UserID] = struct{}{}
		totals = append(totals, row.Total)
	}
	return totals, nil
}

func (r *repository) UpsertPartial(p *PartialAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "updated_at"}),
	}).Create(p).Error
}

func (r *repository) FindPartial(userID uuid.UUID, moduleID uint) (*PartialAnswer, error) {
	return firstOrNil[PartialAnswer](r.db.Where("user_id = ? AND module_id = ?", userID, moduleID))
}
