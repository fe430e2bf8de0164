package questionnaire

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
)

type Repository interface {
	ListModules() ([]Module, error)
	FindModuleByName(name string) (*Module, error)
	FindModuleByID(id uint) (*Module, error)
	FindModuleWithQuestions(name string) (*Module, error)
	QuestionsForModule(moduleID uint) ([]scoring.QuestionRef, error)
	ListDimensions() ([]Dimension, error)
	Seed(catalog Catalog) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *repository) ListModules() ([]Module, error) {
	var modules []Module
	if err := r.db.Preload("Dimensions", byID).Order("id ASC").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *repository) FindModuleByName(name string) (*Module, error) {
	var m Module
	if err := r.db.First(&m, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindModuleByID(id uint) (*Module, error) {
	var m Module
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindModuleWithQuestions(name string) (*Module, error) {
	var m Module
	err := r.db.
		Preload("Dimensions", byID).
		Preload("Dimensions.Questions", byID).
		First(&m, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) QuestionsForModule(moduleID uint) ([]scoring.QuestionRef, error) {
	var refs []scoring.QuestionRef
	err := r.db.Model(&Question{}).
		Select("questions.id AS id, questions.dimension_id AS dimension_id, questions.weight AS weight").
		Joins("JOIN dimensions ON dimensions.id = questions.dimension_id").
		Where("dimensions.module_id = ?", moduleID).
		Order("questions.id ASC").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *repository) ListDimensions() ([]Dimension, error) {
	var dims []Dimension
	if err := r.db.Order("id ASC").Find(&dims).Error; err != nil {
		return nil, err
	}
	return dims, nil
}

// Seed grava o catálogo inteiro numa transação. Módulos e dimensões são
// casados pelo nome/título; perguntas pelo texto dentro da dimensão.
func (r *repository) Seed(catalog Catalog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, cm := range catalog.Modules {
			var m Module
			if err := tx.Where(Module{Name: cm.Name}).FirstOrInit(&m).Error; err != nil {
				return err
			}
			m.Description = cm.Description
			m.DurationMinutes = cm.DurationMinutes
			m.QuestionCount = 0
			for _, cd := range cm.Dimensions {
				m.QuestionCount += len(cd.Questions)
			}
			if err := tx.Save(&m).Error; err != nil {
				return fmt.Errorf("módulo %q: %w", cm.Name, err)
			}

			for _, cd := range cm.Dimensions {
				if !cd.Type.Valid() {
					return fmt.Errorf("dimensão %q: tipo inválido %q", cd.Title, cd.Type)
				}
				var d Dimension
				if err := tx.Where(Dimension{Title: cd.Title}).FirstOrInit(&d).Error; err != nil {
					return err
				}
				d.Description = cd.Description
				d.Explanation = cd.Explanation
				d.Type = cd.Type
				d.ModuleID = m.ID
				if err := tx.Save(&d).Error; err != nil {
					return fmt.Errorf("dimensão %q: %w", cd.Title, err)
				}

				for _, cq := range cd.Questions {
					weight := cq.Weight
					if weight == 0 {
						weight = 1
					}
					var q Question
					if err := tx.Where(Question{DimensionID: d.ID, Text: cq.Text}).FirstOrInit(&q).Error; err != nil {
						return err
					}
					q.Weight = weight
					if err := tx.Save(&q).Error; err != nil {
						return fmt.Errorf("pergunta %q: %w", cq.Text, err)
					}
				}
			}
		}
		return nil
	})
}
