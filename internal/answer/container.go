package answer

import (
	"gorm.io/gorm"

	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

type AnswerContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewAnswerContainer(db *gorm.DB, catalog questionnaire.Service, opts Options) *AnswerContainer {
	repo := NewRepository(db)
	service := NewService(repo, catalog, opts)
	handler := NewHandler(service)

	return &AnswerContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
