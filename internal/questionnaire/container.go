package questionnaire

import (
	"time"

	"gorm.io/gorm"

	"github.com/lucalvex/hub-projeto-diag-api/internal/cache"
)

type QuestionnaireContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewQuestionnaireContainer(db *gorm.DB, c cache.Cache, ttl time.Duration) *QuestionnaireContainer {
	repo := NewRepository(db)
	service := NewService(repo, c, ttl)
	handler := NewHandler(service)

	return &QuestionnaireContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
