package report

import (
	"gorm.io/gorm"

	"github.com/lucalvex/hub-projeto-diag-api/internal/answer"
	"github.com/lucalvex/hub-projeto-diag-api/internal/storage"
	"github.com/lucalvex/hub-projeto-diag-api/internal/user"
)

type ReportContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewReportContainer(db *gorm.DB, answers answer.Service, users user.UserService, store storage.BlobStore) *ReportContainer {
	repo := NewRepository(db)
	service := NewService(answers, users, repo, store)
	handler := NewHandler(service)

	return &ReportContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
