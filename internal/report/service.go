package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucalvex/hub-projeto-diag-api/internal/answer"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/metrics"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
	"github.com/lucalvex/hub-projeto-diag-api/internal/storage"
	"github.com/lucalvex/hub-projeto-diag-api/internal/user"
)

const ContentType = "application/pdf"

type Document struct {
	Filename string
	Content  []byte
}

type Service interface {
	Generate(ctx context.Context, userID, identifier string) (*Document, error)
	ListArchived(ctx context.Context, userID string) ([]Report, error)
}

type service struct {
	answers  answer.Service
	users    user.UserService
	repo     Repository
	store    storage.BlobStore
	renderer *Renderer
}

// NewService monta o serviço de relatórios; store nil desliga o arquivamento.
func NewService(answers answer.Service, users user.UserService, repo Repository, store storage.BlobStore) Service {
	return &service{
		answers:  answers,
		users:    users,
		repo:     repo,
		store:    store,
		renderer: NewRenderer(),
	}
}

func (s *service) Generate(ctx context.Context, userID, identifier string) (doc *Document, err error) {
	log := config.WithContext(ctx).WithField("identificador", identifier)
	defer func() {
		metrics.ReportsGenerated.WithLabelValues(generateResult(err)).Inc()
	}()

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ma, dims, err := s.answers.ReportData(ctx, userID, identifier)
	if err != nil {
		return nil, err
	}

	in := Input{
		User:        UserInfo{Username: u.Username, Email: u.Email},
		Module:      ModuleInfo{Name: ma.Module.Name, Description: ma.Module.Description},
		ModuleScore: ma.Total,
		Dimensions:  make([]DimensionScore, 0, len(dims)),
	}
	for _, d := range dims {
		in.Dimensions = append(in.Dimensions, DimensionScore{Title: d.Dimension.Title, Score: d.Total})
	}

	start := time.Now()
	content, err := s.renderer.Render(in)
	metrics.ReportRenderSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		log.WithError(err).Error("Erro ao gerar o relatório PDF")
		return nil, err
	}

	s.archive(ctx, u.ID, ma.ID, content)

	log.WithField("resposta_modulo_id", ma.ID.String()).Info("Relatório gerado")
	return &Document{Filename: Filename(identifier, u.Username), Content: content}, nil
}

// archive guarda uma cópia do PDF. Falhas ficam só no log.
func (s *service) archive(ctx context.Context, userID, moduleAnswerID uuid.UUID, content []byte) {
	if s.store == nil {
		return
	}
	log := config.WithContext(ctx)

	key := fmt.Sprintf("relatorios/%s/%s.pdf", userID, moduleAnswerID)
	path, err := s.store.Put(ctx, key, bytes.NewReader(content), int64(len(content)), ContentType)
	if err != nil {
		log.WithError(err).Warn("Falha ao arquivar relatório")
		return
	}
	if err := s.repo.Create(&Report{UserID: userID, ModuleAnswerID: moduleAnswerID, Path: path}); err != nil {
		log.WithError(err).Warn("Falha ao registrar relatório arquivado")
	}
}

func (s *service) ListArchived(ctx context.Context, userID string) ([]Report, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, answer.ErrInvalidUser
	}
	reports, err := s.repo.ListByUser(uid)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar relatórios arquivados")
		return nil, err
	}
	return reports, nil
}

func generateResult(err error) string {
	var renderErr *RenderError
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.As(err, &renderErr):
		return metrics.ResultError
	case errors.Is(err, answer.ErrModuleAnswerNotFound),
		errors.Is(err, answer.ErrDimensionAnswersNotFound),
		errors.Is(err, questionnaire.ErrModuleNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return metrics.ResultNotFound
	}
	return metrics.ResultError
}
