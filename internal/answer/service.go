package answer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/cooldown"
	"github.com/lucalvex/hub-projeto-diag-api/internal/metrics"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
	util "github.com/lucalvex/hub-projeto-diag-api/internal/utils"
)

type Service interface {
	Submit(ctx context.Context, userID, moduleName string, items []scoring.AnswerItem) (*SubmissionResponse, error)
	CheckDeadline(ctx context.Context, userID, identifier string) (*DeadlineResponse, error)
	SearchByDate(ctx context.Context, userID, date string) (*SearchResponse, error)
	AllDates(ctx context.Context, userID string) ([]DateTotalDTO, error)
	LastDimensionResults(ctx context.Context, userID string) ([]LastDimensionResultDTO, error)
	PeerAverage(ctx context.Context, dimensionID uint, excludingUserID string) (float64, error)
	GetModuleAnswer(ctx context.Context, userID, moduleAnswerID string) (*ModuleAnswerDTO, error)
	ReportData(ctx context.Context, userID, identifier string) (*ModuleAnswer, []DimensionAnswer, error)
	SavePartial(ctx context.Context, userID, moduleName string, answers map[string]any) (*PartialAnswerDTO, error)
	GetPartial(ctx context.Context, userID, moduleName string) (*PartialAnswerDTO, error)
}

type Options struct {
	Policy          cooldown.Policy
	EnforceCooldown bool
	Now             func() time.Time
}

type service struct {
	repo    Repository
	catalog questionnaire.Service
	policy  cooldown.Policy
	enforce bool
	now     func() time.Time
}

func NewService(repo Repository, catalog questionnaire.Service, opts Options) Service {
	if opts.Policy.Window <= 0 {
		opts.Policy = cooldown.Default
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		policy:  opts.Policy,
		enforce: opts.EnforceCooldown,
		now:     opts.Now,
	}
}

func parseUser(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, ErrInvalidUser
	}
	return id, nil
}

func submissionResult(err error) string {
	var active *cooldown.ActiveError
	switch {
	case errors.Is(err, scoring.ErrConflict):
		return metrics.ResultConflict
	case errors.Is(err, scoring.ErrValidation):
		return metrics.ResultInvalid
	case errors.As(err, &active):
		return metrics.ResultCooldown
	case errors.Is(err, questionnaire.ErrModuleNotFound):
		return metrics.ResultNotFound
	}
	return metrics.ResultError
}

func (s *service) Submit(ctx context.Context, userID, moduleName string, items []scoring.AnswerItem) (resp *SubmissionResponse, err error) {
	log := config.WithContext(ctx).WithField("modulo", moduleName)
	defer func() {
		result := metrics.ResultOK
		if err != nil {
			result = submissionResult(err)
		}
		metrics.SubmissionsTotal.WithLabelValues(result).Inc()
	}()

	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}

	module, err := s.catalog.FindModuleByName(ctx, moduleName)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if s.enforce {
		last, lerr := s.repo.LatestModuleAnswer(uid, module.ID)
		if lerr != nil {
			log.WithError(lerr).Error("Erro ao buscar última resposta do módulo")
			return nil, lerr
		}
		if last != nil {
			if ok, unlock := s.policy.CanRetake(&last.AnsweredAt, now); !ok {
				log.WithField("unlock_at", unlock).Warn("Submissão bloqueada pelo prazo de nova resposta")
				return nil, &cooldown.ActiveError{UnlockAt: unlock}
			}
		}
	}

	questions, err := s.catalog.QuestionsForModule(ctx, module.ID)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Score(scoring.Submission{
		Module:    module.Name,
		Questions: questions,
		Items:     items,
	})
	if err != nil {
		log.WithError(err).Warn("Falha na validação das respostas")
		return nil, err
	}

	ma := &ModuleAnswer{
		UserID:     uid,
		ModuleID:   module.ID,
		Total:      result.ModuleTotal,
		AnsweredAt: now,
	}
	dims := make([]DimensionAnswer, 0, len(result.Dimensions))
	for _, dimID := range result.Dimensions {
		dims = append(dims, DimensionAnswer{
			UserID:      uid,
			DimensionID: dimID,
			Total:       result.DimensionTotals[dimID],
			AnsweredAt:  now,
		})
	}

	if cerr := s.repo.CreateSubmission(ma, dims); cerr != nil {
		log.WithError(cerr).Error("Erro ao salvar respostas do módulo")
		return nil, &PersistenceError{Err: cerr}
	}

	resp = &SubmissionResponse{
		Message:        fmt.Sprintf("Respostas para o módulo \"%s\" processadas e salvas com sucesso.", module.Name),
		ModuleAnswerID: ma.ID,
		Module: ModuleResultDTO{
			ModuleID:   module.ID,
			ModuleName: module.Name,
			Total:      ma.Total,
			Band:       scoring.ClassifyModule(ma.Total).Label(),
			Status:     "Criada",
		},
		CreatedDimensions: make([]DimensionResultDTO, 0, len(dims)),
	}
	for _, d := range dims {
		resp.CreatedDimensions = append(resp.CreatedDimensions, DimensionResultDTO{
			DimensionID: d.DimensionID,
			Total:       d.Total,
			Band:        scoring.ClassifyDimension(d.Total).Label(),
			Status:      "Criada",
		})
	}

	log.WithFields(logrus.Fields{
		"resposta_modulo_id": ma.ID.String(),
		"valor_final":        ma.Total,
	}).Info("Respostas do módulo salvas com sucesso")
	return resp, nil
}

func (s *service) CheckDeadline(ctx context.Context, userID, identifier string) (*DeadlineResponse, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}

	module, err := s.catalog.FindModuleByNameOrID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	last, err := s.repo.LatestModuleAnswer(uid, module.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar última resposta do módulo")
		return nil, err
	}

	var answeredAt time.Time
	if last != nil {
		answeredAt = last.AnsweredAt
	}
	allowed, unlock := s.policy.CanRetake(util.ToTimePtr(answeredAt), s.now())

	resp := &DeadlineResponse{OK: allowed, Message: cooldown.Message(allowed, unlock)}
	if !allowed {
		resp.UnlockAt = &unlock
	}
	return resp, nil
}

func (s *service) SearchByDate(ctx context.Context, userID, date string) (*SearchResponse, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return nil, ErrMissingDate
	}
	start, end, err := util.DayRange(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	answers, err := s.repo.ListModuleAnswersBetween(uid, start, end)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar respostas por data")
		return nil, err
	}

	out := &SearchResponse{Results: make([]ReportEntryDTO, 0, len(answers))}
	for _, a := range answers {
		out.Results = append(out.Results, ReportEntryDTO{
			ID:         a.ID,
			ModuleID:   a.ModuleID,
			ModuleName: a.Module.Name,
			Total:      a.Total,
			AnsweredAt: a.AnsweredAt,
		})
	}
	return out, nil
}

func (s *service) AllDates(ctx context.Context, userID string) ([]DateTotalDTO, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.repo.ListModuleAnswers(uid)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar datas de respostas")
		return nil, err
	}

	out := make([]DateTotalDTO, 0, len(answers))
	for _, a := range answers {
		out = append(out, DateTotalDTO{Date: util.DateISO(a.AnsweredAt), Total: a.Total})
	}
	return out, nil
}

func (s *service) PeerAverage(ctx context.Context, dimensionID uint, excludingUserID string) (float64, error) {
	uid, err := parseUser(excludingUserID)
	if err != nil {
		return 0, err
	}
	totals, err := s.repo.LatestDimensionAnswersByPeers(dimensionID, uid)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar respostas dos demais usuários")
		return 0, err
	}
	return scoring.PeerAverage(totals), nil
}

func (s *service) LastDimensionResults(ctx context.Context, userID string) ([]LastDimensionResultDTO, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}

	dims, err := s.catalog.ListDimensions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LastDimensionResultDTO, 0, len(dims))
	for _, d := range dims {
		entry := LastDimensionResultDTO{Dimension: d.Title}

		last, err := s.repo.LatestDimensionAnswer(uid, d.ID)
		if err != nil {
			config.WithContext(ctx).WithError(err).Error("Erro ao buscar última resposta da dimensão")
			return nil, err
		}
		if last != nil {
			total := last.Total
			date := util.DateISO(last.AnsweredAt)
			entry.Total = &total
			entry.Date = &date
		}

		if entry.Average, err = s.PeerAverage(ctx, d.ID, userID); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *service) GetModuleAnswer(ctx context.Context, userID, moduleAnswerID string) (*ModuleAnswerDTO, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(moduleAnswerID)
	if err != nil {
		return nil, ErrModuleAnswerNotFound
	}

	ma, err := s.repo.FindModuleAnswer(uid, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar resposta do módulo")
		return nil, err
	}
	if ma == nil {
		return nil, ErrModuleAnswerNotFound
	}

	dims, err := s.repo.DimensionAnswersFor(ma.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar respostas das dimensões")
		return nil, err
	}

	out := &ModuleAnswerDTO{
		ID:         ma.ID,
		ModuleID:   ma.ModuleID,
		ModuleName: ma.Module.Name,
		Total:      ma.Total,
		Band:       scoring.ClassifyModule(ma.Total).Label(),
		AnsweredAt: ma.AnsweredAt,
		Dimensions: make([]DimensionAnswerDTO, 0, len(dims)),
	}
	for _, d := range dims {
		out.Dimensions = append(out.Dimensions, DimensionAnswerDTO{
			ID:             d.ID,
			DimensionID:    d.DimensionID,
			DimensionTitle: d.Dimension.Title,
			Total:          d.Total,
			Band:           scoring.ClassifyDimension(d.Total).Label(),
		})
	}
	return out, nil
}

// ReportData resolve o identificador do relatório: um UUID aponta para uma
// submissão específica; qualquer outro valor é o nome do módulo e usa a
// submissão mais recente do usuário.
func (s *service) ReportData(ctx context.Context, userID, identifier string) (*ModuleAnswer, []DimensionAnswer, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, nil, err
	}

	var ma *ModuleAnswer
	if id, perr := uuid.Parse(identifier); perr == nil {
		ma, err = s.repo.FindModuleAnswer(uid, id)
	} else {
		module, ferr := s.catalog.FindModuleByName(ctx, identifier)
		if ferr != nil {
			return nil, nil, ferr
		}
		ma, err = s.repo.LatestModuleAnswer(uid, module.ID)
	}
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar resposta do módulo para relatório")
		return nil, nil, err
	}
	if ma == nil {
		return nil, nil, ErrModuleAnswerNotFound
	}

	dims, err := s.repo.DimensionAnswersFor(ma.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar respostas das dimensões para relatório")
		return nil, nil, err
	}
	if len(dims) == 0 {
		return nil, nil, ErrDimensionAnswersNotFound
	}
	return ma, dims, nil
}

func (s *service) SavePartial(ctx context.Context, userID, moduleName string, answers map[string]any) (*PartialAnswerDTO, error) {
	log := config.WithContext(ctx).WithField("modulo", moduleName)

	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}
	module, err := s.catalog.FindModuleByName(ctx, moduleName)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, ErrAnswersNotObject
	}

	p := &PartialAnswer{
		UserID:    uid,
		ModuleID:  module.ID,
		Answers:   raw,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.UpsertPartial(p); err != nil {
		log.WithError(err).Error("Erro ao salvar respostas parciais")
		return nil, &PersistenceError{Err: err}
	}

	log.Info("Respostas parciais salvas")
	return &PartialAnswerDTO{
		ModuleID:   module.ID,
		ModuleName: module.Name,
		Answers:    json.RawMessage(raw),
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

func (s *service) GetPartial(ctx context.Context, userID, moduleName string) (*PartialAnswerDTO, error) {
	uid, err := parseUser(userID)
	if err != nil {
		return nil, err
	}
	module, err := s.catalog.FindModuleByName(ctx, moduleName)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindPartial(uid, module.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar respostas parciais")
		return nil, err
	}
	if p == nil {
		return nil, ErrPartialAnswerNotFound
	}

	return &PartialAnswerDTO{
		ModuleID:   module.ID,
		ModuleName: module.Name,
		Answers:    json.RawMessage(p.Answers),
		UpdatedAt:  p.UpdatedAt,
	}, nil
}
