package questionnaire

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/lucalvex/hub-projeto-diag-api/internal/cache"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
)

var ErrModuleNotFound = errors.New("módulo não encontrado")

const (
	cacheKeyQuestionnaire = "questionario"
	cacheKeyModulePrefix  = "questionario:modulo:"
)

type Service interface {
	GetQuestionnaire(ctx context.Context) (*QuestionnaireDTO, error)
	GetModule(ctx context.Context, name string) (*ModuleDetailDTO, error)
	FindModuleByName(ctx context.Context, name string) (*Module, error)
	FindModuleByNameOrID(ctx context.Context, identifier string) (*Module, error)
	QuestionsForModule(ctx context.Context, moduleID uint) ([]scoring.QuestionRef, error)
	ListDimensions(ctx context.Context) ([]Dimension, error)
	Seed(ctx context.Context, catalog Catalog) error
}

type service struct {
	repo  Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewService(repo Repository, c cache.Cache, ttl time.Duration) Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &service{repo: repo, cache: c, ttl: ttl}
}

func (s *service) GetQuestionnaire(ctx context.Context) (*QuestionnaireDTO, error) {
	log := config.WithContext(ctx)

	var cached QuestionnaireDTO
	if hit, err := s.cache.Get(ctx, cacheKeyQuestionnaire, &cached); err != nil {
		log.WithError(err).Warn("Falha ao ler questionário do cache")
	} else if hit {
		return &cached, nil
	}

	modules, err := s.repo.ListModules()
	if err != nil {
		log.WithError(err).Error("Erro ao listar módulos")
		return nil, err
	}

	out := toQuestionnaireDTO(modules)
	if err := s.cache.Set(ctx, cacheKeyQuestionnaire, out, s.ttl); err != nil {
		log.WithError(err).Warn("Falha ao gravar questionário no cache")
	}
	return out, nil
}

func (s *service) GetModule(ctx context.Context, name string) (*ModuleDetailDTO, error) {
	log := config.WithContext(ctx).WithField("modulo", name)

	var cached ModuleDetailDTO
	if hit, err := s.cache.Get(ctx, cacheKeyModulePrefix+name, &cached); err != nil {
		log.WithError(err).Warn("Falha ao ler módulo do cache")
	} else if hit {
		return &cached, nil
	}

	m, err := s.repo.FindModuleWithQuestions(name)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar módulo")
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}

	out := toModuleDetailDTO(m)
	if err := s.cache.Set(ctx, cacheKeyModulePrefix+name, out, s.ttl); err != nil {
		log.WithError(err).Warn("Falha ao gravar módulo no cache")
	}
	return out, nil
}

func (s *service) FindModuleByName(ctx context.Context, name string) (*Module, error) {
	m, err := s.repo.FindModuleByName(name)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar módulo por nome")
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}
	return m, nil
}

// FindModuleByNameOrID aceita o id numérico ou o nome do módulo.
func (s *service) FindModuleByNameOrID(ctx context.Context, identifier string) (*Module, error) {
	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil {
		return s.FindModuleByName(ctx, identifier)
	}

	m, err := s.repo.FindModuleByID(uint(id))
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar módulo por id")
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}
	return m, nil
}

func (s *service) QuestionsForModule(ctx context.Context, moduleID uint) ([]scoring.QuestionRef, error) {
	refs, err := s.repo.QuestionsForModule(moduleID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao buscar perguntas do módulo")
		return nil, err
	}
	return refs, nil
}

func (s *service) ListDimensions(ctx context.Context) ([]Dimension, error) {
	dims, err := s.repo.ListDimensions()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar dimensões")
		return nil, err
	}
	return dims, nil
}

func (s *service) Seed(ctx context.Context, catalog Catalog) error {
	log := config.WithContext(ctx)
	log.WithField("modulos", len(catalog.Modules)).Info("Carregando catálogo de módulos")

	if err := s.repo.Seed(catalog); err != nil {
		log.WithError(err).Error("Erro ao carregar catálogo")
		return err
	}

	keys := []string{cacheKeyQuestionnaire}
	for _, m := range catalog.Modules {
		keys = append(keys, cacheKeyModulePrefix+m.Name)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.WithError(err).Warn("Falha ao invalidar cache do questionário")
	}
	return nil
}
