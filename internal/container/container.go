package container

import (
	"context"

	"gorm.io/gorm"

	"github.com/lucalvex/hub-projeto-diag-api/internal/answer"
	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
	"github.com/lucalvex/hub-projeto-diag-api/internal/cache"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/cooldown"
	"github.com/lucalvex/hub-projeto-diag-api/internal/metrics"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
	"github.com/lucalvex/hub-projeto-diag-api/internal/report"
	"github.com/lucalvex/hub-projeto-diag-api/internal/storage"
	"github.com/lucalvex/hub-projeto-diag-api/internal/user"
)

type Container struct {
	Settings config.Settings

	UserContainer          *user.UserContainer
	QuestionnaireContainer *questionnaire.QuestionnaireContainer
	AnswerContainer        *answer.AnswerContainer
	ReportContainer        *report.ReportContainer
}

func New() *Container {
	ctx := context.Background()

	settings, err := config.LoadSettings()
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to load settings")
	}
	config.Init()
	auth.Init()
	metrics.Init()

	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		config.Logger.WithError(err).Fatal("failed to connect to DB")
	}

	c, err := cache.Connect(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		c = cache.Noop{}
	}

	store, err := storage.New(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).Warn("Armazenamento de relatórios indisponível, arquivamento desligado")
		store = nil
	}

	return build(config.DB, settings, c, store)
}

func build(db *gorm.DB, settings config.Settings, c cache.Cache, store storage.BlobStore) *Container {
	userContainer := user.NewUserContainer(db)
	questionnaireContainer := questionnaire.NewQuestionnaireContainer(db, c, settings.CacheTTL())
	answerContainer := answer.NewAnswerContainer(db, questionnaireContainer.Service, answer.Options{
		Policy:          cooldown.New(settings.CooldownWindow()),
		EnforceCooldown: settings.EnforceCooldown,
	})
	reportContainer := report.NewReportContainer(db, answerContainer.Service, userContainer.Service, store)

	return &Container{
		Settings:               settings,
		UserContainer:          userContainer,
		QuestionnaireContainer: questionnaireContainer,
		AnswerContainer:        answerContainer,
		ReportContainer:        reportContainer,
	}
}

// Migrate cria ou atualiza as tabelas de todas as entidades.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&questionnaire.Module{},
		&questionnaire.Dimension{},
		&questionnaire.Question{},
		&answer.ModuleAnswer{},
		&answer.DimensionAnswer{},
		&answer.PartialAnswer{},
		&report.Report{},
	)
}
