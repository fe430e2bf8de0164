package container

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lucalvex/hub-projeto-diag-api/internal/cache"
	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

func TestBuild(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	c := build(db, config.Settings{CooldownHours: 48, CacheTTLMinutes: 1}, cache.Noop{}, nil)
	require.NotNil(t, c.UserContainer.Handler)
	require.NotNil(t, c.QuestionnaireContainer.Handler)
	require.NotNil(t, c.AnswerContainer.Handler)
	require.NotNil(t, c.ReportContainer.Handler)

	ctx := context.Background()
	err = c.QuestionnaireContainer.Service.Seed(ctx, questionnaire.Catalog{Modules: []questionnaire.CatalogModule{
		{
			Name: "Vendas",
			Dimensions: []questionnaire.CatalogDimension{
				{Title: "Prospecção", Type: "OBRIGATORIO", Questions: []questionnaire.CatalogQuestion{{Text: "Há funil definido?"}}},
			},
		},
	}})
	require.NoError(t, err)

	q, err := c.QuestionnaireContainer.Service.GetQuestionnaire(ctx)
	require.NoError(t, err)
	assert.Len(t, q.Modules, 1)
}
