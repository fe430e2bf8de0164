package questionnaire_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&questionnaire.Module{}, &questionnaire.Dimension{}, &questionnaire.Question{}))
	return db
}

func sampleCatalog() questionnaire.Catalog {
	return questionnaire.Catalog{Modules: []questionnaire.CatalogModule{
		{
			Name:            "Gestão Financeira",
			Description:     "Controle de caixa e custos",
			DurationMinutes: 15,
			Dimensions: []questionnaire.CatalogDimension{
				{
					Title: "Fluxo de Caixa", Description: "Entradas e saídas", Type: questionnaire.DimensionTypeMandatory,
					Questions: []questionnaire.CatalogQuestion{{Text: "Registra entradas?", Weight: 1}, {Text: "Projeta saídas?", Weight: 2}},
				},
				{
					Title: "Custos", Description: "Custos fixos e variáveis", Type: questionnaire.DimensionTypeCommerce,
					Questions: []questionnaire.CatalogQuestion{{Text: "Conhece o custo fixo?"}},
				},
			},
		},
		{
			Name:        "Marketing",
			Description: "Presença e divulgação",
			Dimensions: []questionnaire.CatalogDimension{
				{
					Title: "Redes Sociais", Description: "Canais digitais", Type: questionnaire.DimensionTypeService,
					Questions: []questionnaire.CatalogQuestion{{Text: "Publica semanalmente?"}},
				},
			},
		},
	}}
}

func TestRepositorySeedAndQueries(t *testing.T) {
	db := newTestDB(t)
	repo := questionnaire.NewRepository(db)
	require.NoError(t, repo.Seed(sampleCatalog()))

	t.Run("ListModules", func(t *testing.T) {
		modules, err := repo.ListModules()
		require.NoError(t, err)
		require.Len(t, modules, 2)
		assert.Equal(t, "Gestão Financeira", modules[0].Name)
		assert.Equal(t, 3, modules[0].QuestionCount)
		require.Len(t, modules[0].Dimensions, 2)
		assert.Equal(t, "Fluxo de Caixa", modules[0].Dimensions[0].Title)
	})

	t.Run("FindModuleWithQuestions", func(t *testing.T) {
		m, err := repo.FindModuleWithQuestions("Gestão Financeira")
		require.NoError(t, err)
		require.NotNil(t, m)
		require.Len(t, m.Dimensions[0].Questions, 2)
		assert.Equal(t, "Registra entradas?", m.Dimensions[0].Questions[0].Text)

		missing, err := repo.FindModuleWithQuestions("Inexistente")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("QuestionsForModuleScopedAndWeighted", func(t *testing.T) {
		m, err := repo.FindModuleByName("Gestão Financeira")
		require.NoError(t, err)

		refs, err := repo.QuestionsForModule(m.ID)
		require.NoError(t, err)
		require.Len(t, refs, 3)

		weights := map[int]int{}
		for _, r := range refs {
			weights[r.Weight]++
			assert.NotZero(t, r.DimensionID)
		}
		assert.Equal(t, 2, weights[1])
		assert.Equal(t, 1, weights[2])
	})

	t.Run("SeedIsIdempotent", func(t *testing.T) {
		require.NoError(t, repo.Seed(sampleCatalog()))

		var modules, dims, questions int64
		db.Model(&questionnaire.Module{}).Count(&modules)
		db.Model(&questionnaire.Dimension{}).Count(&dims)
		db.Model(&questionnaire.Question{}).Count(&questions)
		assert.EqualValues(t, 2, modules)
		assert.EqualValues(t, 3, dims)
		assert.EqualValues(t, 4, questions)
	})

	t.Run("SeedRejectsUnknownType", func(t *testing.T) {
		bad := questionnaire.Catalog{Modules: []questionnaire.CatalogModule{{
			Name: "Outro", Description: "x",
			Dimensions: []questionnaire.CatalogDimension{{Title: "Y", Description: "y", Type: "AGRO"}},
		}}}
		assert.Error(t, repo.Seed(bad))

		m, err := repo.FindModuleByName("Outro")
		require.NoError(t, err)
		assert.Nil(t, m, "transação deveria ter sido desfeita")
	})
}
