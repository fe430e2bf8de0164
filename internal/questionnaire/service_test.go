package questionnaire_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

type memoryCache struct {
	data map[string][]byte
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestServiceCaching(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	c := newMemoryCache()
	svc := questionnaire.NewService(questionnaire.NewRepository(db), c, time.Minute)
	require.NoError(t, svc.Seed(ctx, sampleCatalog()))

	first, err := svc.GetQuestionnaire(ctx)
	require.NoError(t, err)
	require.Len(t, first.Modules, 2)
	assert.Equal(t, "Obrigatório", first.Modules[0].Dimensions[0].Type)
	assert.Equal(t, 0, c.hits)

	second, err := svc.GetQuestionnaire(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.hits)

	require.NoError(t, svc.Seed(ctx, sampleCatalog()))
	_, ok := c.data["questionario"]
	assert.False(t, ok, "seed deveria invalidar o cache")
}

func TestFindModuleByNameOrID(t *testing.T) {
	ctx := context.Background()
	svc := questionnaire.NewService(questionnaire.NewRepository(newTestDB(t)), nil, 0)
	require.NoError(t, svc.Seed(ctx, sampleCatalog()))

	byName, err := svc.FindModuleByNameOrID(ctx, "Marketing")
	require.NoError(t, err)

	byID, err := svc.FindModuleByNameOrID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byID.ID)

	_, err = svc.FindModuleByNameOrID(ctx, "99")
	assert.ErrorIs(t, err, questionnaire.ErrModuleNotFound)

	_, err = svc.FindModuleByNameOrID(ctx, "Nada")
	assert.ErrorIs(t, err, questionnaire.ErrModuleNotFound)
}

func TestHandlerGetModule(t *testing.T) {
	ctx := context.Background()
	svc := questionnaire.NewService(questionnaire.NewRepository(newTestDB(t)), nil, 0)
	require.NoError(t, svc.Seed(ctx, sampleCatalog()))

	r := chi.NewRouter()
	questionnaire.Routes(r, questionnaire.NewHandler(svc))

	t.Run("Found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questionario/modulos/Marketing", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Marketing", body["nomeModulo"])
		dims := body["dimensoes"].([]any)
		require.Len(t, dims, 1)
		dim := dims[0].(map[string]any)
		assert.Equal(t, "Serviço", dim["tipo"])
		assert.Len(t, dim["perguntas"], 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questionario/modulos/Nada", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("List", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questionario", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"perguntasQntd":3`)
	})
}
