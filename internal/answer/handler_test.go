package answer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucalvex/hub-projeto-diag-api/internal/answer"
	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
)

func newRouter(t *testing.T, enforce bool) (http.Handler, string) {
	t.Helper()
	os.Setenv("JWT_SECRET", "segredo-de-teste-para-respostas")
	auth.Init()

	svc, _, _ := newService(t, enforce)
	r := chi.NewRouter()
	answer.Routes(r, answer.NewHandler(svc))

	token, err := auth.GenerateJWT(uuid.NewString(), "user", time.Hour)
	require.NoError(t, err)
	return r, token
}

func do(r http.Handler, token, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmitHandler(t *testing.T) {
	r, token := newRouter(t, true)

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := do(r, "", http.MethodPost, "/modulos/Comercial/respostas", `{"respostas":[]}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MissingKey", func(t *testing.T) {
		rec := do(r, token, http.MethodPost, "/modulos/Comercial/respostas", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "respostas")
	})

	t.Run("NotAList", func(t *testing.T) {
		rec := do(r, token, http.MethodPost, "/modulos/Comercial/respostas", `{"respostas":{"1":2}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ValidationDetails", func(t *testing.T) {
		body := `{"respostas":[{"perguntaId":1,"valor":3},"texto",{"valor":2},{"perguntaId":2},{"perguntaId":1,"valor":1}]}`
		rec := do(r, token, http.MethodPost, "/modulos/Comercial/respostas", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error    string   `json:"error"`
			Detalhes []string `json:"detalhes"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Falha na validação das respostas. Nenhuma resposta foi salva.", resp.Error)
		assert.Equal(t, []string{
			"Item 2: Não é um objeto JSON válido.",
			"Item 3: Chave 'perguntaId' ausente.",
			"Item 4 (Pergunta ID 2): Chave 'valor' ausente.",
			"Item 5: Resposta duplicada para a pergunta com ID 1 nesta requisição.",
		}, resp.Detalhes)
	})

	t.Run("UnknownModule", func(t *testing.T) {
		rec := do(r, token, http.MethodPost, "/modulos/Nada/respostas", `{"respostas":[{"perguntaId":1,"valor":3}]}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("SuccessThenCooldown", func(t *testing.T) {
		body := `{"respostas":[{"perguntaId":1,"valor":3},{"perguntaId":3,"valor":"2"}]}`
		rec := do(r, token, http.MethodPost, "/modulos/Comercial/respostas", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp answer.SubmissionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 9, resp.Module.Total)
		assert.Equal(t, "Comercial", resp.Module.ModuleName)
		assert.Len(t, resp.CreatedDimensions, 2)

		rec = do(r, token, http.MethodPost, "/modulos/Comercial/respostas", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Você só poderá responder novamente após")
	})
}

func TestQueryHandlers(t *testing.T) {
	r, token := newRouter(t, false)

	rec := do(r, token, http.MethodPost, "/modulos/Comercial/respostas", `{"respostas":[{"perguntaId":1,"valor":3}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var submitted answer.SubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))

	t.Run("CheckDeadline", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/questionario/Comercial/check_deadline", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok_response":false`)
	})

	t.Run("SearchByDateRequiresDate", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/relatorios", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Data não informada.")
	})

	t.Run("SearchByDate", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/relatorios?data=2025-03-10", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), submitted.ModuleAnswerID.String())
	})

	t.Run("AllDates", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/relatorios/datas", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"data":"2025-03-10","valorFinal":3}]`, rec.Body.String())
	})

	t.Run("LastDimensionResults", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/dimensoes/ultimos-resultados", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[
			{"dimensao":"Vendas","valorFinal":3,"data":"2025-03-10","media":0},
			{"dimensao":"Compras","valorFinal":null,"data":null,"media":0}
		]`, rec.Body.String())
	})

	t.Run("ModuleAnswer", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/respostas-modulo?modulo_id="+submitted.ModuleAnswerID.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(r, token, http.MethodGet, "/respostas-modulo", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(r, token, http.MethodGet, "/respostas-modulo?modulo_id="+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("PartialRoundTrip", func(t *testing.T) {
		rec := do(r, token, http.MethodGet, "/modulos/Comercial/respostas-parciais", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(r, token, http.MethodPut, "/modulos/Comercial/respostas-parciais", `{"respostas":{"1":2}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(r, token, http.MethodGet, "/modulos/Comercial/respostas-parciais", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"respostas":{"1":2}`)

		rec = do(r, token, http.MethodPut, "/modulos/Comercial/respostas-parciais", `{"respostas":[1,2]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
