package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

const catalogYAML = `
modulos:
  - nome: Gestão Financeira
    descricao: Práticas financeiras
    tempo: 15
    dimensoes:
      - titulo: Fluxo de Caixa
        tipo: OBRIGATORIO
        perguntas:
          - pergunta: Há controle diário de caixa?
            peso: 2
          - pergunta: Existe reserva de emergência?
`

func TestReadCatalog(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

		catalog, err := readCatalog(path)
		require.NoError(t, err)
		require.Len(t, catalog.Modules, 1)
		m := catalog.Modules[0]
		assert.Equal(t, "Gestão Financeira", m.Name)
		assert.Equal(t, 15, m.DurationMinutes)
		require.Len(t, m.Dimensions, 1)
		assert.Equal(t, questionnaire.DimensionType("OBRIGATORIO"), m.Dimensions[0].Type)
		assert.Equal(t, 2, m.Dimensions[0].Questions[0].Weight)
		assert.Equal(t, 0, m.Dimensions[0].Questions[1].Weight)
	})

	t.Run("Empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vazio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("modulos: []\n"), 0o600))

		_, err := readCatalog(path)
		assert.Error(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := readCatalog(filepath.Join(t.TempDir(), "nao-existe.yaml"))
		assert.Error(t, err)
	})
}
