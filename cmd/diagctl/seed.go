package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lucalvex/hub-projeto-diag-api/internal/container"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carrega o catálogo de módulos a partir de um YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		catalog, err := readCatalog(path)
		if err != nil {
			return err
		}

		c := container.New()
		return c.QuestionnaireContainer.Service.Seed(cmd.Context(), catalog)
	},
}

func init() {
	seedCmd.Flags().StringP("file", "f", "catalog.yaml", "Arquivo YAML com o catálogo")
}

func readCatalog(path string) (questionnaire.Catalog, error) {
	var catalog questionnaire.Catalog

	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("falha ao ler catálogo: %w", err)
	}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return catalog, fmt.Errorf("catálogo inválido: %w", err)
	}
	if len(catalog.Modules) == 0 {
		return catalog, fmt.Errorf("catálogo sem módulos: %s", path)
	}
	return catalog, nil
}
