package main

import (
	"github.com/spf13/cobra"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/container"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria ou atualiza as tabelas do banco",
	RunE: func(cmd *cobra.Command, args []string) error {
		container.New()
		if err := container.Migrate(config.DB); err != nil {
			return err
		}
		config.Logger.Info("Migrations applied")
		return nil
	},
}
