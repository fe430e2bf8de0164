package main

import (
	"github.com/spf13/cobra"

	"github.com/lucalvex/hub-projeto-diag-api/internal/container"
	"github.com/lucalvex/hub-projeto-diag-api/internal/router"
)

var rootCmd = &cobra.Command{
	Use:           "diagctl",
	Short:         "API de diagnóstico empresarial",
	Long:          "diagctl sobe a API de questionários de diagnóstico e executa tarefas de manutenção do banco.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func routerConfig(c *container.Container) router.RouterConfig {
	return router.RouterConfig{
		UserHandler:          c.UserContainer.Handler,
		QuestionnaireHandler: c.QuestionnaireContainer.Handler,
		AnswerHandler:        c.AnswerContainer.Handler,
		ReportHandler:        c.ReportContainer.Handler,
		ReportRatePerMinute:  c.Settings.ReportRatePerMinute,
	}
}
