package main

import (
	"os"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		config.Logger.WithError(err).Error("diagctl failed")
		os.Exit(1)
	}
}
