package bootstrap

import (
	"atomatlas/internal/config"
	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

func Setup() {
	config.ReadSettings()

	if _, err := database.SetupDB(); err != nil {
		log.Fatalf("failed to set up database: %v", err)
	}
}
