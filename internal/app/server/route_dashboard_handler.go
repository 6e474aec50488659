package server

import (
	"net/http"

	"atomatlas/internal/config"
	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

func getDashboardInfo(w http.ResponseWriter, _ *http.Request) {
	topCountries := config.GetConfig().Dashboard.TopCountries

	info, err := database.GetDashboardInfo(topCountries)
	if err != nil {
		log.Error("Failed to build dashboard info", "error", err)
		writeError(w, "Failed to build dashboard info", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
