package server

import (
	"net/http"

	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

func getLifecycleTimeline(w http.ResponseWriter, _ *http.Request) {
	entries, err := database.GetLifecycleProjection()
	if err != nil {
		log.Error("Failed to build lifecycle timeline", "error", err)
		writeError(w, "Failed to build lifecycle timeline", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"timeline": entries})
}
