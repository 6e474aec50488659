package server

import (
	"net/http"
	"slices"

	"atomatlas/internal/database"
	"atomatlas/internal/domain"

	"github.com/charmbracelet/log"
)

func getTypeCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": domain.TypeCategories})
}

func getTypeAnalysis(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if !slices.Contains(domain.TypeCategories, category) {
		writeError(w, "Unknown type category", http.StatusNotFound)
		return
	}

	analysis, err := database.GetTypeAnalysis(category)
	if err != nil {
		log.Error("Failed to build type analysis", "category", category, "error", err)
		writeError(w, "Failed to build type analysis", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
