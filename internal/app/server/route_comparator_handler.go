package server

import (
	"net/http"
	"strings"

	"atomatlas/internal/api/dto"
	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

func getModels(w http.ResponseWriter, _ *http.Request) {
	models, err := database.GetDistinctModels()
	if err != nil {
		log.Error("Failed to load models", "error", err)
		writeError(w, "Failed to load models", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"models": models})
}

func getCountriesByModel(w http.ResponseWriter, r *http.Request) {
	model := strings.TrimSpace(r.URL.Query().Get("model"))
	if model == "" {
		writeJSON(w, http.StatusOK, map[string]any{"countries": []string{}})
		return
	}

	countries, err := database.GetCountriesByModel(model)
	if err != nil {
		log.Error("Failed to load countries by model", "model", model, "error", err)
		writeError(w, "Failed to load countries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"countries": countries})
}

func getReactorsByModelAndCountry(w http.ResponseWriter, r *http.Request) {
	model := strings.TrimSpace(r.URL.Query().Get("model"))
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if model == "" || country == "" {
		writeJSON(w, http.StatusOK, map[string]any{"reactors": []dto.ReactorSummary{}})
		return
	}

	reactors, err := database.GetReactorsByModelAndCountry(model, country)
	if err != nil {
		log.Error("Failed to load reactors by model and country", "model", model, "country", country, "error", err)
		writeError(w, "Failed to load reactors", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reactors": reactors})
}
