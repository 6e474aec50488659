package server

import (
	"net/http"
	"strings"

	"atomatlas/internal/api/dto"
	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

func getMapData(w http.ResponseWriter, _ *http.Request) {
	counts, err := database.GetCountryReactorCounts(0)
	if err != nil {
		log.Error("Failed to load map data", "error", err)
		writeError(w, "Failed to load map data", http.StatusInternalServerError)
		return
	}

	entries := make([]dto.MapCountry, 0, len(counts))
	for _, count := range counts {
		entries = append(entries, dto.MapCountry{
			MapName:       canonicalCountryName(count.Country),
			DBName:        count.Country,
			TotalReactors: count.Total,
		})
	}

	writeJSON(w, http.StatusOK, entries)
}

func getCountries(w http.ResponseWriter, _ *http.Request) {
	countries, err := database.GetDistinctCountries()
	if err != nil {
		log.Error("Failed to load countries", "error", err)
		writeError(w, "Failed to load countries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"countries": countries})
}

func getReactorsByCountry(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		writeJSON(w, http.StatusOK, map[string]any{"reactors": []dto.ReactorSummary{}})
		return
	}

	reactors, err := database.GetReactorsByCountry(country)
	if err != nil {
		log.Error("Failed to load reactors by country", "country", country, "error", err)
		writeError(w, "Failed to load reactors", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reactors": reactors})
}
