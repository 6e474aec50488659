package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func newRouter() *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /health", getHealth)

	router.HandleFunc("GET /getDashboardInfo", getDashboardInfo)

	router.HandleFunc("GET /getMapData", getMapData)
	router.HandleFunc("GET /getCountries", getCountries)
	router.HandleFunc("GET /getReactorsByCountry", getReactorsByCountry)

	router.HandleFunc("GET /getModels", getModels)
	router.HandleFunc("GET /getCountriesByModel", getCountriesByModel)
	router.HandleFunc("GET /getReactorsByModelAndCountry", getReactorsByModelAndCountry)

	router.HandleFunc("GET /getReactorData/{id}", getReactorData)
	router.HandleFunc("GET /getReactorHistory/{id}", getReactorHistory)

	router.HandleFunc("GET /getTypeCategories", getTypeCategories)
	router.HandleFunc("GET /getTypeAnalysis/{category}", getTypeAnalysis)

	router.HandleFunc("GET /getLifecycleTimeline", getLifecycleTimeline)

	return router
}

func OpenRoutes(port int) error {
	router := newRouter()

	log.Debug("Routes opened")

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: enableCORS(router),
	}

	log.Infof("Starting API server on port %d", port)
	return server.ListenAndServe()
}

func getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
