package server

import (
	"errors"
	"net/http"
	"strconv"

	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

func getReactorData(w http.ResponseWriter, r *http.Request) {
	reactorID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid reactor id", http.StatusBadRequest)
		return
	}

	reactor, err := database.GetReactorByID(reactorID)
	if errors.Is(err, database.ErrReactorNotFound) {
		writeError(w, "Reactor not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("Failed to load reactor", "reactor_id", reactorID, "error", err)
		writeError(w, "Failed to load reactor", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": reactor})
}

func getReactorHistory(w http.ResponseWriter, r *http.Request) {
	reactorID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid reactor id", http.StatusBadRequest)
		return
	}

	records, err := database.GetReactorHistory(reactorID)
	if errors.Is(err, database.ErrReactorNotFound) {
		writeError(w, "Reactor not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("Failed to load reactor history", "reactor_id", reactorID, "error", err)
		writeError(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "history": records})
}
