package classifier

import (
	"fmt"

	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

type Result struct {
	Scanned int
	Updated int
}

// Run derives the type category for every reactor from its model field.
// Reactors whose model matches no keyword group keep their current category;
// reactors already carrying the computed category are not re-written, so a
// second run over a stable catalog is a no-op.
func Run() (*Result, error) {
	reactors, err := database.GetAllReactors()
	if err != nil {
		return nil, fmt.Errorf("load reactors: %w", err)
	}

	result := &Result{Scanned: len(reactors)}

	for i := range reactors {
		reactor := &reactors[i]

		model := ""
		if reactor.Model != nil {
			model = *reactor.Model
		}

		category := Classify(model)
		if category == "" {
			continue
		}

		if reactor.TypeCategory != nil && *reactor.TypeCategory == category {
			continue
		}

		if err := database.UpdateReactorTypeCategory(reactor.ID, category); err != nil {
			return nil, fmt.Errorf("update category for %q: %w", reactor.Name, err)
		}
		result.Updated++
	}

	log.Info("Type classification completed", "scanned", result.Scanned, "updated", result.Updated)

	return result, nil
}
