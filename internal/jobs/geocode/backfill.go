package geocode

import (
	"context"
	"fmt"
	"time"

	"atomatlas/internal/config"
	"atomatlas/internal/database"

	"github.com/charmbracelet/log"
)

type Result struct {
	Processed int
	Updated   int
	Missing   int
	Failures  int
}

// Backfiller fills in coordinates for reactors that still lack them. Fetch
// errors and pages without usable coordinate fields are logged and skipped;
// the reactor stays in the work list for the next invocation because its
// latitude remains null.
type Backfiller struct {
	source Source
	pause  time.Duration
}

func New(source Source, pause time.Duration) *Backfiller {
	return &Backfiller{
		source: source,
		pause:  pause,
	}
}

func NewFromConfig() *Backfiller {
	cfg := config.GetConfig()
	source := NewHTMLSource(
		cfg.Geocode.BaseURL,
		time.Duration(cfg.Geocode.TimeoutSeconds)*time.Second,
	)
	return New(source, cfg.GeocodePause())
}

func (b *Backfiller) Run(ctx context.Context) (*Result, error) {
	reactors, err := database.GetReactorsWithoutCoordinates()
	if err != nil {
		return nil, fmt.Errorf("load reactors without coordinates: %w", err)
	}

	if len(reactors) == 0 {
		log.Info("All reactors already have coordinates")
		return &Result{}, nil
	}

	log.Info("Starting coordinate backfill", "reactors", len(reactors))

	result := &Result{}

	for i := range reactors {
		reactor := &reactors[i]
		result.Processed++

		coords, found, err := b.source.Lookup(ctx, reactor.Name)
		switch {
		case err != nil:
			result.Failures++
			log.Error("Coordinate lookup failed", "reactor", reactor.Name, "error", err)

		case !found:
			result.Missing++
			log.Warn("Detail page carries no usable coordinates", "reactor", reactor.Name)

		default:
			if err := database.UpdateReactorCoordinates(reactor.ID, coords.Latitude, coords.Longitude); err != nil {
				result.Failures++
				log.Error("Failed to store coordinates", "reactor", reactor.Name, "error", err)
			} else {
				result.Updated++
				log.Debug("Stored coordinates", "reactor", reactor.Name, "lat", coords.Latitude, "lon", coords.Longitude)
			}
		}

		time.Sleep(b.pause)
	}

	log.Info("Coordinate backfill completed",
		"processed", result.Processed,
		"updated", result.Updated,
		"missing", result.Missing,
		"failures", result.Failures,
	)

	return result, nil
}
