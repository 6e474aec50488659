package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"atomatlas/internal/app/bootstrap"
	"atomatlas/internal/app/server"
	"atomatlas/internal/config"
	"atomatlas/internal/jobs/classifier"
	"atomatlas/internal/jobs/geocode"
	"atomatlas/internal/jobs/history"
	"atomatlas/internal/jobs/importer"
)

const defaultPort = 8083

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	log.SetLevel(log.DebugLevel)

	portFlag := flag.Int("port", defaultPort, "Port for the API server")
	productionFlag := flag.Bool("production", false, "Run in production mode")
	jobFlag := flag.String("job", "", "Run batch jobs instead of the server: import, history, coordinates, classify or all (comma-separated)")
	flag.Parse()

	config.SetProductionMode(*productionFlag)

	bootstrap.Setup()

	if *jobFlag != "" {
		return runJobs(*jobFlag)
	}

	return server.OpenRoutes(resolvePort(*portFlag))
}

// runJobs executes the named ingestion passes sequentially. "all" expands to
// the full pipeline in dependency order: the import must come first because
// it wipes the catalog the later passes enrich.
func runJobs(list string) error {
	names := strings.Split(list, ",")
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		names = []string{"import", "history", "coordinates", "classify"}
	}

	ctx := context.Background()

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		switch name {
		case "import":
			if _, err := importer.NewFromConfig().Run(ctx); err != nil {
				return fmt.Errorf("import job: %w", err)
			}
		case "history":
			if _, err := history.NewFromConfig().Run(ctx); err != nil {
				return fmt.Errorf("history job: %w", err)
			}
		case "coordinates":
			if _, err := geocode.NewFromConfig().Run(ctx); err != nil {
				return fmt.Errorf("coordinates job: %w", err)
			}
		case "classify":
			if _, err := classifier.Run(); err != nil {
				return fmt.Errorf("classify job: %w", err)
			}
		case "":
			continue
		default:
			return fmt.Errorf("unknown job %q", name)
		}
	}

	return nil
}

func resolvePort(fallback int) int {
	if port := readPort("PORT"); port != 0 {
		return port
	}
	return fallback
}

func readPort(envKey string) int {
	raw := os.Getenv(envKey)
	if raw == "" {
		return 0
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port == 0 {
		log.Warn("invalid port override", "env", envKey, "value", raw)
		return 0
	}
	return port
}
