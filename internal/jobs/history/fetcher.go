package history

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"atomatlas/internal/config"
	"atomatlas/internal/database"
	"atomatlas/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

type historyRecord struct {
	Year                int      `json:"Year"`
	ElectricitySupplied *float64 `json:"ElectricitySupplied"`
	ReferenceUnitPower  *float64 `json:"ReferenceUnitPower"`
	AnnualTimeOnLine    *float64 `json:"AnnualTimeOnLine"`
	LoadFactorAnnual    *float64 `json:"LoadFactorAnnual"`
	OperationFactor     *float64 `json:"OperationFactor"`
}

type Result struct {
	Processed      int
	Skipped        int
	RecordsWritten int
	Failures       int
}

// Fetcher pulls the per-reactor performance time series. Reactors that
// already have any history are skipped, which makes the batch resumable
// across runs; a reactor that exhausts its retries is logged and left for
// the next invocation.
type Fetcher struct {
	client     *resty.Client
	retries    int
	retryDelay time.Duration
	pause      time.Duration
}

func New(baseURL string, retries int, retryDelay, pause, timeout time.Duration) *Fetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json, text/javascript, */*; q=0.01")

	if retries < 1 {
		retries = 1
	}

	return &Fetcher{
		client:     client,
		retries:    retries,
		retryDelay: retryDelay,
		pause:      pause,
	}
}

func NewFromConfig() *Fetcher {
	cfg := config.GetConfig()
	return New(
		cfg.History.BaseURL,
		cfg.History.Retries,
		cfg.HistoryRetryDelay(),
		cfg.HistoryPause(),
		time.Duration(cfg.History.TimeoutSeconds)*time.Second,
	)
}

func (f *Fetcher) Run(ctx context.Context) (*Result, error) {
	reactors, err := database.GetAllReactors()
	if err != nil {
		return nil, fmt.Errorf("load reactors: %w", err)
	}

	log.Info("Starting performance history fetch", "reactors", len(reactors))

	result := &Result{}

	for i := range reactors {
		reactor := &reactors[i]

		hasHistory, err := database.HasPerformanceHistory(reactor.ID)
		if err != nil {
			return nil, fmt.Errorf("check history for %q: %w", reactor.Name, err)
		}
		if hasHistory {
			result.Skipped++
			continue
		}

		result.Processed++

		written, err := f.fetchReactor(ctx, reactor)
		if err != nil {
			result.Failures++
			log.Error("Definitive failure fetching history", "reactor", reactor.Name, "error", err)
		} else {
			result.RecordsWritten += written
			log.Debug("Fetched performance history", "reactor", reactor.Name, "records", written)
		}

		// Bound the outbound request rate regardless of outcome.
		time.Sleep(f.pause)
	}

	log.Info("Performance history fetch completed",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"records", result.RecordsWritten,
		"failures", result.Failures,
	)

	return result, nil
}

// fetchReactor attempts the time-series endpoint up to the configured number
// of times. A 200 upserts the payload, a 404 is a definitive "no history
// available", everything else is retried after a fixed delay.
func (f *Fetcher) fetchReactor(ctx context.Context, reactor *domain.Reactor) (int, error) {
	var lastErr error

	for attempt := 1; attempt <= f.retries; attempt++ {
		if attempt > 1 {
			time.Sleep(f.retryDelay)
		}

		resp, err := f.client.R().
			SetContext(ctx).
			Get("/" + url.PathEscape(reactor.Name))
		if err != nil {
			lastErr = err
			log.Warn("History request failed", "reactor", reactor.Name, "attempt", attempt, "error", err)
			continue
		}

		switch {
		case resp.StatusCode() == http.StatusOK:
			written, err := f.storeHistory(reactor, resp.Body())
			if err != nil {
				return 0, err
			}
			return written, nil

		case resp.StatusCode() == http.StatusNotFound:
			log.Debug("No history available", "reactor", reactor.Name)
			return 0, nil

		default:
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode())
			log.Warn("History request rejected", "reactor", reactor.Name, "attempt", attempt, "status", resp.StatusCode())
		}
	}

	return 0, fmt.Errorf("exhausted %d attempts: %w", f.retries, lastErr)
}

func (f *Fetcher) storeHistory(reactor *domain.Reactor, body []byte) (int, error) {
	var payload []historyRecord
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("decode history payload: %w", err)
	}

	records := make([]domain.PerformanceRecord, 0, len(payload))
	for _, entry := range payload {
		records = append(records, domain.PerformanceRecord{
			ReactorID:           reactor.ID,
			Year:                entry.Year,
			ElectricitySupplied: entry.ElectricitySupplied,
			ReferenceUnitPower:  entry.ReferenceUnitPower,
			AnnualTimeOnline:    entry.AnnualTimeOnLine,
			OperationFactor:     entry.OperationFactor,
			AnnualLoadFactor:    entry.LoadFactorAnnual,
		})
	}

	if err := database.UpsertPerformanceRecords(records); err != nil {
		return 0, fmt.Errorf("upsert history: %w", err)
	}

	return len(records), nil
}
