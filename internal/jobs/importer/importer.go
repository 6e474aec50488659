package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atomatlas/internal/config"
	"atomatlas/internal/database"
	"atomatlas/internal/domain"
	"atomatlas/internal/normalize"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// The upstream database rejects requests without a browser-looking header set.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"
	referer   = "https://world-nuclear.org/nuclear-reactor-database/search/"
)

type upstreamReactor struct {
	ReactorName                   string          `json:"reactorName"`
	AlternateName                 string          `json:"alternateName"`
	Location                      string          `json:"location"`
	Status                        string          `json:"status"`
	Owner                         string          `json:"owner"`
	Operator                      string          `json:"operator"`
	Model                         string          `json:"model"`
	ReferenceUnitPowerNetCapacity json.RawMessage `json:"referenceUnitPowerNetCapacity"`
	ThermalCapacity               json.RawMessage `json:"thermalCapacity"`
	GrossCapacity                 json.RawMessage `json:"grossCapacity"`
	ConstructionStartDate         string          `json:"constructionStartDate"`
	FirstGridConnection           string          `json:"firstGridConnection"`
	PermanentShutdownDate         string          `json:"permanentShutdownDate"`
}

type listingPage struct {
	Data []upstreamReactor `json:"data"`
}

type Result struct {
	Pages    int
	Imported int
}

// Importer harvests the full reactor master list page by page and replaces
// the stored catalog wholesale. Any paging-level fault aborts the run; a
// rerun starts over, which is safe because nothing is committed until every
// page has been staged.
type Importer struct {
	client   *resty.Client
	pageSize int
}

func New(baseURL string, pageSize int, timeout time.Duration) *Importer {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json, text/javascript, */*; q=0.01").
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetHeader("Referer", referer)

	return &Importer{
		client:   client,
		pageSize: pageSize,
	}
}

func NewFromConfig() *Importer {
	cfg := config.GetConfig()
	return New(
		cfg.Importer.BaseURL,
		cfg.Importer.PageSize,
		time.Duration(cfg.Importer.TimeoutSeconds)*time.Second,
	)
}

func (imp *Importer) Run(ctx context.Context) (*Result, error) {
	log.Info("Starting reactor catalog import", "page_size", imp.pageSize)

	var staged []domain.Reactor
	seen := make(map[string]int)
	result := &Result{}

	for pageNumber := 1; ; pageNumber++ {
		page, err := imp.fetchPage(ctx, pageNumber)
		if err != nil {
			return nil, fmt.Errorf("import page %d: %w", pageNumber, err)
		}

		result.Pages++

		if len(page.Data) == 0 {
			break
		}

		for i := range page.Data {
			record := &page.Data[i]
			if record.ReactorName == "" {
				log.Warn("Skipping upstream record without a reactor name", "page", pageNumber)
				continue
			}

			reactor := convertReactor(record)

			// The name is the natural key; if the upstream listing repeats
			// one, the later occurrence wins.
			if idx, dup := seen[reactor.Name]; dup {
				log.Warn("Duplicate reactor name in upstream listing", "name", reactor.Name)
				staged[idx] = reactor
				continue
			}

			seen[reactor.Name] = len(staged)
			staged = append(staged, reactor)
		}

		log.Debug("Fetched listing page", "page", pageNumber, "records", len(page.Data))
	}

	if err := database.ReplaceAllReactors(staged); err != nil {
		return nil, fmt.Errorf("replace reactor catalog: %w", err)
	}

	result.Imported = len(staged)
	log.Info("Reactor catalog import completed", "pages", result.Pages, "reactors", result.Imported)

	return result, nil
}

func (imp *Importer) fetchPage(ctx context.Context, pageNumber int) (*listingPage, error) {
	resp, err := imp.client.R().
		SetContext(ctx).
		SetQueryParam("pageSize", fmt.Sprint(imp.pageSize)).
		SetQueryParam("pageNumber", fmt.Sprint(pageNumber)).
		Get("/getreactordata")
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	var page listingPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode listing page: %w", err)
	}

	return &page, nil
}

func convertReactor(record *upstreamReactor) domain.Reactor {
	return domain.Reactor{
		Name:              record.ReactorName,
		AlternateName:     normalize.String(record.AlternateName),
		Country:           normalize.String(record.Location),
		Status:            normalize.String(record.Status),
		Owner:             normalize.String(record.Owner),
		Operator:          normalize.String(record.Operator),
		Model:             normalize.String(record.Model),
		NetCapacity:       normalize.ParseFloat(record.ReferenceUnitPowerNetCapacity),
		ThermalCapacity:   normalize.ParseFloat(record.ThermalCapacity),
		GrossCapacity:     normalize.ParseFloat(record.GrossCapacity),
		ConstructionStart: normalize.ParseDate(record.ConstructionStartDate),
		FirstGridConnect:  normalize.ParseDate(record.FirstGridConnection),
		PermanentShutdown: normalize.ParseDate(record.PermanentShutdownDate),
	}
}
