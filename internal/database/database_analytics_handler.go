package database

import (
	"sort"
	"time"

	"atomatlas/internal/api/dto"
	"atomatlas/internal/domain"

	"golang.org/x/sync/errgroup"
)

const (
	daysPerYear         = 365.25
	projectionLifeYears = 60
)

func GetDashboardInfo(topCountries int) (*dto.DashboardInfo, error) {
	info := &dto.DashboardInfo{}

	if err := DB.Model(&domain.Reactor{}).Count(&info.TotalReactors).Error; err != nil {
		return nil, err
	}

	err := DB.Model(&domain.Reactor{}).
		Where("country IS NOT NULL").
		Distinct("country").
		Count(&info.CountryCount).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&domain.Reactor{}).
		Select("COALESCE(SUM(net_capacity), 0)").
		Scan(&info.TotalNetCapacity).Error
	if err != nil {
		return nil, err
	}

	if info.AllCountries, err = GetCountryReactorCounts(0); err != nil {
		return nil, err
	}

	if topCountries > 0 && topCountries < len(info.AllCountries) {
		info.TopCountries = info.AllCountries[:topCountries]
	} else {
		info.TopCountries = info.AllCountries
	}

	return info, nil
}

// GetCountryReactorCounts returns per-country reactor counts, descending by
// count. limit 0 means the full list.
func GetCountryReactorCounts(limit int) ([]dto.CountryCount, error) {
	query := DB.Model(&domain.Reactor{}).
		Select("country, COUNT(*) AS total").
		Where("country IS NOT NULL").
		Group("country").
		Order("total DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var counts []dto.CountryCount
	err := query.Scan(&counts).Error
	return counts, err
}

func GetDistinctCountries() ([]string, error) {
	var countries []string
	err := DB.Model(&domain.Reactor{}).
		Where("country IS NOT NULL").
		Distinct("country").
		Order("country").
		Pluck("country", &countries).Error
	return countries, err
}

func GetDistinctModels() ([]string, error) {
	var models []string
	err := DB.Model(&domain.Reactor{}).
		Where("model IS NOT NULL AND model <> ''").
		Distinct("model").
		Order("model").
		Pluck("model", &models).Error
	return models, err
}

func GetCountriesByModel(model string) ([]string, error) {
	var countries []string
	err := DB.Model(&domain.Reactor{}).
		Where("model = ? AND country IS NOT NULL", model).
		Distinct("country").
		Order("country").
		Pluck("country", &countries).Error
	return countries, err
}

func GetReactorsByCountry(country string) ([]dto.ReactorSummary, error) {
	var reactors []dto.ReactorSummary
	err := DB.Model(&domain.Reactor{}).
		Select("id, name, net_capacity").
		Where("country = ?", country).
		Order("name").
		Scan(&reactors).Error
	return reactors, err
}

func GetReactorsByModelAndCountry(model, country string) ([]dto.ReactorSummary, error) {
	var reactors []dto.ReactorSummary
	err := DB.Model(&domain.Reactor{}).
		Select("id, name, net_capacity").
		Where("model = ? AND country = ?", model, country).
		Order("name").
		Scan(&reactors).Error
	return reactors, err
}

// GetTypeAnalysis assembles the encyclopedia bundle for one type category.
// The three underlying scans are independent and read-only, so they run
// concurrently.
func GetTypeAnalysis(category string) (*dto.TypeAnalysis, error) {
	analysis := &dto.TypeAnalysis{Category: category}

	var (
		group    errgroup.Group
		reactors []domain.Reactor
	)

	group.Go(func() error {
		return DB.Where("type_category = ?", category).
			Order("name").
			Find(&reactors).Error
	})

	group.Go(func() error {
		return DB.Model(&domain.Reactor{}).
			Where("type_category = ? AND country IS NOT NULL", category).
			Distinct("country").
			Count(&analysis.CountryCount).Error
	})

	group.Go(func() error {
		return DB.Model(&domain.PerformanceRecord{}).
			Select("performance_records.year AS year, AVG(performance_records.electricity_supplied) AS value").
			Joins("JOIN reactors ON reactors.id = performance_records.reactor_id").
			Where("reactors.type_category = ? AND performance_records.electricity_supplied IS NOT NULL", category).
			Group("performance_records.year").
			Order("year").
			Scan(&analysis.AnnualOutput).Error
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	analysis.UnitCount = int64(len(reactors))
	analysis.Reactors = make([]dto.ReactorSummary, 0, len(reactors))

	deployments := make(map[int]int64)
	var (
		durationSum   float64
		durationCount int
	)

	for i := range reactors {
		reactor := &reactors[i]

		analysis.Reactors = append(analysis.Reactors, dto.ReactorSummary{
			ID:          reactor.ID,
			Name:        reactor.Name,
			Country:     reactor.Country,
			NetCapacity: reactor.NetCapacity,
		})

		if reactor.NetCapacity != nil {
			analysis.TotalNetCapacity += *reactor.NetCapacity
		}

		if reactor.FirstGridConnect != nil {
			deployments[reactor.FirstGridConnect.Year()]++
		}

		if years, ok := constructionYears(reactor); ok {
			durationSum += years
			durationCount++
		}
	}

	if durationCount > 0 {
		avg := durationSum / float64(durationCount)
		analysis.AvgConstructionYears = &avg
	}

	analysis.DeploymentTimeline = make([]dto.YearCount, 0, len(deployments))
	for year, count := range deployments {
		analysis.DeploymentTimeline = append(analysis.DeploymentTimeline, dto.YearCount{Year: year, Count: count})
	}
	sort.Slice(analysis.DeploymentTimeline, func(i, j int) bool {
		return analysis.DeploymentTimeline[i].Year < analysis.DeploymentTimeline[j].Year
	})

	return analysis, nil
}

// constructionYears reports the construction duration of a reactor in years.
// Reactors missing either date, or carrying an implausible negative duration,
// are excluded from the mean.
func constructionYears(reactor *domain.Reactor) (float64, bool) {
	if reactor.ConstructionStart == nil || reactor.FirstGridConnect == nil {
		return 0, false
	}

	days := reactor.FirstGridConnect.Sub(*reactor.ConstructionStart).Hours() / 24
	if days < 0 {
		return 0, false
	}

	return days / daysPerYear, true
}

// GetLifecycleProjection computes one timeline entry per reactor with a known
// first grid connection: the actual shutdown date when recorded, otherwise a
// 60-year projected end of life.
func GetLifecycleProjection() ([]dto.LifecycleEntry, error) {
	var reactors []domain.Reactor
	err := DB.Where("first_grid_connect IS NOT NULL").
		Order("first_grid_connect").
		Find(&reactors).Error
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LifecycleEntry, 0, len(reactors))
	projectedLife := time.Duration(projectionLifeYears*daysPerYear*24) * time.Hour

	for i := range reactors {
		reactor := &reactors[i]

		entry := dto.LifecycleEntry{
			ID:      reactor.ID,
			Name:    reactor.Name,
			Country: reactor.Country,
			Start:   *reactor.FirstGridConnect,
		}

		if reactor.PermanentShutdown != nil {
			entry.End = *reactor.PermanentShutdown
			entry.Status = dto.LifecycleStatusDecommissioned
		} else {
			entry.End = reactor.FirstGridConnect.Add(projectedLife)
			entry.Status = dto.LifecycleStatusProjected
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
