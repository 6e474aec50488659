package database

import (
	"fmt"
	"math"
	"testing"
	"time"

	"atomatlas/internal/api/dto"
	"atomatlas/internal/domain"
	"atomatlas/internal/normalize"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAnalyticsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		t.Fatalf("set busy timeout: %v", err)
	}

	if err := db.AutoMigrate(&domain.Reactor{}, &domain.PerformanceRecord{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	DB = db
	t.Cleanup(func() {
		DB = nil
	})

	return db
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestGetDashboardInfo(t *testing.T) {
	db := setupAnalyticsTestDB(t)

	reactors := []domain.Reactor{
		{Name: "FR 1", Country: normalize.String("France"), NetCapacity: normalize.Float(900)},
		{Name: "FR 2", Country: normalize.String("France"), NetCapacity: normalize.Float(1300)},
		{Name: "FR 3", Country: normalize.String("France")},
		{Name: "JP 1", Country: normalize.String("Japan"), NetCapacity: normalize.Float(800)},
		{Name: "JP 2", Country: normalize.String("Japan"), NetCapacity: normalize.Float(1100)},
		{Name: "BR 1", Country: normalize.String("Brazil"), NetCapacity: normalize.Float(609)},
		{Name: "Unlocated 1"},
	}
	if err := db.Create(&reactors).Error; err != nil {
		t.Fatalf("create reactors: %v", err)
	}

	info, err := GetDashboardInfo(2)
	if err != nil {
		t.Fatalf("GetDashboardInfo returned error: %v", err)
	}

	if info.TotalReactors != 7 {
		t.Fatalf("TotalReactors = %d, want 7", info.TotalReactors)
	}
	if info.CountryCount != 3 {
		t.Fatalf("CountryCount = %d, want 3", info.CountryCount)
	}
	if info.TotalNetCapacity != 4709 {
		t.Fatalf("TotalNetCapacity = %v, want 4709", info.TotalNetCapacity)
	}

	if len(info.TopCountries) != 2 {
		t.Fatalf("TopCountries has %d entries, want 2", len(info.TopCountries))
	}
	if info.TopCountries[0].Country != "France" || info.TopCountries[0].Total != 3 {
		t.Fatalf("TopCountries[0] = %+v, want France with 3", info.TopCountries[0])
	}
	if info.TopCountries[1].Country != "Japan" || info.TopCountries[1].Total != 2 {
		t.Fatalf("TopCountries[1] = %+v, want Japan with 2", info.TopCountries[1])
	}

	if len(info.AllCountries) != 3 {
		t.Fatalf("AllCountries has %d entries, want 3", len(info.AllCountries))
	}
}

func TestGetDashboardInfoEmptyStore(t *testing.T) {
	setupAnalyticsTestDB(t)

	info, err := GetDashboardInfo(5)
	if err != nil {
		t.Fatalf("GetDashboardInfo returned error: %v", err)
	}
	if info.TotalReactors != 0 || info.CountryCount != 0 {
		t.Fatalf("empty store produced counts %+v", info)
	}
	if info.TotalNetCapacity != 0 {
		t.Fatalf("TotalNetCapacity = %v, want 0 for empty store", info.TotalNetCapacity)
	}
}

func TestGetDistinctModelsSkipsBlank(t *testing.T) {
	db := setupAnalyticsTestDB(t)

	empty := ""
	reactors := []domain.Reactor{
		{Name: "A", Model: normalize.String("PWR")},
		{Name: "B", Model: normalize.String("CANDU 6")},
		{Name: "C", Model: &empty},
		{Name: "D"},
		{Name: "E", Model: normalize.String("PWR")},
	}
	if err := db.Create(&reactors).Error; err != nil {
		t.Fatalf("create reactors: %v", err)
	}

	models, err := GetDistinctModels()
	if err != nil {
		t.Fatalf("GetDistinctModels returned error: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("GetDistinctModels returned %v, want 2 entries", models)
	}
	if models[0] != "CANDU 6" || models[1] != "PWR" {
		t.Fatalf("GetDistinctModels returned %v, want [CANDU 6 PWR]", models)
	}
}

func TestGetTypeAnalysis(t *testing.T) {
	db := setupAnalyticsTestDB(t)

	pwr := domain.TypePWR
	bwr := domain.TypeBWR

	reactors := []domain.Reactor{
		{
			// 8 years of construction, connected 1969.
			Name:              "PWR 1",
			Country:           normalize.String("France"),
			TypeCategory:      &pwr,
			NetCapacity:       normalize.Float(900),
			ConstructionStart: date(1961, time.January, 1),
			FirstGridConnect:  date(1969, time.January, 1),
		},
		{
			// 12 years of construction, connected 1973.
			Name:              "PWR 2",
			Country:           normalize.String("Japan"),
			TypeCategory:      &pwr,
			NetCapacity:       normalize.Float(1100),
			ConstructionStart: date(1961, time.January, 1),
			FirstGridConnect:  date(1973, time.January, 1),
		},
		{
			// Negative duration: excluded from the mean, still counted.
			Name:              "PWR 3",
			Country:           normalize.String("France"),
			TypeCategory:      &pwr,
			ConstructionStart: date(1980, time.January, 1),
			FirstGridConnect:  date(1973, time.June, 1),
		},
		{
			// Missing construction start: excluded from the mean.
			Name:             "PWR 4",
			Country:          normalize.String("France"),
			TypeCategory:     &pwr,
			FirstGridConnect: date(1969, time.March, 1),
		},
		{
			Name:         "BWR 1",
			Country:      normalize.String("Japan"),
			TypeCategory: &bwr,
			NetCapacity:  normalize.Float(800),
		},
	}
	if err := db.Create(&reactors).Error; err != nil {
		t.Fatalf("create reactors: %v", err)
	}

	records := []domain.PerformanceRecord{
		{ReactorID: reactors[0].ID, Year: 2000, ElectricitySupplied: normalize.Float(100)},
		{ReactorID: reactors[1].ID, Year: 2000, ElectricitySupplied: normalize.Float(200)},
		{ReactorID: reactors[0].ID, Year: 2001, ElectricitySupplied: normalize.Float(120)},
		{ReactorID: reactors[1].ID, Year: 2001},
		{ReactorID: reactors[4].ID, Year: 2000, ElectricitySupplied: normalize.Float(999)},
	}
	if err := db.Create(&records).Error; err != nil {
		t.Fatalf("create records: %v", err)
	}

	analysis, err := GetTypeAnalysis(domain.TypePWR)
	if err != nil {
		t.Fatalf("GetTypeAnalysis returned error: %v", err)
	}

	if analysis.UnitCount != 4 {
		t.Fatalf("UnitCount = %d, want 4", analysis.UnitCount)
	}
	if analysis.TotalNetCapacity != 2000 {
		t.Fatalf("TotalNetCapacity = %v, want 2000", analysis.TotalNetCapacity)
	}
	if analysis.CountryCount != 2 {
		t.Fatalf("CountryCount = %d, want 2", analysis.CountryCount)
	}

	// Mean of exactly 8.0 and 12.0 years; the negative and incomplete
	// durations stay out of it.
	if analysis.AvgConstructionYears == nil {
		t.Fatal("AvgConstructionYears is nil")
	}
	if math.Abs(*analysis.AvgConstructionYears-10.0) > 0.001 {
		t.Fatalf("AvgConstructionYears = %v, want 10.0", *analysis.AvgConstructionYears)
	}

	wantOutput := []dto.YearValue{{Year: 2000, Value: 150}, {Year: 2001, Value: 120}}
	if len(analysis.AnnualOutput) != len(wantOutput) {
		t.Fatalf("AnnualOutput = %v, want %v", analysis.AnnualOutput, wantOutput)
	}
	for i, want := range wantOutput {
		if analysis.AnnualOutput[i] != want {
			t.Fatalf("AnnualOutput[%d] = %+v, want %+v", i, analysis.AnnualOutput[i], want)
		}
	}

	wantTimeline := []dto.YearCount{{Year: 1969, Count: 2}, {Year: 1973, Count: 2}}
	if len(analysis.DeploymentTimeline) != len(wantTimeline) {
		t.Fatalf("DeploymentTimeline = %v, want %v", analysis.DeploymentTimeline, wantTimeline)
	}
	for i, want := range wantTimeline {
		if analysis.DeploymentTimeline[i] != want {
			t.Fatalf("DeploymentTimeline[%d] = %+v, want %+v", i, analysis.DeploymentTimeline[i], want)
		}
	}

	if len(analysis.Reactors) != 4 {
		t.Fatalf("Reactors has %d entries, want 4", len(analysis.Reactors))
	}
}

func TestGetTypeAnalysisEmptyCategory(t *testing.T) {
	setupAnalyticsTestDB(t)

	analysis, err := GetTypeAnalysis(domain.TypeLWGR)
	if err != nil {
		t.Fatalf("GetTypeAnalysis returned error: %v", err)
	}
	if analysis.UnitCount != 0 {
		t.Fatalf("UnitCount = %d, want 0", analysis.UnitCount)
	}
	if analysis.AvgConstructionYears != nil {
		t.Fatalf("AvgConstructionYears = %v, want nil", *analysis.AvgConstructionYears)
	}
}

func TestGetLifecycleProjection(t *testing.T) {
	db := setupAnalyticsTestDB(t)

	reactors := []domain.Reactor{
		{
			Name:             "Projected Unit",
			FirstGridConnect: date(1990, time.January, 1),
		},
		{
			Name:              "Retired Unit",
			FirstGridConnect:  date(1970, time.May, 1),
			PermanentShutdown: date(2011, time.March, 11),
		},
		{
			// No connection date: excluded from the view entirely.
			Name:              "Unconnected Unit",
			PermanentShutdown: date(1995, time.January, 1),
		},
	}
	if err := db.Create(&reactors).Error; err != nil {
		t.Fatalf("create reactors: %v", err)
	}

	entries, err := GetLifecycleProjection()
	if err != nil {
		t.Fatalf("GetLifecycleProjection returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("projection has %d entries, want 2", len(entries))
	}

	byName := make(map[string]dto.LifecycleEntry, len(entries))
	for _, entry := range entries {
		byName[entry.Name] = entry
	}

	projected, ok := byName["Projected Unit"]
	if !ok {
		t.Fatal("Projected Unit missing from projection")
	}
	wantEnd := date(1990, time.January, 1).AddDate(0, 0, 21915)
	if !projected.End.Equal(wantEnd) {
		t.Fatalf("projected end = %s, want %s", projected.End, wantEnd)
	}
	if projected.Status != dto.LifecycleStatusProjected {
		t.Fatalf("projected status = %q, want %q", projected.Status, dto.LifecycleStatusProjected)
	}

	retired, ok := byName["Retired Unit"]
	if !ok {
		t.Fatal("Retired Unit missing from projection")
	}
	if !retired.End.Equal(*date(2011, time.March, 11)) {
		t.Fatalf("retired end = %s, want the shutdown date", retired.End)
	}
	if retired.Status != dto.LifecycleStatusDecommissioned {
		t.Fatalf("retired status = %q, want %q", retired.Status, dto.LifecycleStatusDecommissioned)
	}
}

func TestGetReactorByIDNotFound(t *testing.T) {
	setupAnalyticsTestDB(t)

	if _, err := GetReactorByID(424242); err != ErrReactorNotFound {
		t.Fatalf("GetReactorByID returned %v, want ErrReactorNotFound", err)
	}
}

func TestGetCountryReactorCountsLimit(t *testing.T) {
	db := setupAnalyticsTestDB(t)

	reactors := []domain.Reactor{
		{Name: "A1", Country: normalize.String("A")},
		{Name: "A2", Country: normalize.String("A")},
		{Name: "B1", Country: normalize.String("B")},
	}
	if err := db.Create(&reactors).Error; err != nil {
		t.Fatalf("create reactors: %v", err)
	}

	counts, err := GetCountryReactorCounts(1)
	if err != nil {
		t.Fatalf("GetCountryReactorCounts returned error: %v", err)
	}
	if len(counts) != 1 || counts[0].Country != "A" || counts[0].Total != 2 {
		t.Fatalf("GetCountryReactorCounts(1) = %v, want [{A 2}]", counts)
	}
}
