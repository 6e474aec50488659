package dto

type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// TypeAnalysis is the encyclopedia bundle for one reactor type category.
type TypeAnalysis struct {
	Category         string  `json:"category"`
	UnitCount        int64   `json:"unit_count"`
	TotalNetCapacity float64 `json:"total_net_capacity"`
	CountryCount     int64   `json:"country_count"`

	// Mean construction duration in years, nil when no reactor of the type
	// has both a construction-start and first-connection date.
	AvgConstructionYears *float64 `json:"avg_construction_years"`

	// Mean electricity supplied per calendar year across the type's fleet.
	AnnualOutput []YearValue `json:"annual_output"`

	// First-grid-connections per calendar year.
	DeploymentTimeline []YearCount `json:"deployment_timeline"`

	Reactors []ReactorSummary `json:"reactors"`
}
