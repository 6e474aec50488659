package dto

type CountryCount struct {
	Country string `json:"country"`
	Total   int64  `json:"total"`
}

type DashboardInfo struct {
	TotalReactors    int64   `json:"total_reactors"`
	CountryCount     int64   `json:"country_count"`
	TotalNetCapacity float64 `json:"total_net_capacity"`

	TopCountries []CountryCount `json:"top_countries"`
	AllCountries []CountryCount `json:"all_countries"`
}
