package dto

// MapCountry carries one choropleth entry. MapName is the country name after
// presentation-time aliasing so it lines up with the GeoJSON layer; DBName is
// the name as stored.
type MapCountry struct {
	MapName       string `json:"country"`
	DBName        string `json:"db_name"`
	TotalReactors int64  `json:"total_reactors"`
}
