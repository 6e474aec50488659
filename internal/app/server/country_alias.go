package server

// countryAliases maps upstream country names to the names the GeoJSON map
// layer uses. Applied only at presentation time; stored data keeps the
// upstream spelling. Unmapped countries pass through unchanged.
var countryAliases = map[string]string{
	"USA":         "United States of America",
	"Russia":      "Russian Federation",
	"South Korea": "Republic of Korea",
}

func canonicalCountryName(country string) string {
	if alias, ok := countryAliases[country]; ok {
		return alias
	}
	return country
}
