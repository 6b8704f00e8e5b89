package region

import "strings"

// DefaultBaseCountry is the shipping origin when nothing else is configured.
const DefaultBaseCountry = "DE"

var euCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "CY": {}, "CZ": {}, "DE": {}, "DK": {},
	"EE": {}, "ES": {}, "FI": {}, "FR": {}, "GR": {}, "HR": {}, "HU": {},
	"IE": {}, "IT": {}, "LT": {}, "LU": {}, "LV": {}, "MT": {}, "NL": {},
	"PL": {}, "PT": {}, "RO": {}, "SE": {}, "SI": {}, "SK": {},
}

// Region classifies destinations relative to the shipping origin.
type Region struct {
	base string
}

// New returns a Region rooted at baseCountry (ISO-2). Empty means DE.
func New(baseCountry string) Region {
	base := normalize(baseCountry)
	if base == "" {
		base = DefaultBaseCountry
	}
	return Region{base: base}
}

// BaseCountry returns the configured origin country.
func (r Region) BaseCountry() string { return r.base }

// IsDomestic reports whether country equals the base country.
func (r Region) IsDomestic(country string) bool {
	return normalize(country) == r.base
}

// IsEU reports whether country is another EU member state.
func (r Region) IsEU(country string) bool {
	c := normalize(country)
	if c == r.base {
		return false
	}
	_, ok := euCountries[c]
	return ok
}

// IsCrossBorder reports whether a shipment to country needs customs handling.
func (r Region) IsCrossBorder(country string) bool {
	return !r.IsDomestic(country) && !r.IsEU(country)
}

func normalize(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
