package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pariz/gountries"
)

// countryQuery is the read-only ISO-3166 table, initialized once at startup.
var countryQuery = gountries.New()

// ValidateAlpha3 checks that the input is a recognized ISO-3166-1 alpha-3
// country code and returns it uppercased. Country names and two letter codes
// are not accepted here, this is the strict rule used on the API write paths.
func ValidateAlpha3(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if len(code) != 3 {
		return "", fmt.Errorf("invalid ISO-3166-1 alpha-3 country code: %q", input)
	}
	country, err := countryQuery.FindCountryByAlpha(code)
	if err != nil {
		return "", fmt.Errorf("invalid ISO-3166-1 alpha-3 country code: %q", input)
	}
	return country.Alpha3, nil
}

// NormalizeCountry resolves a free-form country value from the CSV into an
// alpha-3 code. Matching runs in a fixed priority order so results are
// reproducible: exact alpha-3, exact alpha-2, the "UK" alternative code for
// GBR, case-insensitive name, then a substring search over country names.
func NormalizeCountry(input string) (string, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return "", fmt.Errorf("empty country value")
	}

	if len(value) == 2 || len(value) == 3 {
		if country, err := countryQuery.FindCountryByAlpha(value); err == nil {
			return country.Alpha3, nil
		}
	}

	// ISO-3166 has no "UK" entry, treat it as an alternative code for GBR
	if strings.EqualFold(value, "UK") {
		return "GBR", nil
	}

	if country, err := countryQuery.FindCountryByName(value); err == nil {
		return country.Alpha3, nil
	}

	// FindAllCountries returns a map, so the candidates are sorted by common
	// name to keep ambiguous fragments resolving to the same country on
	// every run.
	lower := strings.ToLower(value)
	all := countryQuery.FindAllCountries()
	candidates := make([]gountries.Country, 0, len(all))
	for _, country := range all {
		candidates = append(candidates, country)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name.Common < candidates[j].Name.Common
	})
	for _, country := range candidates {
		if strings.Contains(strings.ToLower(country.Name.Common), lower) ||
			strings.Contains(strings.ToLower(country.Name.Official), lower) {
			return country.Alpha3, nil
		}
	}

	return "", fmt.Errorf("unrecognized country: %q", input)
}
