package names

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// CityAliases maps lowercased known spellings and transliterations of a city
// to its canonical native-script name. The table is hand-maintained
// configuration, not derived from the database, and is injected into the
// resolution path so it can be extended without touching resolver logic.
type CityAliases map[string]string

// DefaultCityAliases returns the built-in alias table.
func DefaultCityAliases() CityAliases {
	return CityAliases{
		"москва":           "Москва",
		"moscow":           "Москва",
		"moskva":           "Москва",
		"санкт-петербург":  "Санкт-Петербург",
		"st. petersburg":   "Санкт-Петербург",
		"st petersburg":    "Санкт-Петербург",
		"saint petersburg": "Санкт-Петербург",
		"sankt-peterburg":  "Санкт-Петербург",
		"petersburg":       "Санкт-Петербург",
		"ленинград":        "Санкт-Петербург",
		"новосибирск":      "Новосибирск",
		"novosibirsk":      "Новосибирск",
		"екатеринбург":     "Екатеринбург",
		"ekaterinburg":     "Екатеринбург",
		"yekaterinburg":    "Екатеринбург",
		"нижний новгород":  "Нижний Новгород",
		"nizhny novgorod":  "Нижний Новгород",
		"nizhni novgorod":  "Нижний Новгород",
		"казань":           "Казань",
		"kazan":            "Казань",
		"ростов-на-дону":   "Ростов-на-Дону",
		"rostov-on-don":    "Ростов-на-Дону",
		"rostov-na-donu":   "Ростов-на-Дону",
		"томск":            "Томск",
		"tomsk":            "Томск",
	}
}

// LoadCityAliases reads an alias table from a JSON file and merges it over
// the defaults. An empty path returns the defaults unchanged.
func LoadCityAliases(path string) (CityAliases, error) {
	aliases := DefaultCityAliases()
	if path == "" {
		return aliases, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read city alias table: %w", err)
	}
	var extra map[string]string
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse city alias table: %w", err)
	}
	for alias, canonical := range extra {
		aliases[strings.ToLower(strings.TrimSpace(alias))] = canonical
	}
	return aliases, nil
}

// Canonical resolves a raw city input to its canonical name. Matching is
// case-insensitive with an exact lookup first and a substring fallback over
// the alias keys. Unmapped cities fall back to title-cased input.
func (a CityAliases) Canonical(city string) string {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if canonical, ok := a[lower]; ok {
		return canonical
	}

	// Keys are scanned in sorted order so a partial input matches
	// deterministically.
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(lower, k) || strings.Contains(k, lower) {
			return a[k]
		}
	}
	return TitleCase(trimmed)
}

// CanonicalAll maps every input city through Canonical, keeping the raw
// value alongside the canonical one when they differ, so membership
// predicates still match rows stored under the raw spelling.
func (a CityAliases) CanonicalAll(cities []string) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		canonical := a.Canonical(c)
		if canonical == "" {
			continue
		}
		out = append(out, canonical)
		if trimmed := strings.TrimSpace(c); trimmed != "" && trimmed != canonical {
			out = append(out, trimmed)
		}
	}
	return SortedUnique(out)
}
