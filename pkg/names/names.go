package names

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Variant is one raw name variant of an entity, tagged with its language
// priority. Lower priority ranks win (native-language variants come before
// transliterations).
type Variant struct {
	Name         string
	LangPriority int
}

// SelectCanonical picks the display label among the raw variants of one
// entity: lowest language priority first, then the longest string, then
// lexicographic order. Returns "" for an empty variant set.
func SelectCanonical(variants []Variant) string {
	if len(variants) == 0 {
		return ""
	}
	best := variants[0]
	for _, v := range variants[1:] {
		if v.LangPriority != best.LangPriority {
			if v.LangPriority < best.LangPriority {
				best = v
			}
			continue
		}
		if len(v.Name) != len(best.Name) {
			if len(v.Name) > len(best.Name) {
				best = v
			}
			continue
		}
		if v.Name < best.Name {
			best = v
		}
	}
	return best.Name
}

// FormatInitials normalizes a free-text initials field to the compact
// "A.B." form: the input is split on whitespace and periods, the first
// letter of every token is kept upper-cased and a period appended.
func FormatInitials(raw string) string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '.' || r == ' ' || r == '\t'
	})
	var b strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)
		if len(r) == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteByte('.')
	}
	return b.String()
}

// DisplayName composes the author display label as title-cased surname +
// space + formatted initials. Either part may be empty. The parts are
// cased separately: cases.Title treats a period between letters as
// word-internal, so running the composed string through it would leave
// all but the first initial lowercase.
func DisplayName(lastname, initials string) string {
	lastname = titleCaser.String(strings.TrimSpace(lastname))
	initials = FormatInitials(initials)
	if initials == "" {
		return lastname
	}
	if lastname == "" {
		return initials
	}
	return lastname + " " + initials
}

// TitleCase upper-cases the first letter of every word, the INITCAP
// equivalent used for display labels.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// NameKey returns a case- and punctuation-insensitive key used to
// deduplicate author names that differ only in initials formatting.
func NameKey(lastname, initials string) string {
	ln := strings.ToLower(strings.TrimSpace(lastname))
	in := strings.ToLower(strings.TrimSpace(initials))
	in = strings.NewReplacer(".", "", "-", "").Replace(in)
	return strings.TrimSpace(ln + " " + in)
}

// SortedUnique returns the sorted distinct values of the input.
func SortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
