package dashboard

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// boroughRegions maps every known borough (lowercase) to its coarse region.
// The membership lists double as the gazetteer for ExtractBorough.
var boroughRegions = map[string]string{
	"camden":                 "Central",
	"city of london":         "Central",
	"islington":              "Central",
	"kensington and chelsea": "Central",
	"lambeth":                "Central",
	"southwark":              "Central",
	"westminster":            "Central",

	"barking and dagenham": "East",
	"bexley":               "East",
	"greenwich":            "East",
	"hackney":              "East",
	"havering":             "East",
	"lewisham":             "East",
	"newham":               "East",
	"redbridge":            "East",
	"tower hamlets":        "East",
	"waltham forest":       "East",

	"barnet":   "North",
	"enfield":  "North",
	"haringey": "North",

	"bromley":              "South",
	"croydon":              "South",
	"kingston upon thames": "South",
	"merton":               "South",
	"richmond upon thames": "South",
	"sutton":               "South",
	"wandsworth":           "South",

	"brent":                  "West",
	"ealing":                 "West",
	"hammersmith and fulham": "West",
	"harrow":                 "West",
	"hillingdon":             "West",
	"hounslow":               "West",
}

// boroughNames is the gazetteer scan order: stable so that repeated calls on
// the same input always pick the same match.
var boroughNames = sortedBoroughNames()

func sortedBoroughNames() []string {
	names := make([]string, 0, len(boroughRegions))
	for name := range boroughRegions {
		names = append(names, name)
	}
	// Longest first so "kingston upon thames" wins over a shorter contained
	// name; ties broken alphabetically to keep scans deterministic.
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

var priceStripper = strings.NewReplacer("£", "", "$", "", "€", "", ",", "", " ", "")

// ParsePrice converts a raw price cell ("£8.50", "$12", "free") to a float,
// returning 0 for anything unparseable.
func ParsePrice(text string) float64 {
	cleaned := priceStripper.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseList splits a comma-separated cell into trimmed, non-empty tokens.
func ParseList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// dateLayouts are the formats observed in the source sheet.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"2 January 2006",
}

// ParseDate parses a date cell against the known layouts.
// The second return is false when no layout matches.
func ParseDate(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayOfWeek maps a date cell to an English weekday name, or "" when the date
// cannot be parsed.
func DayOfWeek(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return ""
	}
	return t.Weekday().String()
}

var postcodePattern = regexp.MustCompile(`^[A-Za-z]{1,2}\d`)

// trailing segments that never name a borough
var nonBoroughSegments = map[string]bool{
	"uk":             true,
	"united kingdom": true,
	"england":        true,
	"london":         true,
	"greater london": true,
}

// ExtractBorough pulls a borough name out of a free-text venue string. It
// first scans the gazetteer for a substring hit; failing that it falls back
// to the second-to-last meaningful comma segment, then the last segment,
// then the first. Best effort only.
func ExtractBorough(location string) string {
	lower := strings.ToLower(location)
	for _, name := range boroughNames {
		if strings.Contains(lower, name) {
			return canonicalBorough(name)
		}
	}

	segments := []string{}
	for _, s := range strings.Split(location, ",") {
		if t := strings.TrimSpace(s); t != "" {
			segments = append(segments, t)
		}
	}
	if len(segments) == 0 {
		return ""
	}

	meaningful := []string{}
	for _, s := range segments {
		lowered := strings.ToLower(s)
		if len([]rune(s)) <= 2 || postcodePattern.MatchString(s) || nonBoroughSegments[lowered] {
			continue
		}
		meaningful = append(meaningful, s)
	}
	if len(meaningful) >= 2 {
		return meaningful[len(meaningful)-2]
	}
	if len(meaningful) == 1 {
		return meaningful[0]
	}
	if last := segments[len(segments)-1]; last != "" {
		return last
	}
	return segments[0]
}

// canonicalBorough restores title case for a gazetteer key.
func canonicalBorough(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		switch w {
		case "and", "upon", "of":
			continue
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// BoroughRegion classifies a borough name into one of the five coarse
// regions, or "" when the name is unknown. Used only as a weaker proximity
// signal when the exact borough comparison fails.
func BoroughRegion(borough string) string {
	key := strings.ToLower(strings.TrimSpace(borough))
	if key == "" {
		return ""
	}
	if region, ok := boroughRegions[key]; ok {
		return region
	}
	// Tolerate venue-style values like "Hackney Wick" or "London Borough of
	// Sutton" by scanning for a contained gazetteer name.
	for _, name := range boroughNames {
		if strings.Contains(key, name) {
			return boroughRegions[name]
		}
	}
	return ""
}
