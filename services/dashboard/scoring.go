package dashboard

import (
	"fmt"
	"regexp"
	"strings"

	"playdash/models"
)

// Scoring weights. These are additive; the no-sport-match penalty is applied
// once, after all factors, as a percentage of the accumulated score.
const (
	sportMatchPoints      = 80
	boroughMatchPoints    = 35
	regionMatchPoints     = 25
	genderBonusPoints     = 30
	motivationMatchPoints = 25
	skillMatchPoints      = 25
	formatMatchPoints     = 20
	dayMatchPoints        = 20
	timeMatchPoints       = 15
	priceBonusPoints      = 10

	// Score multiplier (percent) when the user has preferred sports on file
	// and none of them matched the event.
	noSportMatchPenaltyPct = 40

	budgetPriceCeiling = 10.0
	cheapPriceCeiling  = 5.0
)

// footballExclusions disambiguates "football" from the sports that merely
// contain the word.
var footballExclusions = []string{
	"american football", "australian rules", "aussie rules",
	"flag football", "gridiron",
}

var (
	footballPattern = regexp.MustCompile(`(?i)\b(football|soccer|futsal|\d+[ -]?a[ -]?side)\b`)
	boxingPattern   = regexp.MustCompile(`(?i)\bboxing\b`)
	skillKeywords   = []string{"beginner", "intermediate", "advanced", "all levels", "mixed ability"}
)

// matchesSport reports whether one of the user's preferred sports matches the
// event. Exact category equality always wins; football and boxing carry
// ambiguity rules; every other sport falls back to a word-boundary match
// against category or name.
func matchesSport(sport string, e models.Event) bool {
	s := strings.ToLower(strings.TrimSpace(sport))
	if s == "" {
		return false
	}
	category := strings.ToLower(strings.TrimSpace(e.Category))
	if s == category {
		return true
	}
	text := category + " " + strings.ToLower(e.Name)

	switch s {
	case "football":
		for _, excl := range footballExclusions {
			if strings.Contains(text, excl) {
				return false
			}
		}
		return footballPattern.MatchString(text)
	case "boxing":
		// Children's boxing sessions never count as a boxing match.
		for _, kw := range []string{"kids", "children", "junior", "youth"} {
			if strings.Contains(text, kw) {
				return false
			}
		}
		return boxingPattern.MatchString(text)
	default:
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
		if err != nil {
			return false
		}
		return pattern.MatchString(category) || pattern.MatchString(strings.ToLower(e.Name))
	}
}

// eventBorough resolves the borough used for display and scoring: explicit
// when the sheet provides one, derived from the venue text otherwise.
func eventBorough(e models.Event) string {
	if strings.TrimSpace(e.Borough) != "" {
		return strings.TrimSpace(e.Borough)
	}
	return ExtractBorough(e.Location)
}

// ScoreEvent computes the multi-factor affinity score for one eligible
// candidate, together with a human-readable reason string. Reason fragments
// are appended in evaluation order.
func ScoreEvent(profile models.UserProfile, e models.Event) (int, string) {
	score := 0
	var reasons []string

	// Sport/category match.
	sportMatched := false
	for _, sport := range profile.PreferredSports {
		if matchesSport(sport, e) {
			score += sportMatchPoints
			reasons = append(reasons, "matches your "+strings.ToLower(strings.TrimSpace(sport))+" preference")
			sportMatched = true
			break
		}
	}

	// Geography: exact borough first, regional proximity as a weaker fallback.
	borough := eventBorough(e)
	home := strings.TrimSpace(profile.HomeBorough)
	if home != "" && strings.Contains(strings.ToLower(borough), strings.ToLower(home)) {
		score += boroughMatchPoints
		reasons = append(reasons, "near you in "+borough)
	} else if home != "" {
		if region := BoroughRegion(home); region != "" && region == BoroughRegion(borough) {
			score += regionMatchPoints
			reasons = append(reasons, "in "+region+" London like you")
		}
	}

	// Gender demographic bonus, only on a positive match.
	if _, bonus := genderCompatibility(e.GenderTarget, profile.Gender); bonus {
		score += genderBonusPoints
		reasons = append(reasons, strings.ToLower(strings.TrimSpace(e.GenderTarget))+" session")
	}

	// Motivation overlap.
	if m := firstMotivationMatch(profile.Motivations, e.Motivations); m != "" {
		score += motivationMatchPoints
		reasons = append(reasons, "great for "+strings.ToLower(m))
	}

	// Skill/fitness level.
	if kw := skillLevelMatch(profile.FitnessLevel, e.Name); kw != "" {
		score += skillMatchPoints
		if kw == "all levels" || kw == "mixed ability" {
			reasons = append(reasons, "open to all levels")
		} else {
			reasons = append(reasons, "suits your "+kw+" level")
		}
	}

	// Session format.
	format := strings.TrimSpace(profile.SessionFormat)
	if format != "" && strings.EqualFold(format, strings.TrimSpace(e.SessionFormat)) {
		score += formatMatchPoints
		reasons = append(reasons, strings.ToLower(format)+" format you prefer")
	}

	// Preferred day.
	if weekday := DayOfWeek(e.Date); weekday != "" {
		for _, day := range profile.PreferredDays {
			if strings.EqualFold(strings.TrimSpace(day), weekday) {
				score += dayMatchPoints
				reasons = append(reasons, "on "+weekday+", one of your preferred days")
				break
			}
		}
	}

	// Preferred time of day.
	timeText := strings.ToLower(e.StartTime + " " + e.EndTime)
	for _, bucket := range profile.PreferredTimes {
		b := strings.ToLower(strings.TrimSpace(bucket))
		if b != "" && strings.Contains(timeText, b) {
			score += timeMatchPoints
			reasons = append(reasons, "in the "+b+", your preferred time")
			break
		}
	}

	// Price bonus.
	if e.Price <= budgetPriceCeiling {
		score += priceBonusPoints
		if e.Price <= cheapPriceCeiling {
			reasons = append(reasons, "budget-friendly")
		} else {
			reasons = append(reasons, fmt.Sprintf("good value at £%.2f", e.Price))
		}
	}

	// Dampen everything else when the user told us their sports and this
	// event is none of them.
	if len(profile.PreferredSports) > 0 && !sportMatched {
		score = score * noSportMatchPenaltyPct / 100
	}

	return score, buildReason(reasons)
}

func firstMotivationMatch(userTags, eventTags []string) string {
	for _, u := range userTags {
		for _, e := range eventTags {
			if strings.EqualFold(strings.TrimSpace(u), strings.TrimSpace(e)) {
				return strings.TrimSpace(u)
			}
		}
	}
	return ""
}

// skillLevelMatch returns the matching skill keyword found in the event name,
// or "". "All levels" and "mixed ability" sessions match every user; the
// graded keywords must appear in the user's fitness-level text.
func skillLevelMatch(fitnessLevel, eventName string) string {
	name := strings.ToLower(eventName)
	fitness := strings.ToLower(strings.TrimSpace(fitnessLevel))
	for _, kw := range skillKeywords {
		if !strings.Contains(name, kw) {
			continue
		}
		if kw == "all levels" || kw == "mixed ability" {
			return kw
		}
		if fitness != "" && strings.Contains(fitness, kw) {
			return kw
		}
	}
	return ""
}

// buildReason joins the matched-factor phrases, capitalizing the first
// character, with a generic default when nothing matched.
func buildReason(reasons []string) string {
	if len(reasons) == 0 {
		return "New session in your area"
	}
	joined := strings.Join(reasons, ", ")
	return strings.ToUpper(joined[:1]) + joined[1:]
}
