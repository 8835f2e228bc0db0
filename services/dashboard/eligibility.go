package dashboard

import (
	"strings"
	"time"

	"playdash/models"
)

// youthKeywords hard-excludes children/youth sessions from adult
// recommendations. Matched case-insensitively against name+category.
var youthKeywords = []string{
	"kids", "children", "child", "youth", "junior",
	"under 16", "under-16", "under16",
	"under 18", "under-18", "under18",
	"under 14", "under-14", "under14",
	"under 12", "under-12", "under12",
	"under 10", "under-10", "under10",
	"primary school", "secondary school",
	"school age", "school-age", "school kids",
}

// isActive interprets the raw active flag from the sheet.
func isActive(flag string) bool {
	v := strings.ToLower(strings.TrimSpace(flag))
	return v == "true" || v == "yes"
}

// isYouthSession reports whether the event is targeted at children.
func isYouthSession(e models.Event) bool {
	text := strings.ToLower(e.Name + " " + e.Category)
	for _, kw := range youthKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// genderCompatibility evaluates an event's gender-target tag against the
// user's gender. It returns whether the user may attend at all, and whether
// the pairing is a positive demographic match (which earns a scoring bonus,
// not just neutral compatibility).
func genderCompatibility(target, userGender string) (compatible, bonus bool) {
	t := strings.ToLower(strings.TrimSpace(target))
	g := strings.ToLower(strings.TrimSpace(userGender))
	if t == "" || g == "" {
		return true, false
	}

	female := g == "female" || g == "f" || g == "woman"
	male := g == "male" || g == "m" || g == "man"

	// Order matters: "women only" contains "men only".
	if strings.Contains(t, "women only") {
		if female {
			return true, true
		}
		if male {
			return false, false
		}
		return true, false
	}
	if t == "men" || t == "men only" || strings.Contains(t, "men only") {
		if male {
			return true, true
		}
		if female {
			return false, false
		}
		return true, false
	}

	// Mixed/open/unrecognized targets are open to everyone.
	return true, false
}

// EligibleEvents filters the full catalog down to the candidate set of
// recommendable events for one user: future-dated, active, not already
// booked, not a children/youth session, and not gender-incompatible.
// now is compared at date-only granularity; same-day events stay eligible.
func EligibleEvents(events []models.Event, bookedEventIDs map[string]bool, now time.Time, profile models.UserProfile) []models.Event {
	today := dayKey(now)
	var candidates []models.Event
	for _, e := range events {
		date, ok := ParseDate(e.Date)
		if !ok || dayKey(date).Before(today) {
			continue
		}
		if !isActive(e.Active) {
			continue
		}
		if bookedEventIDs[e.ID] {
			continue
		}
		if isYouthSession(e) {
			continue
		}
		if compatible, _ := genderCompatibility(e.GenderTarget, profile.Gender); !compatible {
			continue
		}
		candidates = append(candidates, e)
	}
	return candidates
}

// dayKey zeroes the time-of-day component so that all temporal comparisons
// run at date granularity, regardless of source timezone.
func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
