package dashboard

import (
	"math"
	"strings"
	"time"

	"playdash/models"
)

// defaultSessionMinutes stands in for the duration of a booking whose event
// is no longer in the catalog.
const defaultSessionMinutes = 90

// cancellationKeywords mark a booking as not attended / not spent.
var cancellationKeywords = []string{"cancel", "no-show", "noshow", "no show"}

func isCancelled(status string) bool {
	s := strings.ToLower(status)
	for _, kw := range cancellationKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ComputeStats aggregates a user's participation history. A past booking
// counts as attended unless its status carries a cancellation keyword: the
// sheet's statuses are free text ("Confirmed", "Attended", "Completed", ...)
// and anything ambiguous defaults to attended once the session date has
// passed.
func ComputeStats(bookings []models.Booking, eventsByID map[string]models.Event, now time.Time) models.UserStats {
	today := dayKey(now)
	stats := models.UserStats{TotalBookings: len(bookings)}

	totalMinutes := 0
	sportCounts := map[string]int{}
	dayCounts := map[string]int{}
	var sportOrder, dayOrder []string

	for _, b := range bookings {
		cancelled := isCancelled(b.Status)
		if !cancelled {
			stats.TotalSpent += ParsePrice(b.AmountPaid)
		}

		sport := b.EventSport
		dateText := b.EventDate
		minutes := defaultSessionMinutes
		if e, ok := eventsByID[b.EventID]; ok {
			sport = e.Category
			dateText = e.Date
			if e.DurationMinutes > 0 {
				minutes = e.DurationMinutes
			}
		}

		date, dateOK := ParseDate(dateText)
		if cancelled || !dateOK || !dayKey(date).Before(today) {
			continue
		}

		// Attended.
		stats.TotalAttended++
		totalMinutes += minutes

		if sport = strings.TrimSpace(sport); sport != "" {
			if sportCounts[sport] == 0 {
				sportOrder = append(sportOrder, sport)
			}
			sportCounts[sport]++
		}
		weekday := date.Weekday().String()
		if dayCounts[weekday] == 0 {
			dayOrder = append(dayOrder, weekday)
		}
		dayCounts[weekday]++
	}

	stats.TotalHours = math.Round(float64(totalMinutes)/60*10) / 10
	stats.MostPlayedSport = mostFrequent(sportCounts, sportOrder)
	stats.MostCommonDay = mostFrequent(dayCounts, dayOrder)
	return stats
}

// mostFrequent picks the highest-count key; ties go to the key encountered
// first in input order.
func mostFrequent(counts map[string]int, order []string) string {
	best, bestCount := "", 0
	for _, key := range order {
		if counts[key] > bestCount {
			best, bestCount = key, counts[key]
		}
	}
	return best
}
