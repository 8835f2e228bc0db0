package dashboard

import (
	"sort"
	"time"

	"playdash/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// resolvedSession is a booking joined with its event, or with the booking's
// own denormalized snapshot when the event is gone from the catalog.
type resolvedSession struct {
	card   models.SessionCard
	date   time.Time
	dateOK bool
}

// PartitionSessions splits a user's bookings into upcoming and past session
// cards relative to now (date granularity). Bookings are deduplicated by
// booking id, upcoming sorted soonest-first, past sorted most-recent-first,
// and only the past list is paginated. The third return is the total past
// count before pagination.
func PartitionSessions(bookings []models.Booking, eventsByID map[string]models.Event, now time.Time, page, pageSize int) ([]models.SessionCard, []models.SessionCard, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	today := dayKey(now)

	seen := make(map[string]bool)
	var upcoming, past []resolvedSession
	for _, b := range bookings {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true

		rs := resolveSession(b, eventsByID)
		if rs.dateOK && rs.date.Before(today) {
			rs.card.Attendance = b.Status
			past = append(past, rs)
		} else {
			rs.card.Badge = relativeBadge(rs, today)
			upcoming = append(upcoming, rs)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].date.Before(upcoming[j].date)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].date.After(past[j].date)
	})

	pastTotal := len(past)
	start := (page - 1) * pageSize
	if start > pastTotal {
		start = pastTotal
	}
	end := start + pageSize
	if end > pastTotal {
		end = pastTotal
	}

	return cardsOf(upcoming), cardsOf(past[start:end]), pastTotal
}

// resolveSession builds the display card for one booking, preferring the
// live event and falling back to the booking's snapshot fields.
func resolveSession(b models.Booking, eventsByID map[string]models.Event) resolvedSession {
	card := models.SessionCard{
		BookingID:  b.ID,
		Difficulty: b.SkillLevel,
	}

	if e, ok := eventsByID[b.EventID]; ok {
		card.Title = e.Name
		card.Sport = e.Category
		card.Date = e.Date
		card.Time = e.StartTime
		card.Venue = e.Location
		card.Borough = eventBorough(e)
		card.Price = e.Price
	} else {
		card.Title = b.EventName
		card.Sport = b.EventSport
		card.Date = b.EventDate
		card.Time = b.EventTime
		card.Venue = b.EventLocation
		card.Borough = ExtractBorough(b.EventLocation)
		card.Price = b.EventPrice
	}

	date, ok := ParseDate(card.Date)
	return resolvedSession{card: card, date: dayKey(date), dateOK: ok}
}

// relativeBadge labels an upcoming session by how far out it is. Sessions
// more than two weeks away, and sessions whose date failed to parse, carry
// no badge.
func relativeBadge(rs resolvedSession, today time.Time) string {
	if !rs.dateOK {
		return ""
	}
	days := int(rs.date.Sub(today).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days >= 2 && days <= 7:
		return "This week"
	case days >= 8 && days <= 14:
		return "Next week"
	default:
		return ""
	}
}

func cardsOf(sessions []resolvedSession) []models.SessionCard {
	cards := make([]models.SessionCard, len(sessions))
	for i, rs := range sessions {
		cards[i] = rs.card
	}
	return cards
}
