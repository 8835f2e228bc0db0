package dashboard_test

import (
	"testing"

	"playdash/models"
	"playdash/services/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogEvent(id, date string) models.Event {
	return models.Event{
		ID:        id,
		Name:      "Netball Social",
		Category:  "Netball",
		Date:      date,
		StartTime: "18:30",
		Location:  "Leisure Centre, Croydon",
		Price:     6,
	}
}

func bookingFor(id, eventID string) models.Booking {
	return models.Booking{ID: id, EventID: eventID, Status: "Confirmed"}
}

func catalog(events ...models.Event) map[string]models.Event {
	m := make(map[string]models.Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}

func TestPartitionSessions_SplitAndSort(t *testing.T) {
	events := catalog(
		catalogEvent("past-1", "2026-08-20"),
		catalogEvent("past-2", "2026-08-28"),
		catalogEvent("today", "2026-09-01"),
		catalogEvent("soon", "2026-09-03"),
		catalogEvent("later", "2026-09-20"),
	)
	bookings := []models.Booking{
		bookingFor("b1", "later"),
		bookingFor("b2", "past-1"),
		bookingFor("b3", "soon"),
		bookingFor("b4", "past-2"),
		bookingFor("b5", "today"),
	}

	upcoming, past, pastTotal := dashboard.PartitionSessions(bookings, events, now, 1, 10)

	// Same-day counts as upcoming; upcoming ascending.
	require.Len(t, upcoming, 3)
	assert.Equal(t, []string{"b5", "b3", "b1"}, bookingIDs(upcoming))

	// Past descending, total pre-pagination.
	require.Len(t, past, 2)
	assert.Equal(t, []string{"b4", "b2"}, bookingIDs(past))
	assert.Equal(t, 2, pastTotal)
}

func bookingIDs(cards []models.SessionCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.BookingID
	}
	return ids
}

func TestPartitionSessions_DeduplicatesByBookingID(t *testing.T) {
	events := catalog(catalogEvent("e1", "2026-09-03"))
	bookings := []models.Booking{
		bookingFor("dup", "e1"),
		bookingFor("dup", "e1"),
		bookingFor("other", "e1"),
	}
	upcoming, past, pastTotal := dashboard.PartitionSessions(bookings, events, now, 1, 10)
	assert.Len(t, upcoming, 2)
	assert.Empty(t, past)
	assert.Zero(t, pastTotal)
}

func TestPartitionSessions_Badges(t *testing.T) {
	events := catalog(
		catalogEvent("today", "2026-09-01"),
		catalogEvent("tomorrow", "2026-09-02"),
		catalogEvent("thisweek", "2026-09-07"),
		catalogEvent("nextweek", "2026-09-12"),
		catalogEvent("faraway", "2026-10-01"),
	)
	var bookings []models.Booking
	for _, id := range []string{"today", "tomorrow", "thisweek", "nextweek", "faraway"} {
		bookings = append(bookings, bookingFor("b-"+id, id))
	}

	upcoming, _, _ := dashboard.PartitionSessions(bookings, events, now, 1, 10)
	badges := map[string]string{}
	for _, card := range upcoming {
		badges[card.BookingID] = card.Badge
	}

	assert.Equal(t, "Today", badges["b-today"])
	assert.Equal(t, "Tomorrow", badges["b-tomorrow"])
	assert.Equal(t, "This week", badges["b-thisweek"])
	assert.Equal(t, "Next week", badges["b-nextweek"])
	assert.Equal(t, "", badges["b-faraway"])
}

func TestPartitionSessions_SnapshotFallback(t *testing.T) {
	// Booking references an event no longer in the catalog: the denormalized
	// snapshot fields drive the card.
	b := models.Booking{
		ID:            "orphan",
		EventID:       "gone",
		Status:        "Attended",
		EventName:     "Sunset Yoga",
		EventSport:    "Yoga",
		EventDate:     "2026-08-15",
		EventTime:     "19:00",
		EventLocation: "Victoria Park, Tower Hamlets",
		EventPrice:    5,
	}

	upcoming, past, pastTotal := dashboard.PartitionSessions([]models.Booking{b}, nil, now, 1, 10)
	assert.Empty(t, upcoming)
	require.Len(t, past, 1)
	assert.Equal(t, 1, pastTotal)

	card := past[0]
	assert.Equal(t, "Sunset Yoga", card.Title)
	assert.Equal(t, "Yoga", card.Sport)
	assert.Equal(t, "Tower Hamlets", card.Borough)
	assert.Equal(t, 5.0, card.Price)
	assert.Equal(t, "Attended", card.Attendance)
	assert.Empty(t, card.Badge)
}

func TestPartitionSessions_Pagination(t *testing.T) {
	events := map[string]models.Event{}
	var bookings []models.Booking
	dates := []string{
		"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05",
		"2026-08-06", "2026-08-07",
	}
	for i, d := range dates {
		id := string(rune('a' + i))
		events[id] = catalogEvent(id, d)
		bookings = append(bookings, bookingFor("b-"+id, id))
	}
	catalogByID := events

	_, page1, total := dashboard.PartitionSessions(bookings, catalogByID, now, 1, 3)
	require.Equal(t, 7, total)
	assert.Equal(t, []string{"b-g", "b-f", "b-e"}, bookingIDs(page1))

	_, page3, total := dashboard.PartitionSessions(bookings, catalogByID, now, 3, 3)
	assert.Equal(t, 7, total)
	assert.Equal(t, []string{"b-a"}, bookingIDs(page3))

	// Off-the-end pages are empty but keep the true total.
	_, page9, total := dashboard.PartitionSessions(bookings, catalogByID, now, 9, 3)
	assert.Equal(t, 7, total)
	assert.Empty(t, page9)

	// Invalid pagination falls back to defaults.
	_, pageDefault, _ := dashboard.PartitionSessions(bookings, catalogByID, now, 0, -1)
	assert.Len(t, pageDefault, 7)
}

func TestPartitionSessions_UnparseableDateIsUpcomingWithoutBadge(t *testing.T) {
	e := catalogEvent("odd", "sometime soon")
	upcoming, past, _ := dashboard.PartitionSessions([]models.Booking{bookingFor("b1", "odd")}, catalog(e), now, 1, 10)
	assert.Empty(t, past)
	require.Len(t, upcoming, 1)
	assert.Empty(t, upcoming[0].Badge)
}
