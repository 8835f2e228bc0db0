package dashboard_test

import (
	"testing"
	"time"

	"playdash/models"
	"playdash/services/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

func futureEvent(id string) models.Event {
	return models.Event{
		ID:       id,
		Name:     "Casual 5-a-side",
		Category: "Football",
		Date:     "2026-09-10",
		Active:   "true",
	}
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestEligibleEvents_TemporalAndActiveFilters(t *testing.T) {
	past := futureEvent("past")
	past.Date = "2026-08-31"
	sameDay := futureEvent("today")
	sameDay.Date = "2026-09-01"
	inactive := futureEvent("inactive")
	inactive.Active = "false"
	activeYes := futureEvent("yes")
	activeYes.Active = "Yes"
	badDate := futureEvent("baddate")
	badDate.Date = "whenever"

	events := []models.Event{past, sameDay, inactive, activeYes, badDate, futureEvent("future")}
	got := dashboard.EligibleEvents(events, nil, now, models.UserProfile{})

	// Same-day events stay eligible; past, inactive, and unparseable dates drop.
	assert.ElementsMatch(t, []string{"today", "yes", "future"}, eventIDs(got))
}

func TestEligibleEvents_ExcludesBooked(t *testing.T) {
	events := []models.Event{futureEvent("a"), futureEvent("b")}
	got := dashboard.EligibleEvents(events, map[string]bool{"a": true}, now, models.UserProfile{})
	assert.Equal(t, []string{"b"}, eventIDs(got))
}

func TestEligibleEvents_ExcludesYouthSessions(t *testing.T) {
	youth := []models.Event{}
	for i, name := range []string{
		"Kids Football Camp",
		"Junior Tennis",
		"Youth Boxing Club",
		"Under-16 Basketball",
		"Primary School Multi-Sport",
	} {
		e := futureEvent(string(rune('a' + i)))
		e.Name = name
		youth = append(youth, e)
	}
	adult := futureEvent("adult")
	adult.Name = "Adult Casual Football"

	got := dashboard.EligibleEvents(append(youth, adult), nil, now, models.UserProfile{})
	assert.Equal(t, []string{"adult"}, eventIDs(got))
}

func TestEligibleEvents_GenderHardExclusion(t *testing.T) {
	women := futureEvent("women")
	women.GenderTarget = "Women only"
	men := futureEvent("men")
	men.GenderTarget = "Men only"
	mixed := futureEvent("mixed")
	mixed.GenderTarget = "Mixed"
	events := []models.Event{women, men, mixed}

	male := dashboard.EligibleEvents(events, nil, now, models.UserProfile{Gender: "Male"})
	assert.ElementsMatch(t, []string{"men", "mixed"}, eventIDs(male))

	female := dashboard.EligibleEvents(events, nil, now, models.UserProfile{Gender: "female"})
	assert.ElementsMatch(t, []string{"women", "mixed"}, eventIDs(female))

	// Empty gender on either side means no exclusion.
	unknown := dashboard.EligibleEvents(events, nil, now, models.UserProfile{})
	assert.Len(t, unknown, 3)
}

func TestEligibleEvents_DegenerateInputs(t *testing.T) {
	require.Empty(t, dashboard.EligibleEvents(nil, nil, now, models.UserProfile{}))
	require.Empty(t, dashboard.EligibleEvents([]models.Event{}, map[string]bool{}, now, models.UserProfile{}))
}
