package dashboard_test

import (
	"encoding/json"
	"testing"

	"playdash/models"
	"playdash/services/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() []models.Event {
	attended := catalogEvent("past-football", "2026-08-20")
	attended.Category = "Football"
	attended.Name = "Thursday Football"

	upcoming := catalogEvent("upcoming-netball", "2026-09-05")

	recommendable := models.Event{
		ID:        "rec-football",
		SessionID: "tmpl-foot",
		Name:      "Hackney Casual Football",
		Category:  "Football",
		Date:      "2026-09-08",
		StartTime: "18:30",
		Location:  "Hackney Marshes, London E9",
		Price:     8,
		Active:    "true",
	}

	womenOnly := models.Event{
		ID:           "rec-women",
		Name:         "Women Only Football",
		Category:     "Football",
		Date:         "2026-09-09",
		Location:     "Hackney Downs",
		Price:        8,
		Active:       "true",
		GenderTarget: "Women only",
	}

	return []models.Event{attended, upcoming, recommendable, womenOnly}
}

func fixtureBookings() []models.Booking {
	return []models.Booking{
		{ID: "b1", EventID: "past-football", CustomerEmail: "sam@example.com", Status: "Confirmed", AmountPaid: "£6"},
		{ID: "b2", EventID: "upcoming-netball", CustomerEmail: "sam@example.com", Status: "Confirmed", AmountPaid: "£6"},
	}
}

func TestComputeDashboard_Aggregate(t *testing.T) {
	svc := dashboard.NewDashboardService()
	profile := models.UserProfile{
		Email:           "sam@example.com",
		HomeBorough:     "Hackney",
		PreferredSports: []string{"Football"},
		Gender:          "male",
	}

	resp := svc.ComputeDashboard(profile, fixtureBookings(), fixtureCatalog(), now, 1, 10)

	// Partition: one upcoming, one past; every unique booking in exactly one bucket.
	require.Len(t, resp.UpcomingSessions, 1)
	require.Len(t, resp.PastSessions, 1)
	assert.Equal(t, 1, resp.PastSessionsTotal)
	assert.Equal(t, "b2", resp.UpcomingSessions[0].BookingID)
	assert.Equal(t, "b1", resp.PastSessions[0].BookingID)

	// Stats: the past Confirmed booking defaults to attended.
	assert.Equal(t, 2, resp.Stats.TotalBookings)
	assert.Equal(t, 1, resp.Stats.TotalAttended)
	assert.Equal(t, "Football", resp.Stats.MostPlayedSport)

	// Recommendations: booked events never recommended; the women-only
	// session is hard-excluded for a male user regardless of its score.
	require.Len(t, resp.Recommendations, 1)
	rec := resp.Recommendations[0]
	assert.Equal(t, "rec-football", rec.EventID)
	assert.Equal(t, 125, rec.Score) // sport 80 + borough 35 + price 10
	assert.Equal(t, 81, rec.DisplayPercentage)
}

func TestComputeDashboard_Idempotent(t *testing.T) {
	svc := dashboard.NewDashboardService()
	profile := models.UserProfile{
		Email:           "sam@example.com",
		HomeBorough:     "Hackney",
		PreferredSports: []string{"Football"},
		Gender:          "female",
	}

	first := svc.ComputeDashboard(profile, fixtureBookings(), fixtureCatalog(), now, 1, 10)
	second := svc.ComputeDashboard(profile, fixtureBookings(), fixtureCatalog(), now, 1, 10)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeDashboard_DegenerateInputs(t *testing.T) {
	svc := dashboard.NewDashboardService()

	resp := svc.ComputeDashboard(models.UserProfile{}, nil, nil, now, 1, 10)
	assert.Empty(t, resp.UpcomingSessions)
	assert.Empty(t, resp.PastSessions)
	assert.Zero(t, resp.PastSessionsTotal)
	assert.Empty(t, resp.Recommendations)
	assert.Zero(t, resp.Stats.TotalBookings)
}
