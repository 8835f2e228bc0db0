package dashboard

import (
	"time"

	"playdash/models"
)

// ComputeDashboard assembles the full dashboard payload: the upcoming/past
// session split, participation stats, and the ranked recommendation list.
// Degenerate inputs (no bookings, no events) produce well-defined empty
// results, never errors.
func (s *DefaultDashboardService) ComputeDashboard(profile models.UserProfile, bookings []models.Booking, allEvents []models.Event, now time.Time, page, pageSize int) models.DashboardResponse {
	eventsByID := make(map[string]models.Event, len(allEvents))
	for _, e := range allEvents {
		eventsByID[e.ID] = e
	}

	bookedEventIDs := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.EventID != "" {
			bookedEventIDs[b.EventID] = true
		}
	}

	upcoming, past, pastTotal := PartitionSessions(bookings, eventsByID, now, page, pageSize)
	stats := ComputeStats(bookings, eventsByID, now)
	candidates := EligibleEvents(allEvents, bookedEventIDs, now, profile)
	recommendations := RankCandidates(profile, candidates)

	return models.DashboardResponse{
		UpcomingSessions:  upcoming,
		PastSessions:      past,
		PastSessionsTotal: pastTotal,
		Stats:             stats,
		Recommendations:   recommendations,
	}
}
