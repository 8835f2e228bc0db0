package dashboard

import (
	"time"

	"playdash/models"
)

// DashboardService computes the personalized activity dashboard for one
// user. It is pure computation over fully-materialized inputs: the current
// time is injected, nothing blocks, and no state survives between calls, so
// concurrent requests are trivially safe.
type DashboardService interface {
	ComputeDashboard(profile models.UserProfile, bookings []models.Booking, allEvents []models.Event, now time.Time, page, pageSize int) models.DashboardResponse
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct{}

// NewDashboardService returns the default implementation.
func NewDashboardService() DashboardService {
	return &DefaultDashboardService{}
}
