package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"playdash/database/repository/sheets"
	"playdash/services/dashboard"
	"playdash/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the personalized activity dashboard.
type DashboardHandler struct {
	Store   sheets.Store
	Service dashboard.DashboardService
	Logger  *zap.Logger
}

func NewDashboardHandler(store sheets.Store, svc dashboard.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Store: store, Service: svc, Logger: logger}
}

// GetDashboard handles GET /api/dashboard?email=&page=&pageSize=.
// It loads {profile, bookings, events} from the store, injects the current
// time, and hands everything to the pure dashboard computation.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing email", "the email query parameter is required")
		return
	}

	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("pageSize"), 10)

	ctx := c.Request.Context()

	profile, err := h.Store.GetUserProfile(ctx, email)
	if err != nil {
		if errors.Is(err, sheets.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Profile not found", "no user registered with that email")
			return
		}
		h.Logger.Error("Failed to load user profile", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Source data unavailable", "could not read user profiles")
		return
	}

	bookings, err := h.Store.GetUserBookings(ctx, email)
	if err != nil {
		h.Logger.Error("Failed to load bookings", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Source data unavailable", "could not read bookings")
		return
	}

	events, err := h.Store.GetAllEvents(ctx)
	if err != nil {
		h.Logger.Error("Failed to load event catalog", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Source data unavailable", "could not read events")
		return
	}

	resp := h.Service.ComputeDashboard(*profile, bookings, events, time.Now(), page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": profile.Email,
			"name":  profile.FullName(),
		},
		"dashboard": resp,
	})
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
