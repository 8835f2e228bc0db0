package models

// SessionCard is a display-ready projection of a booking joined with its
// event. Upcoming cards carry a relative-date badge; past cards carry the
// booking's status text as an attendance label instead.
type SessionCard struct {
	BookingID  string  `json:"bookingId"`
	Title      string  `json:"title"`
	Sport      string  `json:"sport"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Venue      string  `json:"venue"`
	Borough    string  `json:"borough"`
	Price      float64 `json:"price"`
	Badge      string  `json:"badge,omitempty"`      // "Today", "Tomorrow", "This week", "Next week"
	Difficulty string  `json:"difficulty,omitempty"`
	Attendance string  `json:"attendance,omitempty"` // Past sessions only
}

// RecommendationCard is a display-ready projection of a candidate event the
// user has not yet booked.
type RecommendationCard struct {
	EventID           string  `json:"eventId"`
	SessionID         string  `json:"sessionId,omitempty"`
	Title             string  `json:"title"`
	Sport             string  `json:"sport"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	Venue             string  `json:"venue"`
	Borough           string  `json:"borough"`
	Price             float64 `json:"price"`
	SpotsLeft         int     `json:"spotsLeft"`
	BookingURL        string  `json:"bookingUrl,omitempty"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	Score             int     `json:"score"`
	DisplayPercentage int     `json:"displayPercentage"` // 10-100, curved from Score
	Reason            string  `json:"reason"`            // Human-readable match explanation
}

// UserStats is a derived participation aggregate, recomputed fresh on every
// request.
type UserStats struct {
	TotalBookings   int     `json:"totalBookings"`
	TotalAttended   int     `json:"totalAttended"`
	TotalHours      float64 `json:"totalHours"`              // Rounded to one decimal place
	TotalSpent      float64 `json:"totalSpent"`
	MostPlayedSport string  `json:"mostPlayedSport,omitempty"`
	MostCommonDay   string  `json:"mostCommonDay,omitempty"`
}

// DashboardResponse is the aggregate payload assembled for one user.
type DashboardResponse struct {
	UpcomingSessions  []SessionCard        `json:"upcomingSessions"`
	PastSessions      []SessionCard        `json:"pastSessions"`
	PastSessionsTotal int                  `json:"pastSessionsTotal"` // Pre-pagination count
	Stats             UserStats            `json:"stats"`
	Recommendations   []RecommendationCard `json:"recommendations"`
}
