package models

// Event is one scheduled, bookable session instance, sourced from the Events
// sheet (joined against the Sessions sheet for template-level fields).
type Event struct {
	ID              string   `json:"id"`                        // Unique event identifier
	SessionID       string   `json:"sessionId,omitempty"`       // Template id grouping recurring instances; may be empty
	Name            string   `json:"name"`                      // Display name
	Category        string   `json:"category"`                  // Sport/category, e.g. "Football"
	Date            string   `json:"date"`                      // "YYYY-MM-DD"
	StartTime       string   `json:"startTime"`                 // e.g. "18:30" or free text like "6:30 PM"
	EndTime         string   `json:"endTime"`
	Location        string   `json:"location"`                  // Free-text venue string
	Borough         string   `json:"borough,omitempty"`         // Explicit borough; derived from Location when empty
	Price           float64  `json:"price"`                     // Non-negative currency amount
	SpotsLeft       int      `json:"spotsLeft"`                 // Remaining capacity
	DurationMinutes int      `json:"durationMinutes"`
	Active          string   `json:"active"`                    // Raw flag text; "true"/"yes" means bookable
	GenderTarget    string   `json:"genderTarget,omitempty"`    // Free text: "", "Mixed", "Women only", "Men"
	Motivations     []string `json:"motivations,omitempty"`     // Tags, e.g. "Social"
	SessionFormat   string   `json:"sessionFormat,omitempty"`
	BookingURL      string   `json:"bookingUrl,omitempty"`
	AttendeesURL    string   `json:"attendeesUrl,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// TemplateKey returns the key used to collapse recurring instances of the
// same session, falling back to the event id when no template id exists.
func (e Event) TemplateKey() string {
	if e.SessionID != "" {
		return e.SessionID
	}
	return e.ID
}
