package models

// Booking is a user's reservation against one Event, sourced from the
// Bookings sheet. The Event* snapshot fields are denormalized copies taken at
// booking time and are used as a fallback when the referenced event is no
// longer present in the catalog.
type Booking struct {
	ID            string  `json:"id"`                   // Unique booking identifier
	EventID       string  `json:"eventId"`              // May reference a no-longer-present event
	CustomerEmail string  `json:"customerEmail"`
	AmountPaid    string  `json:"amountPaid"`           // Raw text, e.g. "£8.50"
	Status        string  `json:"status"`               // Free text: "Confirmed", "Attended", "Cancelled", ...
	SkillLevel    string  `json:"skillLevel,omitempty"` // Skill level at booking time
	EventName     string  `json:"eventName,omitempty"`
	EventSport    string  `json:"eventSport,omitempty"`
	EventDate     string  `json:"eventDate,omitempty"`  // "YYYY-MM-DD"
	EventTime     string  `json:"eventTime,omitempty"`
	EventLocation string  `json:"eventLocation,omitempty"`
	EventPrice    float64 `json:"eventPrice,omitempty"`
}
