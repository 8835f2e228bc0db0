package models

// UserProfile is a user's identity and preference record, sourced from the
// Users sheet. It is an immutable snapshot for the duration of one request.
type UserProfile struct {
	Email           string   `json:"email"`            // Unique key, matched case/whitespace-insensitively
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	HomeBorough     string   `json:"homeBorough"`      // Free text, e.g. "Hackney"
	PreferredSports []string `json:"preferredSports"`  // Ordered, may contain duplicates
	PreferredDays   []string `json:"preferredDays"`    // Weekday names
	PreferredTimes  []string `json:"preferredTimes"`   // Coarse buckets: "Morning", "Afternoon", "Evening"
	FitnessLevel    string   `json:"fitnessLevel"`     // Free text, e.g. "Beginner"
	Motivations     []string `json:"motivations"`      // Free-text tags, e.g. "Social", "Fitness"
	SessionFormat   string   `json:"sessionFormat"`    // Free text, e.g. "Drop-in"
	Gender          string   `json:"gender,omitempty"` // Free text, may be empty
}

// FullName joins the name parts for display.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
