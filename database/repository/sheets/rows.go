package sheets

import (
	"strconv"
	"strings"

	"playdash/models"
)

var headerReplacer = strings.NewReplacer(" ", "", "_", "", "-", "")

// normalizeHeader collapses a header cell to a comparable key: lowercase with
// spaces, underscores and hyphens stripped, so "Event ID", "event_id" and
// "EventId" all land on "eventid".
func normalizeHeader(h string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// rowReader resolves cell values by header alias against one data row.
type rowReader struct {
	idx map[string]int
	row []string
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, exists := idx[key]; !exists && key != "" {
			idx[key] = i
		}
	}
	return idx
}

// get returns the first non-empty cell among the aliased columns.
func (r rowReader) get(aliases ...string) string {
	for _, alias := range aliases {
		if i, ok := r.idx[alias]; ok && i < len(r.row) && r.row[i] != "" {
			return r.row[i]
		}
	}
	return ""
}

func splitList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var priceReplacer = strings.NewReplacer("£", "", "$", "", "€", "", ",", "", " ", "")

func parsePriceCell(text string) float64 {
	cleaned := priceReplacer.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseIntCell(text string) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return v
}

// forEachRow walks the data rows (everything after the header) of one tab.
func forEachRow(rows [][]string, fn func(r rowReader)) {
	if len(rows) < 2 {
		return
	}
	idx := headerIndex(rows[0])
	for _, row := range rows[1:] {
		fn(rowReader{idx: idx, row: row})
	}
}

func decodeUsers(rows [][]string) []models.UserProfile {
	var users []models.UserProfile
	forEachRow(rows, func(r rowReader) {
		email := r.get("email", "emailaddress", "useremail")
		if email == "" {
			return
		}
		users = append(users, models.UserProfile{
			Email:           email,
			FirstName:       r.get("firstname", "name"),
			LastName:        r.get("lastname", "surname"),
			HomeBorough:     r.get("homeborough", "borough"),
			PreferredSports: splitList(r.get("preferredsports", "sports", "favouritesports")),
			PreferredDays:   splitList(r.get("preferreddays", "days")),
			PreferredTimes:  splitList(r.get("preferredtimes", "times", "timesofday")),
			FitnessLevel:    r.get("fitnesslevel", "skilllevel", "level"),
			Motivations:     splitList(r.get("motivations", "motivation", "goals")),
			SessionFormat:   r.get("sessionformat", "format", "preferredformat"),
			Gender:          r.get("gender"),
		})
	})
	return users
}

// sessionTemplate carries the template-level fields of the Sessions tab,
// merged into event instances with blank cells.
type sessionTemplate struct {
	Name            string
	Category        string
	GenderTarget    string
	SessionFormat   string
	Motivations     []string
	DurationMinutes int
}

func decodeSessionTemplates(rows [][]string) map[string]sessionTemplate {
	templates := make(map[string]sessionTemplate)
	forEachRow(rows, func(r rowReader) {
		id := r.get("sessionid", "id")
		if id == "" {
			return
		}
		templates[id] = sessionTemplate{
			Name:            r.get("sessionname", "name", "title"),
			Category:        r.get("category", "sport", "activity"),
			GenderTarget:    r.get("gendertarget", "gender", "whoisitfor"),
			SessionFormat:   r.get("sessionformat", "format"),
			Motivations:     splitList(r.get("motivations", "motivation", "tags")),
			DurationMinutes: parseIntCell(r.get("durationminutes", "duration")),
		}
	})
	return templates
}

func decodeEvents(rows [][]string, templates map[string]sessionTemplate) []models.Event {
	var events []models.Event
	forEachRow(rows, func(r rowReader) {
		id := r.get("eventid", "id")
		if id == "" {
			return
		}
		e := models.Event{
			ID:              id,
			SessionID:       r.get("sessionid", "templateid"),
			Name:            r.get("eventname", "name", "title"),
			Category:        r.get("category", "sport", "activity"),
			Date:            r.get("date", "eventdate"),
			StartTime:       r.get("starttime", "time"),
			EndTime:         r.get("endtime"),
			Location:        r.get("location", "venue", "address"),
			Borough:         r.get("borough"),
			Price:           parsePriceCell(r.get("price", "cost")),
			SpotsLeft:       parseIntCell(r.get("spotsleft", "spacesleft", "capacity")),
			DurationMinutes: parseIntCell(r.get("durationminutes", "duration")),
			Active:          r.get("active", "isactive", "live"),
			GenderTarget:    r.get("gendertarget", "gender", "whoisitfor"),
			Motivations:     splitList(r.get("motivations", "motivation", "tags")),
			SessionFormat:   r.get("sessionformat", "format"),
			BookingURL:      r.get("bookingurl", "bookinglink"),
			AttendeesURL:    r.get("attendeesurl", "attendeeslink"),
			ImageURL:        r.get("imageurl", "image"),
		}
		if t, ok := templates[e.SessionID]; ok {
			mergeTemplate(&e, t)
		}
		events = append(events, e)
	})
	return events
}

// mergeTemplate fills event fields the instance row left blank.
func mergeTemplate(e *models.Event, t sessionTemplate) {
	if e.Name == "" {
		e.Name = t.Name
	}
	if e.Category == "" {
		e.Category = t.Category
	}
	if e.GenderTarget == "" {
		e.GenderTarget = t.GenderTarget
	}
	if e.SessionFormat == "" {
		e.SessionFormat = t.SessionFormat
	}
	if len(e.Motivations) == 0 {
		e.Motivations = t.Motivations
	}
	if e.DurationMinutes == 0 {
		e.DurationMinutes = t.DurationMinutes
	}
}

func decodeBookings(rows [][]string) []models.Booking {
	var bookings []models.Booking
	forEachRow(rows, func(r rowReader) {
		id := r.get("bookingid", "id")
		if id == "" {
			return
		}
		bookings = append(bookings, models.Booking{
			ID:            id,
			EventID:       r.get("eventid"),
			CustomerEmail: r.get("customeremail", "email"),
			AmountPaid:    r.get("amountpaid", "amount", "paid"),
			Status:        r.get("status", "bookingstatus"),
			SkillLevel:    r.get("skilllevel", "level"),
			EventName:     r.get("eventname", "sessionname"),
			EventSport:    r.get("eventsport", "sport", "category"),
			EventDate:     r.get("eventdate", "date"),
			EventTime:     r.get("eventtime", "time"),
			EventLocation: r.get("eventlocation", "location", "venue"),
			EventPrice:    parsePriceCell(r.get("eventprice")),
		})
	})
	return bookings
}
