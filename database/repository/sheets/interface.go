package sheets

import (
	"context"
	"errors"

	"playdash/models"
)

// ErrDataUnavailable wraps any failure to read the source spreadsheet.
var ErrDataUnavailable = errors.New("source data unavailable")

// ErrProfileNotFound is returned when no user row matches the given email.
var ErrProfileNotFound = errors.New("user profile not found")

// Store supplies the typed domain records the dashboard core consumes. The
// core never talks to the spreadsheet or the cache directly; implementations
// of this interface own all fetching, header mapping, and row caching.
type Store interface {
	// GetAllEvents returns the full catalog of scheduled event instances,
	// with template-level fields merged in from the Sessions tab.
	GetAllEvents(ctx context.Context) ([]models.Event, error)

	// GetUserProfile matches the email case/whitespace-insensitively.
	// Returns ErrProfileNotFound when no row matches.
	GetUserProfile(ctx context.Context, email string) (*models.UserProfile, error)

	// GetUserBookings returns all bookings whose customer email matches,
	// case/whitespace-insensitively. A user with no bookings gets an empty
	// list, not an error.
	GetUserBookings(ctx context.Context, email string) ([]models.Booking, error)

	// WarmCache re-fetches the heavyweight tabs so user requests hit warm
	// cache. Called by the background warmer, never on the request path.
	WarmCache(ctx context.Context) error
}
