package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"playdash/models"
	"playdash/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Tab names in the source spreadsheet.
const (
	tabUsers    = "Users"
	tabSessions = "Sessions"
	tabEvents   = "Events"
	tabBookings = "Bookings"
)

// sheetsStore reads the four-tab spreadsheet through the Sheets API, with a
// best-effort redis cache of raw rows in front of it.
type sheetsStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	cache         *redis.Client
	cacheTTL      time.Duration
}

// NewSheetsStore builds the production store. The credentials file is a
// service-account key with read access to the spreadsheet.
func NewSheetsStore(ctx context.Context, credentialsFile, spreadsheetID string, cache *redis.Client, cacheTTL time.Duration) (Store, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(credentialsFile), option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}
	return &sheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}, nil
}

// fetchTab returns all rows of one tab as strings, first row included.
// Cache hits skip the API entirely; misses back-fill the cache.
func (s *sheetsStore) fetchTab(ctx context.Context, tab string) ([][]string, error) {
	cacheKey := "sheet:" + tab

	if s.cache != nil {
		var rows [][]string
		if utils.CacheGetJSON(ctx, s.cache, cacheKey, &rows) {
			return rows, nil
		}
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read tab %s: %v", ErrDataUnavailable, tab, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = strings.TrimSpace(fmt.Sprint(cell))
		}
		rows[i] = row
	}

	if s.cache != nil {
		utils.CacheSetJSON(ctx, s.cache, cacheKey, rows, s.cacheTTL)
	}
	return rows, nil
}

func (s *sheetsStore) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	sessionRows, err := s.fetchTab(ctx, tabSessions)
	if err != nil {
		return nil, err
	}
	eventRows, err := s.fetchTab(ctx, tabEvents)
	if err != nil {
		return nil, err
	}
	return decodeEvents(eventRows, decodeSessionTemplates(sessionRows)), nil
}

func (s *sheetsStore) GetUserProfile(ctx context.Context, email string) (*models.UserProfile, error) {
	rows, err := s.fetchTab(ctx, tabUsers)
	if err != nil {
		return nil, err
	}
	wanted := normalizeEmail(email)
	for _, profile := range decodeUsers(rows) {
		if normalizeEmail(profile.Email) == wanted {
			return &profile, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (s *sheetsStore) GetUserBookings(ctx context.Context, email string) ([]models.Booking, error) {
	rows, err := s.fetchTab(ctx, tabBookings)
	if err != nil {
		return nil, err
	}
	wanted := normalizeEmail(email)
	var matched []models.Booking
	for _, b := range decodeBookings(rows) {
		if normalizeEmail(b.CustomerEmail) == wanted {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// WarmCache refreshes the events and sessions tabs. Bookings and users churn
// per request anyway, so only the heavyweight catalog tabs get pre-warmed.
func (s *sheetsStore) WarmCache(ctx context.Context) error {
	logger := utils.GetLogger()
	for _, tab := range []string{tabSessions, tabEvents} {
		if s.cache != nil {
			if err := s.cache.Del(ctx, "sheet:"+tab).Err(); err != nil {
				logger.Warn("cache warm: failed to invalidate tab", zap.String("tab", tab), zap.Error(err))
			}
		}
		if _, err := s.fetchTab(ctx, tab); err != nil {
			return err
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
