package dashboard

import (
	"math"
	"sort"

	"playdash/models"
)

const (
	// minRecommendScore is the quality floor: candidates scoring below it are
	// never shown, whatever else is available.
	minRecommendScore = 60
	// maxRecommendations caps the ranked list.
	maxRecommendations = 5
)

// scoredCandidate pairs an eligible event with its affinity score.
type scoredCandidate struct {
	Event  models.Event
	Score  int
	Reason string
}

// RankCandidates scores, sorts, filters and deduplicates the eligible
// candidate set into the final recommendation list. The sort is stable so
// equal scores preserve catalog order; recurring instances of the same
// session template collapse to the highest-scoring one.
func RankCandidates(profile models.UserProfile, candidates []models.Event) []models.RecommendationCard {
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, e := range candidates {
		score, reason := ScoreEvent(profile, e)
		scored = append(scored, scoredCandidate{Event: e, Score: score, Reason: reason})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	seen := make(map[string]bool)
	cards := make([]models.RecommendationCard, 0, maxRecommendations)
	for _, sc := range scored {
		if sc.Score < minRecommendScore {
			break
		}
		key := sc.Event.TemplateKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		cards = append(cards, buildRecommendationCard(sc))
		if len(cards) == maxRecommendations {
			break
		}
	}
	return cards
}

func buildRecommendationCard(sc scoredCandidate) models.RecommendationCard {
	e := sc.Event
	return models.RecommendationCard{
		EventID:           e.ID,
		SessionID:         e.SessionID,
		Title:             e.Name,
		Sport:             e.Category,
		Date:              e.Date,
		Time:              e.StartTime,
		Venue:             e.Location,
		Borough:           eventBorough(e),
		Price:             e.Price,
		SpotsLeft:         e.SpotsLeft,
		BookingURL:        e.BookingURL,
		ImageURL:          e.ImageURL,
		Score:             sc.Score,
		DisplayPercentage: DisplayPercentage(sc.Score),
		Reason:            sc.Reason,
	}
}

// DisplayPercentage maps a raw affinity score onto a 10-100 user-facing
// confidence percentage via a piecewise-linear curve. The curve compresses
// the long tail of very high scores and stretches the mid range so adjacent
// recommendations stay visually distinct.
func DisplayPercentage(score int) int {
	switch {
	case score >= 120:
		return 80 + scaleBand(score, 120, 260, 20)
	case score >= 90:
		return 60 + scaleBand(score, 90, 119, 19)
	case score >= 60:
		return 40 + scaleBand(score, 60, 89, 19)
	case score >= 40:
		return 25 + scaleBand(score, 40, 59, 14)
	default:
		return 10 + scaleBand(score, 0, 39, 14)
	}
}

// scaleBand maps score within [lo,hi] onto [0,span], clamping the normalized
// fraction to [0,1] and rounding to the nearest integer.
func scaleBand(score, lo, hi, span int) int {
	frac := float64(score-lo) / float64(hi-lo)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(math.Round(frac * float64(span)))
}
