package dashboard_test

import (
	"testing"

	"playdash/models"
	"playdash/services/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayPercentage_Boundaries(t *testing.T) {
	assert.Equal(t, 80, dashboard.DisplayPercentage(120))
	assert.Equal(t, 81, dashboard.DisplayPercentage(125))
	assert.Equal(t, 100, dashboard.DisplayPercentage(260))
	assert.Equal(t, 100, dashboard.DisplayPercentage(400))
	assert.Equal(t, 79, dashboard.DisplayPercentage(119))
	assert.Equal(t, 60, dashboard.DisplayPercentage(90))
	assert.Equal(t, 59, dashboard.DisplayPercentage(89))
	assert.Equal(t, 40, dashboard.DisplayPercentage(60))
	assert.Equal(t, 39, dashboard.DisplayPercentage(59))
	assert.Equal(t, 25, dashboard.DisplayPercentage(40))
	assert.Equal(t, 24, dashboard.DisplayPercentage(39))
	assert.Equal(t, 10, dashboard.DisplayPercentage(0))
}

func TestDisplayPercentage_NonDecreasing(t *testing.T) {
	prev := dashboard.DisplayPercentage(0)
	for score := 1; score <= 300; score++ {
		cur := dashboard.DisplayPercentage(score)
		require.GreaterOrEqual(t, cur, prev, "regression at score %d", score)
		prev = cur
	}
}

// rankerProfile earns exactly the sport bonus (80) per matching event, so
// scores are easy to steer from event fields.
var rankerProfile = models.UserProfile{PreferredSports: []string{"Badminton"}}

func rankerEvent(id, sessionID string, price float64) models.Event {
	return models.Event{
		ID:        id,
		SessionID: sessionID,
		Name:      "Badminton Social " + id,
		Category:  "Badminton",
		Date:      "2026-09-10",
		Price:     price,
	}
}

func TestRankCandidates_QualityFloor(t *testing.T) {
	// A non-matching event scores well below 60 and must never appear.
	weak := models.Event{ID: "weak", Name: "Chess Club", Category: "Chess", Date: "2026-09-10", Price: 3}
	strong := rankerEvent("strong", "", 50)

	cards := dashboard.RankCandidates(rankerProfile, []models.Event{weak, strong})
	require.Len(t, cards, 1)
	assert.Equal(t, "strong", cards[0].EventID)
	for _, card := range cards {
		assert.GreaterOrEqual(t, card.Score, 60)
	}
}

func TestRankCandidates_SortAndStableTies(t *testing.T) {
	// a and b tie on score; input order must hold. c outranks both via the
	// price bonus.
	a := rankerEvent("a", "", 50)
	b := rankerEvent("b", "", 50)
	c := rankerEvent("c", "", 4)

	cards := dashboard.RankCandidates(rankerProfile, []models.Event{a, b, c})
	require.Len(t, cards, 3)
	assert.Equal(t, "c", cards[0].EventID)
	assert.Equal(t, "a", cards[1].EventID)
	assert.Equal(t, "b", cards[2].EventID)
}

func TestRankCandidates_DedupeByTemplate(t *testing.T) {
	// Two instances of the same weekly session collapse to the better one.
	tue := rankerEvent("tue", "tmpl-1", 4)
	nextTue := rankerEvent("next-tue", "tmpl-1", 50)
	other := rankerEvent("other", "tmpl-2", 50)

	cards := dashboard.RankCandidates(rankerProfile, []models.Event{nextTue, tue, other})
	require.Len(t, cards, 2)
	assert.Equal(t, "tue", cards[0].EventID)
	assert.Equal(t, "other", cards[1].EventID)
}

func TestRankCandidates_CapsAtFive(t *testing.T) {
	var events []models.Event
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		events = append(events, rankerEvent(id, "", 50))
	}
	cards := dashboard.RankCandidates(rankerProfile, events)
	assert.Len(t, cards, 5)
}

func TestRankCandidates_CardFields(t *testing.T) {
	e := rankerEvent("e1", "s1", 4)
	e.Location = "Sports Hall, Hackney"
	cards := dashboard.RankCandidates(rankerProfile, []models.Event{e})
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, 90, card.Score) // sport 80 + price 10
	assert.Equal(t, 60, card.DisplayPercentage)
	assert.Equal(t, "Hackney", card.Borough)
	assert.NotEmpty(t, card.Reason)
}

func TestRankCandidates_Empty(t *testing.T) {
	assert.Empty(t, dashboard.RankCandidates(rankerProfile, nil))
}
