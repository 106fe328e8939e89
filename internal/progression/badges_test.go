package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBadges_Perfectionist(t *testing.T) {
	updated, newly := EvaluateBadges(nil, 1, 100, 200, 300)

	assert.Contains(t, updated, BadgePerfectionist)
	assert.Contains(t, newly, BadgePerfectionist)
}

func TestEvaluateBadges_QuizMasterAtTen(t *testing.T) {
	_, atNine := EvaluateBadges(nil, 9, 50, 200, 300)
	assert.NotContains(t, atNine, BadgeQuizMaster)

	updated, atTen := EvaluateBadges(nil, 10, 50, 200, 300)
	assert.Contains(t, updated, BadgeQuizMaster)
	assert.Contains(t, atTen, BadgeQuizMaster)

	_, atEleven := EvaluateBadges([]string{BadgeQuizMaster}, 11, 50, 200, 300)
	assert.Empty(t, atEleven, "already-held badges are never re-reported")
}

func TestEvaluateBadges_SpeedDemonBoundary(t *testing.T) {
	// Strictly under half the limit earns it; exactly half does not.
	_, under := EvaluateBadges(nil, 1, 50, 149, 300)
	assert.Contains(t, under, BadgeSpeedDemon)

	_, atHalf := EvaluateBadges(nil, 1, 50, 150, 300)
	assert.NotContains(t, atHalf, BadgeSpeedDemon)
}

func TestEvaluateBadges_MultipleAtOnce(t *testing.T) {
	updated, newly := EvaluateBadges(nil, 10, 100, 100, 300)

	assert.ElementsMatch(t, []string{BadgePerfectionist, BadgeQuizMaster, BadgeSpeedDemon}, updated)
	assert.ElementsMatch(t, []string{BadgePerfectionist, BadgeQuizMaster, BadgeSpeedDemon}, newly)
}

func TestEvaluateBadges_Idempotent(t *testing.T) {
	first, _ := EvaluateBadges(nil, 10, 100, 100, 300)
	second, newly := EvaluateBadges(first, 11, 100, 100, 300)

	assert.Equal(t, first, second)
	assert.Empty(t, newly)
}

func TestEvaluateBadges_NeverShrinks(t *testing.T) {
	current := []string{BadgePerfectionist, BadgeSpeedDemon}

	updated, newly := EvaluateBadges(current, 3, 40, 290, 300)

	assert.ElementsMatch(t, current, updated, "a bad attempt never removes badges")
	assert.Empty(t, newly)
}

func TestEvaluateBadges_DoesNotMutateInput(t *testing.T) {
	current := []string{BadgePerfectionist}

	EvaluateBadges(current, 10, 100, 100, 300)

	assert.Equal(t, []string{BadgePerfectionist}, current)
}
