package progression

// Badge names are part of the client contract; do not rename.
const (
	BadgePerfectionist = "Perfectionist"
	BadgeQuizMaster    = "Quiz Master"
	BadgeSpeedDemon    = "Speed Demon"
)

// EvaluateBadges decides which achievement badges apply after an attempt has
// been folded into the progression record. Pure and idempotent: evaluating
// the same state twice never re-adds a badge, and the set only grows.
//
// Inputs are the post-update totals (totalQuizzes, scorePercentage belongs to
// the attempt just applied) plus the attempt's timing against the quiz's
// limit. The newly slice reports only badges absent from current, which is
// the diff the caller surfaces as badges_earned.
func EvaluateBadges(current []string, totalQuizzes, scorePercentage, timeTaken, timeLimit int) (updated, newly []string) {
	updated = append([]string(nil), current...)

	award := func(badge string) {
		for _, have := range updated {
			if have == badge {
				return
			}
		}
		updated = append(updated, badge)
		newly = append(newly, badge)
	}

	if scorePercentage == 100 {
		award(BadgePerfectionist)
	}
	if totalQuizzes >= 10 {
		award(BadgeQuizMaster)
	}
	if float64(timeTaken) < float64(timeLimit)*0.5 {
		award(BadgeSpeedDemon)
	}

	return updated, newly
}
