package progression

import (
	"math"
	"time"

	"quiz-platform/internal/models"
)

// xpPerLevel sets the level curve: level = floor(xp/1000) + 1.
const xpPerLevel = 1000

// advanceProgress folds one attempt's outcome into a progression record,
// in place. The caller owns serialization (row lock) and persistence; this
// is just the arithmetic, kept separate so invariants are testable without
// a database.
//
// average_score is the incremental arithmetic mean of every score ever
// submitted, rounded to one decimal, half up (math.Round semantics). That
// rounding policy is observable in API responses and tests rely on it.
func advanceProgress(p *models.UserProgress, scorePercentage, xpEarned int, now time.Time) {
	oldTotal := p.TotalQuizzes

	p.XP += xpEarned
	p.Level = p.XP/xpPerLevel + 1
	p.TotalQuizzes = oldTotal + 1
	p.AverageScore = roundToTenth((p.AverageScore*float64(oldTotal) + float64(scorePercentage)) / float64(p.TotalQuizzes))
	p.LastActivity = &now
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
