package progression

import (
	"fmt"

	"quiz-platform/internal/models"
)

// perfectScoreMultiplier is applied to the quiz XP reward on a 100% score,
// with the result truncated to an integer. There are no partial bonus tiers.
const perfectScoreMultiplier = 1.5

// ScoreSubmission grades a submitted answer sequence against a quiz
// definition. It is pure: no I/O, no clock, no mutation.
//
// Answers are matched positionally against the quiz's questions. Missing
// answers count as incorrect and extra answers are ignored, so the caller
// never has to pre-validate lengths. The percentage is truncated, not
// rounded, and is always computed over the definition's question count.
func ScoreSubmission(quiz *models.Quiz, answers []int) (correctCount, scorePercentage, xpEarned int, err error) {
	totalQuestions := len(quiz.Questions)
	if totalQuestions == 0 {
		return 0, 0, 0, fmt.Errorf("quiz %d has no questions: %w", quiz.ID, ErrDataIntegrity)
	}

	for i, question := range quiz.Questions {
		if i < len(answers) && answers[i] == question.CorrectOption {
			correctCount++
		}
	}

	scorePercentage = correctCount * 100 / totalQuestions

	xpEarned = quiz.XPReward
	if scorePercentage == 100 {
		xpEarned = int(float64(xpEarned) * perfectScoreMultiplier)
	}

	return correctCount, scorePercentage, xpEarned, nil
}
