package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-platform/internal/models"
)

func makeQuiz(numQuestions, xpReward int) *models.Quiz {
	questions := make([]models.Question, numQuestions)
	for i := range questions {
		questions[i] = models.Question{
			Position:      i,
			Text:          "q",
			Options:       models.StringArray{"a", "b", "c", "d"},
			CorrectOption: i % 4,
		}
	}
	return &models.Quiz{
		ID:        1,
		Title:     "test quiz",
		TimeLimit: 300,
		XPReward:  xpReward,
		Questions: questions,
	}
}

func correctAnswers(quiz *models.Quiz) []int {
	answers := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answers[i] = q.CorrectOption
	}
	return answers
}

func TestScoreSubmission_AllCorrect(t *testing.T) {
	quiz := makeQuiz(5, 100)

	correct, pct, xp, err := ScoreSubmission(quiz, correctAnswers(quiz))

	require.NoError(t, err)
	assert.Equal(t, 5, correct)
	assert.Equal(t, 100, pct)
	assert.Equal(t, 150, xp, "perfect score earns 1.5x the base reward")
}

func TestScoreSubmission_PartiallyCorrect(t *testing.T) {
	quiz := makeQuiz(5, 100)
	answers := correctAnswers(quiz)
	answers[0] = (answers[0] + 1) % 4
	answers[3] = (answers[3] + 1) % 4

	correct, pct, xp, err := ScoreSubmission(quiz, answers)

	require.NoError(t, err)
	assert.Equal(t, 3, correct)
	assert.Equal(t, 60, pct)
	assert.Equal(t, 100, xp, "no bonus below a perfect score")
}

func TestScoreSubmission_TruncatesPercentage(t *testing.T) {
	quiz := makeQuiz(3, 90)
	answers := correctAnswers(quiz)
	answers[2] = (answers[2] + 1) % 4

	_, pct, _, err := ScoreSubmission(quiz, answers)

	require.NoError(t, err)
	assert.Equal(t, 66, pct, "2/3 truncates to 66, never rounds to 67")
}

func TestScoreSubmission_ShortAnswerList(t *testing.T) {
	quiz := makeQuiz(5, 100)
	answers := correctAnswers(quiz)[:2]

	correct, pct, xp, err := ScoreSubmission(quiz, answers)

	require.NoError(t, err)
	assert.Equal(t, 2, correct, "missing answers count as incorrect")
	assert.Equal(t, 40, pct)
	assert.Equal(t, 100, xp)
}

func TestScoreSubmission_EmptyAnswerList(t *testing.T) {
	quiz := makeQuiz(4, 80)

	correct, pct, xp, err := ScoreSubmission(quiz, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, pct)
	assert.Equal(t, 80, xp)
}

func TestScoreSubmission_ExcessAnswersIgnored(t *testing.T) {
	quiz := makeQuiz(3, 60)
	answers := append(correctAnswers(quiz), 0, 1, 2, 3)

	correct, pct, xp, err := ScoreSubmission(quiz, answers)

	require.NoError(t, err)
	assert.Equal(t, 3, correct)
	assert.Equal(t, 100, pct)
	assert.Equal(t, 90, xp)
}

func TestScoreSubmission_ZeroQuestions(t *testing.T) {
	quiz := makeQuiz(0, 100)

	_, _, _, err := ScoreSubmission(quiz, []int{0, 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestScoreSubmission_TruncatedBonus(t *testing.T) {
	quiz := makeQuiz(2, 25)

	_, pct, xp, err := ScoreSubmission(quiz, correctAnswers(quiz))

	require.NoError(t, err)
	assert.Equal(t, 100, pct)
	assert.Equal(t, 37, xp, "25 * 1.5 truncates to 37")
}

// Randomized sweep: whatever the submission looks like, the percentage stays
// in [0,100] and 100 appears only when every question was answered correctly.
func TestScoreSubmission_BoundsHold(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		numQuestions := 1 + rng.Intn(20)
		quiz := makeQuiz(numQuestions, 10+rng.Intn(200))

		answers := make([]int, rng.Intn(numQuestions+5))
		for j := range answers {
			answers[j] = rng.Intn(6)
		}

		correct, pct, xp, err := ScoreSubmission(quiz, answers)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
		assert.LessOrEqual(t, correct, numQuestions)
		if pct == 100 {
			assert.Equal(t, numQuestions, correct)
			assert.Equal(t, int(float64(quiz.XPReward)*1.5), xp)
		} else {
			assert.Equal(t, quiz.XPReward, xp)
		}
	}
}
