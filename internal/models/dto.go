package models

import "time"

// QuestionDTO is the client-safe view of a question: prompt and options,
// never the correct index.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (q Question) ToDTO() QuestionDTO {
	return QuestionDTO{
		Question: q.Text,
		Options:  q.Options,
	}
}

// QuizDetailDTO is a quiz with its questions sanitized for takers.
type QuizDetailDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	QuizType    string        `json:"quiz_type"`
	TimeLimit   int           `json:"time_limit"`
	XPReward    int           `json:"xp_reward"`
	Difficulty  string        `json:"difficulty"`
	Questions   []QuestionDTO `json:"questions"`
}

func (q Quiz) ToDetailDTO() QuizDetailDTO {
	questions := make([]QuestionDTO, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = question.ToDTO()
	}
	return QuizDetailDTO{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		QuizType:    q.QuizType,
		TimeLimit:   q.TimeLimit,
		XPReward:    q.XPReward,
		Difficulty:  q.Difficulty,
		Questions:   questions,
	}
}

// QuizSummary is the listing view; question content stays server-side.
type QuizSummary struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuizType      string `json:"quiz_type"`
	TimeLimit     int    `json:"time_limit"`
	XPReward      int    `json:"xp_reward"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

// SubmissionRequest is the transient input consumed by the orchestrator.
type SubmissionRequest struct {
	QuizID    uint  `json:"quiz_id"`
	Answers   []int `json:"answers"`
	TimeTaken int   `json:"time_taken"`
}

// SubmissionResult is the single success payload returned to clients.
type SubmissionResult struct {
	Score          int      `json:"score"`
	CorrectAnswers int      `json:"correct_answers"`
	TotalQuestions int      `json:"total_questions"`
	XPEarned       int      `json:"xp_earned"`
	BadgesEarned   []string `json:"badges_earned"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Email    string `json:"email"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
}

// AttemptHistoryEntry annotates an attempt with its quiz title for the
// history endpoint.
type AttemptHistoryEntry struct {
	ID             string    `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TimeTaken      int       `json:"time_taken"`
	XPEarned       int       `json:"xp_earned"`
	CreatedAt      time.Time `json:"timestamp"`
}
