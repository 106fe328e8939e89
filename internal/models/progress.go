package models

import (
	"time"
)

// UserProgress is the authoritative per-user progression record. It is only
// ever written by the progression repository, inside a row-locked
// transaction, so its invariants (level derived from xp, average over
// total_quizzes attempts, badges only growing) hold after every update.
type UserProgress struct {
	UserID        uint        `json:"user_id" gorm:"primaryKey"`
	XP            int         `json:"xp" gorm:"not null;default:0"`
	Level         int         `json:"level" gorm:"not null;default:1"`
	Coins         int         `json:"coins" gorm:"not null;default:0"`
	CurrentStreak int         `json:"current_streak" gorm:"not null;default:0"`
	TotalQuizzes  int         `json:"total_quizzes" gorm:"not null;default:0"`
	AverageScore  float64     `json:"average_score" gorm:"not null;default:0"`
	Badges        StringArray `json:"badges" gorm:"type:jsonb;not null;default:'[]'"`
	LastActivity  *time.Time  `json:"last_activity"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// DefaultProgress returns the record a user starts with.
func DefaultProgress(userID uint) UserProgress {
	return UserProgress{
		UserID: userID,
		Level:  1,
		Badges: StringArray{},
	}
}

// QuizAttempt is an append-only record of one completed submission. Rows are
// never updated or deleted; the id is minted before the insert so ledger
// retries can be keyed to it.
type QuizAttempt struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	QuizID         uint      `json:"quiz_id" gorm:"not null;index"`
	Score          int       `json:"score" gorm:"not null"` // percentage 0-100
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	TimeTaken      int       `json:"time_taken" gorm:"not null"` // seconds
	Answers        IntArray  `json:"answers" gorm:"type:jsonb;not null"`
	XPEarned       int       `json:"xp_earned" gorm:"not null"`
	CreatedAt      time.Time `json:"timestamp"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// ProgressApplication guards the ledger against folding the same attempt in
// twice. One row per applied attempt; the primary key makes a replay a
// conflict instead of a double count.
type ProgressApplication struct {
	AttemptID string    `gorm:"primaryKey;size:36"`
	UserID    uint      `gorm:"not null;index"`
	AppliedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (ProgressApplication) TableName() string {
	return "progress_applications"
}
