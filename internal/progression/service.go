package progression

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quiz-platform/internal/models"
)

const (
	historyLimit     = 20
	leaderboardLimit = 100
)

// QuizStore is the slice of quiz-content storage the orchestrator needs.
type QuizStore interface {
	GetQuizByID(id uint) (*models.Quiz, error)
}

// ProgressStore owns attempts and the per-user ledger. Implementations must
// serialize ApplyAttempt per user and make it idempotent per attempt id.
type ProgressStore interface {
	CreateAttempt(attempt *models.QuizAttempt) error
	ApplyAttempt(userID uint, attempt *models.QuizAttempt, timeLimit int) (*models.UserProgress, []string, error)
	GetProgress(userID uint) (*models.UserProgress, error)
	GetHistory(userID uint, limit int) ([]models.AttemptHistoryEntry, error)
	GetLeaderboard(limit int) ([]models.LeaderboardEntry, error)
}

// LeaderboardCache is the redis-backed leaderboard snapshot. All calls are
// best-effort: a cache failure never fails a request.
type LeaderboardCache interface {
	GetLeaderboard() ([]models.LeaderboardEntry, error)
	SetLeaderboard(entries []models.LeaderboardEntry) error
	InvalidateLeaderboard() error
}

// EventBroadcaster pushes gamification events to connected clients.
type EventBroadcaster interface {
	BroadcastEvent(eventType string, data interface{})
}

type Service struct {
	quizzes  QuizStore
	progress ProgressStore
	cache    LeaderboardCache
	hub      EventBroadcaster
}

func NewService(quizzes QuizStore, progress ProgressStore, cache LeaderboardCache, hub EventBroadcaster) *Service {
	return &Service{
		quizzes:  quizzes,
		progress: progress,
		cache:    cache,
		hub:      hub,
	}
}

// SubmitQuiz is the single entry point for a quiz submission: load, score,
// record the attempt, fold it into the ledger, report.
//
// The attempt insert happens before the ledger update on purpose. Attempt
// history is the source of truth; a ledger that failed after the insert is a
// recoverable desync (the caller retries and the guard keyed on the attempt
// id makes the retry safe), while a lost attempt is not recoverable.
func (s *Service) SubmitQuiz(userID uint, req models.SubmissionRequest) (*models.SubmissionResult, error) {
	quiz, err := s.quizzes.GetQuizByID(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", req.QuizID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading quiz %d: %v: %w", req.QuizID, err, ErrRetryable)
	}

	correctCount, scorePercentage, xpEarned, err := ScoreSubmission(quiz, req.Answers)
	if err != nil {
		return nil, err
	}

	attempt := &models.QuizAttempt{
		ID:             uuid.NewString(),
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          scorePercentage,
		TotalQuestions: len(quiz.Questions),
		TimeTaken:      req.TimeTaken,
		Answers:        models.IntArray(req.Answers),
		XPEarned:       xpEarned,
	}
	if err := s.progress.CreateAttempt(attempt); err != nil {
		return nil, fmt.Errorf("recording attempt: %v: %w", err, ErrRetryable)
	}

	progress, badgesEarned, err := s.progress.ApplyAttempt(userID, attempt, quiz.TimeLimit)
	if err != nil {
		// Attempt is durably recorded; only the ledger is stale. The retry
		// reapplies by attempt id and cannot double-count.
		return nil, fmt.Errorf("updating progress for attempt %s: %v: %w", attempt.ID, err, ErrRetryable)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateLeaderboard(); err != nil {
			log.Printf("Error invalidating leaderboard cache: %v", err)
		}
	}
	if s.hub != nil {
		s.hub.BroadcastEvent("progress_update", map[string]interface{}{
			"user_id":       userID,
			"quiz_id":       quiz.ID,
			"score":         scorePercentage,
			"xp_earned":     xpEarned,
			"level":         progress.Level,
			"badges_earned": badgesEarned,
		})
	}

	if badgesEarned == nil {
		badgesEarned = []string{}
	}
	return &models.SubmissionResult{
		Score:          scorePercentage,
		CorrectAnswers: correctCount,
		TotalQuestions: len(quiz.Questions),
		XPEarned:       xpEarned,
		BadgesEarned:   badgesEarned,
	}, nil
}

// GetStats returns the user's progression record, synthesizing the default
// on first access.
func (s *Service) GetStats(userID uint) (*models.UserProgress, error) {
	progress, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("loading progress for user %d: %v: %w", userID, err, ErrRetryable)
	}
	return progress, nil
}

// GetHistory returns the user's recent attempts, newest first.
func (s *Service) GetHistory(userID uint) ([]models.AttemptHistoryEntry, error) {
	entries, err := s.progress.GetHistory(userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("loading history for user %d: %v: %w", userID, err, ErrRetryable)
	}
	return entries, nil
}

// GetLeaderboard returns the top users by XP, cache first, store on miss.
func (s *Service) GetLeaderboard() ([]models.LeaderboardEntry, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetLeaderboard(); err == nil && cached != nil {
			return cached, nil
		}
	}

	entries, err := s.progress.GetLeaderboard(leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %v: %w", err, ErrRetryable)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if s.cache != nil {
		if err := s.cache.SetLeaderboard(entries); err != nil {
			log.Printf("Error caching leaderboard: %v", err)
		}
	}
	return entries, nil
}
