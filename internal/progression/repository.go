package progression

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quiz-platform/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAttempt appends one attempt record. Attempts are immutable history;
// nothing in the codebase updates or deletes this table.
func (r *Repository) CreateAttempt(attempt *models.QuizAttempt) error {
	if err := r.db.Create(attempt).Error; err != nil {
		log.Printf("Error saving attempt %s for user %d: %v", attempt.ID, attempt.UserID, err)
		return err
	}
	return nil
}

// ApplyAttempt folds an attempt into the user's progression record as a
// single transaction: lock the row, check the idempotency guard, recompute
// the totals, evaluate badges, write everything in one UPDATE.
//
// The row lock (SELECT ... FOR UPDATE) serializes concurrent submissions by
// the same user; different users lock different rows and never contend. The
// progress_applications insert turns a replay of an already-applied attempt
// into a no-op that returns the current record unchanged, so retrying after
// a partial failure can never double-count.
func (r *Repository) ApplyAttempt(userID uint, attempt *models.QuizAttempt, timeLimit int) (*models.UserProgress, []string, error) {
	var progress models.UserProgress
	var earned []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First-ever activity: synthesize the default record. The
			// conflict clause covers the race where two first submissions
			// arrive together; the re-read below takes the lock either way.
			seed := models.DefaultProgress(userID)
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
				return err
			}
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ?", userID).
				First(&progress).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		guard := models.ProgressApplication{AttemptID: attempt.ID, UserID: userID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&guard)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Attempt already folded in; report no changes.
			earned = nil
			return nil
		}

		advanceProgress(&progress, attempt.Score, attempt.XPEarned, time.Now().UTC())

		updated, newly := EvaluateBadges(progress.Badges, progress.TotalQuizzes, attempt.Score, attempt.TimeTaken, timeLimit)
		progress.Badges = updated
		earned = newly

		return tx.Model(&models.UserProgress{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"xp":            progress.XP,
				"level":         progress.Level,
				"total_quizzes": progress.TotalQuizzes,
				"average_score": progress.AverageScore,
				"badges":        progress.Badges,
				"last_activity": progress.LastActivity,
			}).Error
	})
	if err != nil {
		log.Printf("Error applying attempt %s for user %d: %v", attempt.ID, userID, err)
		return nil, nil, err
	}

	return &progress, earned, nil
}

// GetProgress returns the user's progression record, creating the default
// one on first access.
func (r *Repository) GetProgress(userID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.db.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.DefaultProgress(userID)
		res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&progress)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			// A concurrent writer created (and possibly advanced) the row
			// between the miss and the insert; the stored record wins.
			if err := r.db.Where("user_id = ?", userID).First(&progress).Error; err != nil {
				return nil, err
			}
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// GetHistory returns the user's most recent attempts, newest first,
// annotated with quiz titles.
func (r *Repository) GetHistory(userID uint, limit int) ([]models.AttemptHistoryEntry, error) {
	var entries []models.AttemptHistoryEntry
	err := r.db.Raw(`
		SELECT a.id, a.quiz_id, q.title AS quiz_title, a.score,
		       a.total_questions, a.time_taken, a.xp_earned, a.created_at
		FROM quiz_attempts a
		LEFT JOIN quizzes q ON q.id = a.quiz_id
		WHERE a.user_id = ?
		ORDER BY a.created_at DESC
		LIMIT ?
	`, userID, limit).Scan(&entries).Error
	if err != nil {
		log.Printf("Error loading history for user %d: %v", userID, err)
		return nil, err
	}
	return entries, nil
}

// GetLeaderboard returns the top users by XP. Ranks are assigned by the
// caller from the returned order.
func (r *Repository) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := r.db.Raw(`
		SELECT u.username, u.email, p.xp, p.level
		FROM user_progress p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.xp DESC, u.username ASC
		LIMIT ?
	`, limit).Scan(&entries).Error
	if err != nil {
		log.Printf("Error loading leaderboard: %v", err)
		return nil, err
	}
	return entries, nil
}
