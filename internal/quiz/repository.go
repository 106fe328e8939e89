package quiz

import (
	"log"

	"gorm.io/gorm"

	"quiz-platform/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetQuizByID loads a quiz with its questions in their authored order.
func (r *Repository) GetQuizByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// ListQuizzes returns quiz summaries; question content never leaves the
// server through this path.
func (r *Repository) ListQuizzes() ([]models.QuizSummary, error) {
	var summaries []models.QuizSummary
	err := r.db.Raw(`
		SELECT q.id, q.title, q.description, q.quiz_type, q.time_limit,
		       q.xp_reward, q.difficulty, COUNT(que.id) AS question_count
		FROM quizzes q
		LEFT JOIN questions que ON que.quiz_id = q.id
		GROUP BY q.id, q.title, q.description, q.quiz_type, q.time_limit,
		         q.xp_reward, q.difficulty
		ORDER BY q.id ASC
	`).Scan(&summaries).Error
	if err != nil {
		log.Printf("Error listing quizzes: %v", err)
		return nil, err
	}
	return summaries, nil
}

func (r *Repository) CountQuizzes() (int64, error) {
	var count int64
	err := r.db.Model(&models.Quiz{}).Count(&count).Error
	return count, err
}

func (r *Repository) CreateQuiz(quiz *models.Quiz) error {
	if err := r.db.Create(quiz).Error; err != nil {
		log.Printf("Error creating quiz %q: %v", quiz.Title, err)
		return err
	}
	return nil
}
