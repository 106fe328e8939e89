package quiz

import (
	"quiz-platform/internal/models"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListQuizzes() ([]models.QuizSummary, error) {
	return s.repo.ListQuizzes()
}

// GetQuiz returns the taker-safe view of a quiz: prompts and options with
// the correct indices stripped.
func (s *Service) GetQuiz(id uint) (*models.QuizDetailDTO, error) {
	quiz, err := s.repo.GetQuizByID(id)
	if err != nil {
		return nil, err
	}
	dto := quiz.ToDetailDTO()
	return &dto, nil
}

// GetQuizByID exposes the full definition (correct answers included) to the
// submission pipeline. Not routed to clients.
func (s *Service) GetQuizByID(id uint) (*models.Quiz, error) {
	return s.repo.GetQuizByID(id)
}
