package quiz

import (
	"log"

	"quiz-platform/internal/models"
)

// SeedDefaultQuizzes inserts the starter quizzes when the table is empty,
// so a fresh deployment has content to serve immediately.
func (s *Service) SeedDefaultQuizzes() error {
	count, err := s.repo.CountQuizzes()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, quiz := range defaultQuizzes() {
		if err := s.repo.CreateQuiz(quiz); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d starter quizzes", len(defaultQuizzes()))
	return nil
}

func defaultQuizzes() []*models.Quiz {
	return []*models.Quiz{
		{
			Title:       "Go Fundamentals",
			Description: "Test your basic Go knowledge",
			QuizType:    "Multiple Choice",
			TimeLimit:   300,
			XPReward:    100,
			Difficulty:  "Easy",
			Questions: []models.Question{
				{
					Position:      0,
					Text:          "Which keyword declares a new variable with inferred type?",
					Options:       models.StringArray{"var", ":=", "let", "def"},
					CorrectOption: 1,
				},
				{
					Position:      1,
					Text:          "What is the zero value of an int in Go?",
					Options:       models.StringArray{"nil", "undefined", "0", "-1"},
					CorrectOption: 2,
				},
				{
					Position:      2,
					Text:          "Which builtin starts a new goroutine?",
					Options:       models.StringArray{"spawn", "go", "async", "thread"},
					CorrectOption: 1,
				},
				{
					Position:      3,
					Text:          "What is the file extension for Go source files?",
					Options:       models.StringArray{".golang", ".g", ".go", ".gol"},
					CorrectOption: 2,
				},
				{
					Position:      4,
					Text:          "Which of these is NOT a builtin Go type?",
					Options:       models.StringArray{"rune", "byte", "decimal", "complex128"},
					CorrectOption: 2,
				},
			},
		},
		{
			Title:       "SQL Basics",
			Description: "Essential relational database concepts",
			QuizType:    "Multiple Choice",
			TimeLimit:   360,
			XPReward:    120,
			Difficulty:  "Easy",
			Questions: []models.Question{
				{
					Position:      0,
					Text:          "Which clause filters rows in a SELECT statement?",
					Options:       models.StringArray{"HAVING", "WHERE", "FILTER", "LIMIT"},
					CorrectOption: 1,
				},
				{
					Position:      1,
					Text:          "Which statement adds a new row to a table?",
					Options:       models.StringArray{"ADD", "CREATE", "INSERT", "APPEND"},
					CorrectOption: 2,
				},
				{
					Position:      2,
					Text:          "What does a PRIMARY KEY enforce?",
					Options:       models.StringArray{"Ordering", "Uniqueness", "Encryption", "Compression"},
					CorrectOption: 1,
				},
				{
					Position:      3,
					Text:          "Which JOIN returns only matching rows from both tables?",
					Options:       models.StringArray{"LEFT JOIN", "FULL JOIN", "INNER JOIN", "CROSS JOIN"},
					CorrectOption: 2,
				},
				{
					Position:      4,
					Text:          "Which keyword groups rows for aggregation?",
					Options:       models.StringArray{"GROUP BY", "ORDER BY", "PARTITION", "CLUSTER"},
					CorrectOption: 0,
				},
			},
		},
		{
			Title:       "HTTP and REST",
			Description: "Test your web API knowledge",
			QuizType:    "Multiple Choice",
			TimeLimit:   420,
			XPReward:    150,
			Difficulty:  "Medium",
			Questions: []models.Question{
				{
					Position:      0,
					Text:          "Which HTTP method is conventionally used to create a resource?",
					Options:       models.StringArray{"GET", "POST", "PATCH", "HEAD"},
					CorrectOption: 1,
				},
				{
					Position:      1,
					Text:          "What does status code 404 mean?",
					Options:       models.StringArray{"Server error", "Unauthorized", "Not found", "Conflict"},
					CorrectOption: 2,
				},
				{
					Position:      2,
					Text:          "Which header carries a bearer token?",
					Options:       models.StringArray{"Accept", "Authorization", "Content-Type", "Cookie"},
					CorrectOption: 1,
				},
				{
					Position:      3,
					Text:          "Which status code signals a client may safely retry later?",
					Options:       models.StringArray{"400", "403", "503", "301"},
					CorrectOption: 2,
				},
				{
					Position:      4,
					Text:          "What does idempotent mean for an HTTP operation?",
					Options:       models.StringArray{"It is cached", "Repeating it has the same effect as doing it once", "It requires auth", "It never fails"},
					CorrectOption: 1,
				},
			},
		},
	}
}
