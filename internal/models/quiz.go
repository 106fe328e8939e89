package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringArray stores a []string as a JSONB column.
type StringArray []string

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("StringArray: expected []byte from database")
	}
	if len(bytes) == 0 {
		*a = StringArray{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// IntArray stores a []int as a JSONB column.
type IntArray []int

func (a *IntArray) Scan(value interface{}) error {
	if value == nil {
		*a = IntArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("IntArray: expected []byte from database")
	}
	if len(bytes) == 0 {
		*a = IntArray{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

func (a IntArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Quiz is immutable once created; only the seeder writes this table.
type Quiz struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:100;not null"`
	Description string     `json:"description" gorm:"size:500;not null;default:''"`
	QuizType    string     `json:"quiz_type" gorm:"size:50;not null;default:'Multiple Choice'"`
	TimeLimit   int        `json:"time_limit" gorm:"not null"` // seconds
	XPReward    int        `json:"xp_reward" gorm:"not null"`
	Difficulty  string     `json:"difficulty" gorm:"size:20;not null;default:'Easy'"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question keeps its options inline as JSONB. CorrectOption is the index
// into Options and never leaves the server.
type Question struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	QuizID        uint        `json:"quiz_id" gorm:"not null;index"`
	Position      int         `json:"position" gorm:"not null;default:0"`
	Text          string      `json:"question" gorm:"size:500;not null"`
	Options       StringArray `json:"options" gorm:"type:jsonb;not null"`
	CorrectOption int         `json:"-" gorm:"not null"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
