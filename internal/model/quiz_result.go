package model

import (
	"time"
)

// QuizResult is written once per graded submission and never updated.
type QuizResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	AIFeedback     string    `json:"ai_feedback" gorm:"column:ai_feedback;type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
