package model

import (
	"time"
)

// Option labels a question can be answered with.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	QuestionText  string    `json:"question_text" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"size:255;not null"`
	OptionB       string    `json:"option_b" gorm:"size:255;not null"`
	OptionC       string    `json:"option_c" gorm:"size:255;not null"`
	OptionD       string    `json:"option_d" gorm:"size:255;not null"`
	CorrectOption string    `json:"correct_option" gorm:"type:char(1);not null"`
	Explanation   string    `json:"explanation" gorm:"type:text"`
	Category      string    `json:"category" gorm:"size:100;index"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
