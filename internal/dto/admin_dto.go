package dto

import "time"

// QuestionCreateDTO is used by admins to add a question to the bank.
type QuestionCreateDTO struct {
	QuestionText  string `json:"question_text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required,oneof=A B C D"`
	Explanation   string `json:"explanation"`
	Category      string `json:"category" binding:"required"`
}

// QuestionAdminDTO is the full stored question, correct option included.
type QuestionAdminDTO struct {
	ID            uint      `json:"id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption string    `json:"correct_option"`
	Explanation   string    `json:"explanation"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuestionCreateResponse struct {
	Success bool             `json:"success"`
	Data    QuestionAdminDTO `json:"data"`
}
