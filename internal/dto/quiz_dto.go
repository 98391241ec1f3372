package dto

import "time"

// SubmittedAnswerDTO is one {id, option} pair of a quiz submission.
// Option is compared verbatim with the stored correct option.
type SubmittedAnswerDTO struct {
	ID     uint   `json:"id"`
	Option string `json:"option"`
}

// QuizSubmitDTO is the request body of a quiz submission. A missing or null
// "answers" field leaves Answers nil, which is rejected as invalid input.
type QuizSubmitDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers"`
}

// WrongAnswerDTO describes one mistake of a graded submission.
type WrongAnswerDTO struct {
	Question      string `json:"question"`
	UserOption    string `json:"user_option"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
	Category      string `json:"category"`
}

// QuizGradeDTO is the outcome of grading one submission.
type QuizGradeDTO struct {
	Score        int              `json:"score"`
	Total        int              `json:"total"`
	AIFeedback   string           `json:"ai_feedback"`
	WrongAnswers []WrongAnswerDTO `json:"wrong_answers"`
}

type QuizSubmitResponse struct {
	Success      bool             `json:"success"`
	Score        int              `json:"score"`
	Total        int              `json:"total"`
	AIFeedback   string           `json:"ai_feedback"`
	WrongAnswers []WrongAnswerDTO `json:"wrong_answers"`
}

// QuestionPublicDTO is a question as served to learners, without the
// correct option or explanation.
type QuestionPublicDTO struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	Category     string `json:"category"`
}

type QuestionsResponse struct {
	Success bool                `json:"success"`
	Data    []QuestionPublicDTO `json:"data"`
}

type QuizHistoryItemDTO struct {
	ID             uint      `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	AIFeedback     string    `json:"ai_feedback"`
	CreatedAt      time.Time `json:"created_at"`
}

type QuizHistoryResponse struct {
	Success bool                 `json:"success"`
	History []QuizHistoryItemDTO `json:"history"`
}
