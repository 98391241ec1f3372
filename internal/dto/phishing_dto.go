package dto

import "time"

type PhishingAnalyzeRequest struct {
	EmailContent string `json:"email_content"`
}

// PhishingAnalysisDTO mirrors the JSON object the model is asked to return.
type PhishingAnalysisDTO struct {
	IsPhishing bool   `json:"is_phishing"`
	RiskLevel  string `json:"risk_level"`
	Analysis   string `json:"analysis"`
}

type PhishingAnalyzeResponse struct {
	Success bool                `json:"success"`
	Data    PhishingAnalysisDTO `json:"data"`
}

type PhishingLogDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	EmailContent   string    `json:"email_content"`
	AnalysisResult string    `json:"analysis_result"`
	IsPhishing     bool      `json:"is_phishing"`
	CreatedAt      time.Time `json:"created_at"`
}

type PhishingHistoryResponse struct {
	Success bool             `json:"success"`
	History []PhishingLogDTO `json:"history"`
}
