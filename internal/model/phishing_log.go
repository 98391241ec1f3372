package model

import (
	"time"
)

type PhishingLog struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	EmailContent   string    `json:"email_content" gorm:"type:text;not null"`
	AnalysisResult string    `json:"analysis_result" gorm:"type:text"`
	IsPhishing     bool      `json:"is_phishing" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

func (PhishingLog) TableName() string {
	return "phishing_logs"
}
