package repository

import (
	"context"

	"github.com/lshigami/cybersolutions/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./phishing_log_repository.go -destination=./mocks/phishing_log_repository.mock.go -package=repomocks PhishingLogRepository

type PhishingLogRepository interface {
	Create(ctx context.Context, entry *model.PhishingLog) error
	FindAllByUser(ctx context.Context, userID uint) ([]model.PhishingLog, error)
}

type phishingLogRepository struct {
	db *gorm.DB
}

func NewPhishingLogRepository(db *gorm.DB) PhishingLogRepository {
	return &phishingLogRepository{db: db}
}

func (r *phishingLogRepository) Create(ctx context.Context, entry *model.PhishingLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *phishingLogRepository) FindAllByUser(ctx context.Context, userID uint) ([]model.PhishingLog, error) {
	var logs []model.PhishingLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
