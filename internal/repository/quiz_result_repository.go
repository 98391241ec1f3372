package repository

import (
	"context"

	"github.com/lshigami/cybersolutions/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./quiz_result_repository.go -destination=./mocks/quiz_result_repository.mock.go -package=repomocks QuizResultRepository

type QuizResultRepository interface {
	Create(ctx context.Context, result *model.QuizResult) error
	FindAllByUser(ctx context.Context, userID uint) ([]model.QuizResult, error)
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Create(ctx context.Context, result *model.QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *quizResultRepository) FindAllByUser(ctx context.Context, userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	// Newest first; id breaks ties between results created in the same second.
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
