package repository

import (
	"context"

	"github.com/lshigami/cybersolutions/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./question_repository.go -destination=./mocks/question_repository.mock.go -package=repomocks QuestionRepository

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	// FindByIDs returns every stored question whose id is in ids, once each,
	// in no particular order. Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error)
	// FindRandom returns up to limit random questions without the answer
	// columns populated.
	FindRandom(ctx context.Context, limit int) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.WithContext(ctx).
		Select("id", "question_text", "correct_option", "explanation", "category").
		Where("id IN ?", ids).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindRandom(ctx context.Context, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Select("id", "question_text", "option_a", "option_b", "option_c", "option_d", "category").
		Order("RAND()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
