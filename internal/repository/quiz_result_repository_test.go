package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lshigami/cybersolutions/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizResultRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuizResultRepository(db)

	mock.ExpectExec("INSERT INTO `quiz_results` .*").WillReturnResult(sqlmock.NewResult(11, 1))
	res := model.QuizResult{UserID: 2, Score: 1, TotalQuestions: 2, AIFeedback: "Review 2FA."}
	require.NoError(t, repo.Create(context.Background(), &res))
	assert.Equal(t, uint(11), res.ID)

	mock.ExpectExec("INSERT INTO `quiz_results` .*").WillReturnError(errors.New("lock wait timeout"))
	assert.Error(t, repo.Create(context.Background(), &model.QuizResult{UserID: 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizResultRepository_FindAllByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuizResultRepository(db)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "score", "total_questions", "ai_feedback", "created_at"}).
		AddRow(5, 2, 3, 4, "Nice", now).
		AddRow(4, 2, 1, 4, "Keep going", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT \\* FROM `quiz_results` WHERE user_id = \\? ORDER BY created_at DESC,id DESC").
		WithArgs(2).
		WillReturnRows(rows)

	got, err := repo.FindAllByUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(5), got[0].ID)
	assert.Equal(t, "Nice", got[0].AIFeedback)
	assert.Equal(t, 4, got[1].TotalQuestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
