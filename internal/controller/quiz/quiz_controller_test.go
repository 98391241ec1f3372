package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/service"
	svcmocks "github.com/lshigami/cybersolutions/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(c *QuizController, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		if userID != 0 {
			ctx.Set(middleware.ContextUserIDKey, userID)
		}
	})
	r.GET("/api/quiz/questions", c.GetQuestions)
	r.POST("/api/quiz/submit", c.SubmitQuiz)
	r.GET("/api/quiz/history", c.GetHistory)
	return r
}

func TestQuizController_SubmitQuiz(t *testing.T) {
	testCases := []struct {
		name string
		body string
		mock func(svc *svcmocks.MockQuizService)

		wantCode int
		wantBody string
	}{
		{
			name: "graded",
			body: `{"answers":[{"id":1,"option":"B"},{"id":2,"option":"A"}]}`,
			mock: func(svc *svcmocks.MockQuizService) {
				svc.EXPECT().SubmitQuiz(gomock.Any(), uint(7), []dto.SubmittedAnswerDTO{{ID: 1, Option: "B"}, {ID: 2, Option: "A"}}).
					Return(&dto.QuizGradeDTO{
						Score:      1,
						Total:      2,
						AIFeedback: "Study 2FA.",
						WrongAnswers: []dto.WrongAnswerDTO{
							{Question: "What does 2FA add?", UserOption: "A", CorrectOption: "C", Explanation: "A second factor", Category: "Auth"},
						},
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"score":1,"total":2,"ai_feedback":"Study 2FA.","wrong_answers":[{"question":"What does 2FA add?","user_option":"A","correct_option":"C","explanation":"A second factor","category":"Auth"}]}`,
		},
		{
			name:     "answers is not an array",
			body:     `{"answers":"B"}`,
			mock:     func(svc *svcmocks.MockQuizService) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Invalid answers format"}`,
		},
		{
			name: "answers missing",
			body: `{}`,
			mock: func(svc *svcmocks.MockQuizService) {
				svc.EXPECT().SubmitQuiz(gomock.Any(), uint(7), gomock.Nil()).
					Return(nil, &service.InputError{Message: "Invalid answers format"})
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Invalid answers format"}`,
		},
		{
			name: "grading fails",
			body: `{"answers":[{"id":1,"option":"B"}]}`,
			mock: func(svc *svcmocks.MockQuizService) {
				svc.EXPECT().SubmitQuiz(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error loading questions: timeout"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"message":"Error grading the quiz"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockQuizService(ctrl)
			tc.mock(svc)
			server := newServer(NewQuizController(svc), 7)

			req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}

func TestQuizController_SubmitQuiz_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(NewQuizController(svcmocks.NewMockQuizService(ctrl)), 0)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", bytes.NewBufferString(`{"answers":[]}`))
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestQuizController_GetQuestionsAndHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockQuizService(ctrl)
	server := newServer(NewQuizController(svc), 7)

	svc.EXPECT().GetQuestions(gomock.Any()).Return([]dto.QuestionPublicDTO{{ID: 1, QuestionText: "Q", Category: "General"}}, nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/quiz/questions", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	var questions dto.QuestionsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &questions))
	assert.True(t, questions.Success)
	assert.Len(t, questions.Data, 1)
	assert.NotContains(t, recorder.Body.String(), "correct_option")

	svc.EXPECT().GetHistory(gomock.Any(), uint(7)).Return([]dto.QuizHistoryItemDTO{{ID: 3, Score: 1, TotalQuestions: 2, Percentage: 50}}, nil)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/quiz/history", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	var history dto.QuizHistoryResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &history))
	assert.Equal(t, 50.0, history.History[0].Percentage)

	svc.EXPECT().GetHistory(gomock.Any(), uint(7)).Return(nil, errors.New("db down"))
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/quiz/history", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
