package phishing

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/service"
	svcmocks "github.com/lshigami/cybersolutions/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(c *PhishingController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextUserIDKey, uint(4))
	})
	r.POST("/api/phishing/analyze", c.Analyze)
	r.GET("/api/phishing/history", c.GetHistory)
	return r
}

func TestPhishingController_Analyze(t *testing.T) {
	testCases := []struct {
		name string
		body string
		mock func(svc *svcmocks.MockPhishingService)

		wantCode int
		wantBody string
	}{
		{
			name: "analyzed",
			body: `{"email_content":"Verify your account now"}`,
			mock: func(svc *svcmocks.MockPhishingService) {
				svc.EXPECT().Analyze(gomock.Any(), uint(4), "Verify your account now").
					Return(&dto.PhishingAnalysisDTO{IsPhishing: true, RiskLevel: "High", Analysis: "Urgency."}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"data":{"is_phishing":true,"risk_level":"High","analysis":"Urgency."}}`,
		},
		{
			name: "blank content",
			body: `{"email_content":""}`,
			mock: func(svc *svcmocks.MockPhishingService) {
				svc.EXPECT().Analyze(gomock.Any(), uint(4), "").
					Return(nil, &service.InputError{Message: "Email content is required"})
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Email content is required"}`,
		},
		{
			name: "model unavailable",
			body: `{"email_content":"hello"}`,
			mock: func(svc *svcmocks.MockPhishingService) {
				svc.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrLLMUnavailable)
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"message":"Internal server error while analyzing the email"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockPhishingService(ctrl)
			tc.mock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/phishing/analyze", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			newServer(NewPhishingController(svc)).ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}

func TestPhishingController_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockPhishingService(ctrl)
	server := newServer(NewPhishingController(svc))

	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	svc.EXPECT().GetHistory(gomock.Any(), uint(4)).Return([]dto.PhishingLogDTO{
		{ID: 1, UserID: 4, EmailContent: "hi", AnalysisResult: "safe", CreatedAt: created},
	}, nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/phishing/history", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"history":[{"id":1,"user_id":4,"email_content":"hi","analysis_result":"safe","is_phishing":false,"created_at":"2025-02-03T04:05:06Z"}]}`, recorder.Body.String())

	svc.EXPECT().GetHistory(gomock.Any(), uint(4)).Return(nil, errors.New("db down"))
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/phishing/history", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
