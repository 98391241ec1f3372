package service

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/cybersolutions/config"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
		{name: "no fence", in: "  {\"a\":1} ", want: `{"a":1}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanModelJSON(tc.in))
		})
	}
}

func TestParsePhishingAnalysis(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    dto.PhishingAnalysisDTO
		wantErr bool
	}{
		{
			name: "fenced verdict",
			in:   "```json\n{\"is_phishing\": true, \"risk_level\": \"Medium\", \"analysis\": \"Urgent tone.\"}\n```",
			want: dto.PhishingAnalysisDTO{IsPhishing: true, RiskLevel: "Medium", Analysis: "Urgent tone."},
		},
		{
			name: "safe verdict",
			in:   `{"is_phishing": false, "risk_level": "Low", "analysis": "Internal newsletter."}`,
			want: dto.PhishingAnalysisDTO{IsPhishing: false, RiskLevel: "Low", Analysis: "Internal newsletter."},
		},
		{name: "prose", in: "This email is dangerous.", wantErr: true},
		{name: "null", in: "null", wantErr: true},
		{name: "empty object", in: "{}", wantErr: true},
		{name: "analysis only", in: `{"analysis":"Looks like credential harvesting."}`, wantErr: true},
		{name: "blank analysis", in: `{"is_phishing": true, "risk_level": "High", "analysis": "  "}`, wantErr: true},
		{name: "unknown risk level", in: `{"is_phishing": false, "risk_level": "None", "analysis": "Fine."}`, wantErr: true},
		{name: "missing risk level", in: `{"is_phishing": false, "analysis": "Fine."}`, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePhishingAnalysis(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}},
		}},
	}
	got, err := candidateText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", got)

	_, err = candidateText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = candidateText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}},
	})
	assert.Error(t, err)
}

func TestNewLLMService(t *testing.T) {
	svc, err := NewLLMService(&config.Config{LLM: config.LLM{Provider: ProviderGemini}})
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrLLMUnavailable)

	svc, err = NewLLMService(&config.Config{LLM: config.LLM{Provider: "OpenAI"}})
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrLLMUnavailable)

	_, err = NewLLMService(&config.Config{LLM: config.LLM{Provider: "claude"}})
	assert.Error(t, err)
}
