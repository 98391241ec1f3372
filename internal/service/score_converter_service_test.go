package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConverterService_ToPercentage(t *testing.T) {
	testCases := []struct {
		name    string
		score   int
		total   int
		want    float64
		wantErr bool
	}{
		{name: "perfect", score: 20, total: 20, want: 100},
		{name: "half", score: 5, total: 10, want: 50},
		{name: "rounded to one decimal", score: 2, total: 3, want: 66.7},
		{name: "zero total", score: 0, total: 0, want: 0},
		{name: "capped at 100", score: 3, total: 2, want: 100},
		{name: "negative score", score: -1, total: 5, wantErr: true},
	}

	svc := NewScoreConverterService()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ToPercentage(tc.score, tc.total)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
