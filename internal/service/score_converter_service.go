package service

import (
	"fmt"
	"math"
)

const MaxPercentage float64 = 100.0

type ScoreConverterService interface {
	ToPercentage(score, total int) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ToPercentage converts a raw score into a percentage rounded to one decimal.
// A zero total yields 0. Scores above total, possible when a question id was
// submitted more than once, are capped at 100.
func (s *scoreConverterServiceImpl) ToPercentage(score, total int) (float64, error) {
	if score < 0 || total < 0 {
		return 0, fmt.Errorf("score %d / total %d must not be negative", score, total)
	}
	if total == 0 {
		return 0, nil
	}

	pct := float64(score) / float64(total) * MaxPercentage
	if pct > MaxPercentage {
		pct = MaxPercentage
	}
	return math.Round(pct*10) / 10, nil
}
