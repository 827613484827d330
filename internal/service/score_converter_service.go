package service

import (
	"math"

	"github.com/lshigami/mockview/internal/model"
)

const MaxAnswerScore float64 = 100.0

// PassingRating is the lowest rating counted as a correct answer.
const PassingRating float64 = 3.0

type ScoreConverterService interface {
	Score(rating float64) float64
	IsCorrect(rating float64) bool
	Total(answers []model.SubmissionAnswer) float64
	OverallFeedback(total float64, answered int) string
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// Score maps a 0-5 rating onto 0-100, rounded to the nearest integer.
func (s *scoreConverterServiceImpl) Score(rating float64) float64 {
	return math.Round(ClampRating(rating) / MaxRating * MaxAnswerScore)
}

func (s *scoreConverterServiceImpl) IsCorrect(rating float64) bool {
	return ClampRating(rating) >= PassingRating
}

// Total averages the scores of answered questions. Placeholder answers are not counted.
func (s *scoreConverterServiceImpl) Total(answers []model.SubmissionAnswer) float64 {
	var sum float64
	var n int
	for _, a := range answers {
		if !isAnswered(a.UserAnswer) {
			continue
		}
		sum += a.Score
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

func (s *scoreConverterServiceImpl) OverallFeedback(total float64, answered int) string {
	if answered == 0 {
		return "No answers were recorded for this interview."
	}
	switch {
	case total >= 85:
		return "Excellent interview. Your answers were clear and well structured."
	case total >= 70:
		return "Good interview. Most answers were solid; review the suggestions to polish the weaker ones."
	case total >= 50:
		return "Fair interview. Several answers need more depth and concrete examples."
	default:
		return "Needs improvement. Practice structuring your answers and relating them to the role."
	}
}

func isAnswered(answer string) bool {
	return answer != "" && answer != model.NoAnswerRecorded && answer != model.NoAnswerProvided
}
