package service

import (
	"testing"

	"github.com/lshigami/mockview/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScoreConverter_Score(t *testing.T) {
	c := NewScoreConverterService()

	assert.Equal(t, 0.0, c.Score(0))
	assert.Equal(t, 60.0, c.Score(3))
	assert.Equal(t, 90.0, c.Score(4.5))
	assert.Equal(t, 100.0, c.Score(8), "out of range ratings are clamped")
	assert.Equal(t, 0.0, c.Score(-1))
}

func TestScoreConverter_IsCorrect(t *testing.T) {
	c := NewScoreConverterService()

	assert.False(t, c.IsCorrect(2.9))
	assert.True(t, c.IsCorrect(3))
	assert.True(t, c.IsCorrect(5))
}

func TestScoreConverter_TotalSkipsPlaceholders(t *testing.T) {
	c := NewScoreConverterService()

	total := c.Total([]model.SubmissionAnswer{
		{UserAnswer: "I led a migration", Score: 80},
		{UserAnswer: model.NoAnswerRecorded, Score: 0},
		{UserAnswer: "I like Go", Score: 60},
		{UserAnswer: "", Score: 0},
	})
	assert.Equal(t, 70.0, total)
	assert.Equal(t, 0.0, c.Total(nil))
}

func TestScoreConverter_OverallFeedbackBands(t *testing.T) {
	c := NewScoreConverterService()

	assert.Contains(t, c.OverallFeedback(92, 3), "Excellent")
	assert.Contains(t, c.OverallFeedback(75, 3), "Good")
	assert.Contains(t, c.OverallFeedback(55, 3), "Fair")
	assert.Contains(t, c.OverallFeedback(10, 3), "Needs improvement")
	assert.Contains(t, c.OverallFeedback(0, 0), "No answers")
}
