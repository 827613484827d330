package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/rs/zerolog/log"
)

type InterviewInput struct {
	JobPosition   string
	JobDesc       string
	JobExperience string
}

type QuestionGenerator interface {
	Generate(ctx context.Context, input InterviewInput) ([]model.QuestionItem, error)
}

type questionGenerator struct {
	llm   GeminiLLMService
	count int
}

func NewQuestionGenerator(llm GeminiLLMService, count int) QuestionGenerator {
	if count <= 0 {
		count = 5
	}
	return &questionGenerator{llm: llm, count: count}
}

func (g *questionGenerator) buildPrompt(input InterviewInput) string {
	return fmt.Sprintf(`Job Position: %s
Job Description: %s
Years of Experience: %s

Based on the information above, generate %d interview questions with answers in JSON format.
Return a JSON array where each element has the fields "question" and "answer".
The answer should be a short ideal answer the interviewer expects.
Return only the JSON.`,
		input.JobPosition, input.JobDesc, input.JobExperience, g.count)
}

func (g *questionGenerator) Generate(ctx context.Context, input InterviewInput) ([]model.QuestionItem, error) {
	raw, err := g.llm.GenerateText(ctx, g.buildPrompt(input))
	if err != nil {
		return []model.QuestionItem{}, fmt.Errorf("failed to generate interview questions: %w", err)
	}

	items, strategy, err := ParseQuestionItems(raw)
	if err != nil {
		log.Warn().Str("rawResponse", raw).Msg("Could not parse generated questions")
		return []model.QuestionItem{}, fmt.Errorf("generated questions: %v: %w", err, apperrors.ErrValidation)
	}
	log.Debug().Str("strategy", string(strategy)).Int("count", len(items)).Msg("Parsed generated questions")
	return items, nil
}

type questionEnvelope struct {
	Questions []model.QuestionItem `json:"questions"`
}

// ParseQuestionItems accepts a top-level array or an object with a "questions" array.
// Entries without question text are dropped.
func ParseQuestionItems(raw string) ([]model.QuestionItem, ParseStrategy, error) {
	items, strategy, err := ParseModelJSON[[]model.QuestionItem](raw, nil, nil)
	if err != nil {
		var envelope questionEnvelope
		envelope, strategy, err = ParseModelJSON[questionEnvelope](raw, nil, nil)
		if err != nil {
			return nil, StrategyNone, err
		}
		items = envelope.Questions
	}

	kept := make([]model.QuestionItem, 0, len(items))
	for _, item := range items {
		item.Question = strings.TrimSpace(item.Question)
		if item.Question == "" {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil, StrategyNone, errNoJSON
	}
	return kept, strategy, nil
}
