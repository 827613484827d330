package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/lshigami/mockview/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	FeedbackErrorText       = "Error generating feedback"
	FeedbackErrorSuggestion = "Please try again later"
	FeedbackUnparsedText    = "Could not parse feedback"
	MaxRating               = 5.0
)

type FeedbackGenerator interface {
	// Generate always returns a feedback object. Model failures degrade to placeholders.
	Generate(ctx context.Context, question, answer string) *model.Feedback
}

type feedbackGenerator struct {
	llm GeminiLLMService
}

func NewFeedbackGenerator(llm GeminiLLMService) FeedbackGenerator {
	return &feedbackGenerator{llm: llm}
}

func buildFeedbackPrompt(question, answer string) string {
	var b strings.Builder
	b.WriteString("You are an expert interview coach. Please provide feedback on this interview response.\n")
	b.WriteString(fmt.Sprintf("Question: %s\n", question))
	b.WriteString(fmt.Sprintf("Answer: %s\n\n", answer))
	b.WriteString("Please provide:\n")
	b.WriteString("1. A rating from 1-5 (5 being best)\n")
	b.WriteString("2. Specific feedback on what was good\n")
	b.WriteString("3. Specific suggestions for improvement\n")
	b.WriteString("4. Alternative ways to answer if applicable\n\n")
	b.WriteString("Format your response as JSON with these fields:\n")
	b.WriteString("- rating (number)\n")
	b.WriteString("- feedback (string)\n")
	b.WriteString("- suggestions (string)\n")
	b.WriteString("- alternatives (string, optional)\n")
	return b.String()
}

func (g *feedbackGenerator) Generate(ctx context.Context, question, answer string) *model.Feedback {
	raw, err := g.llm.GenerateText(ctx, buildFeedbackPrompt(question, answer))
	if err != nil {
		log.Error().Err(err).Str("question", question).Msg("Failed to generate answer feedback")
		return &model.Feedback{
			Rating:      0,
			Feedback:    FeedbackErrorText,
			Suggestions: FeedbackErrorSuggestion,
		}
	}

	parsed, strategy, _ := ParseModelJSON(raw, modelFeedback.hasContent, func(raw string) (modelFeedback, bool) {
		return modelFeedback{
			Feedback:    FeedbackUnparsedText,
			Suggestions: flexText(raw),
		}, true
	})
	if strategy == StrategyFallback {
		log.Warn().Str("rawResponse", raw).Msg("Could not parse feedback from model response")
	}

	var rating float64
	if parsed.Rating != nil {
		rating = float64(*parsed.Rating)
	}
	return &model.Feedback{
		Rating:       ClampRating(rating),
		Feedback:     string(parsed.Feedback),
		Suggestions:  string(parsed.Suggestions),
		Alternatives: string(parsed.Alternatives),
	}
}

// ClampRating bounds a rating to [0, MaxRating]. NaN becomes 0.
func ClampRating(rating float64) float64 {
	if math.IsNaN(rating) || rating < 0 {
		return 0
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// modelFeedback accepts the loose shapes models return: ratings as numbers or numeric
// strings, text fields as strings or lists of strings.
type modelFeedback struct {
	Rating       *flexNumber `json:"rating"`
	Feedback     flexText    `json:"feedback"`
	Suggestions  flexText    `json:"suggestions"`
	Alternatives flexText    `json:"alternatives"`
}

// hasContent rejects replies that decode but carry neither a rating nor feedback text.
func (f modelFeedback) hasContent() bool {
	return f.Rating != nil || strings.TrimSpace(string(f.Feedback)) != ""
}

type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		f, err := num.Float64()
		if err != nil {
			return err
		}
		*n = flexNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var f float64
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%g", &f); err != nil {
		return fmt.Errorf("rating %q is not a number", s)
	}
	*n = flexNumber(f)
	return nil
}

type flexText string

func (t *flexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = flexText(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = flexText(strings.Join(list, "\n"))
		return nil
	}
	if string(data) == "null" {
		*t = ""
		return nil
	}
	*t = flexText(strings.TrimSpace(string(data)))
	return nil
}
