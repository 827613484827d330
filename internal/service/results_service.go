package service

import (
	"context"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/model"
	"github.com/lshigami/mockview/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	DefaultRating       = 3.0
	DefaultFeedbackText = "No feedback provided"
)

type ResultsService interface {
	// GetInterviewResults builds the results view for a mock id or primary id.
	GetInterviewResults(ctx context.Context, id string) (*dto.InterviewResultsResponse, error)
}

type resultsService struct {
	interviews     InterviewService
	submissionRepo repository.SubmissionRepository
}

func NewResultsService(interviews InterviewService, submissionRepo repository.SubmissionRepository) ResultsService {
	return &resultsService{interviews: interviews, submissionRepo: submissionRepo}
}

func (s *resultsService) GetInterviewResults(ctx context.Context, id string) (*dto.InterviewResultsResponse, error) {
	interview, err := s.interviews.ResolveInterview(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := ParseQuestionPayload(interview.JSONMockResp)
	if err != nil {
		log.Error().Err(err).Str("interviewID", interview.ID).Msg("Stored question payload is unreadable, showing results without questions")
		items = nil
	}

	submission, err := s.submissionRepo.FindLatestForInterview(ctx, interview.ID, interview.MockID)
	if err != nil {
		log.Error().Err(err).Str("interviewID", interview.ID).Msg("Failed to load latest submission")
		return nil, err
	}

	questions := make([]string, len(items))
	feedback := make([]dto.FeedbackResponse, len(items))
	for i, item := range items {
		questions[i] = item.Question
		feedback[i] = baselineFeedback(item)
	}

	answers := []string{}
	completedAt := interview.CreatedAt
	if submission != nil {
		completedAt = submission.SubmittedAt
		answers = make([]string, len(items))
		for i := range items {
			answers[i] = model.NoAnswerProvided
			if i >= len(submission.Answers) {
				continue
			}
			a := submission.Answers[i]
			if a.UserAnswer != "" {
				answers[i] = a.UserAnswer
			}
			if a.HasScoring() {
				feedback[i] = dto.FeedbackResponse{
					Rating:       a.Rating,
					Feedback:     a.Feedback,
					Suggestions:  a.Suggestions,
					Alternatives: a.Alternatives,
				}
			}
		}
	}

	ratings := make([]float64, len(feedback))
	for i, f := range feedback {
		ratings[i] = f.Rating
	}

	var details dto.InterviewDetailsResponse
	copier.Copy(&details, interview)

	return &dto.InterviewResultsResponse{
		InterviewDetails: details,
		Questions:        questions,
		Answers:          answers,
		Feedback:         feedback,
		OverallRating:    OverallRating(ratings),
		CompletedAt:      completedAt.In(time.UTC),
	}, nil
}

func baselineFeedback(item model.QuestionItem) dto.FeedbackResponse {
	f := dto.FeedbackResponse{
		Rating:       DefaultRating,
		Feedback:     DefaultFeedbackText,
		Suggestions:  item.Suggestions,
		Alternatives: item.Alternatives,
	}
	if item.Rating != nil && *item.Rating > 0 {
		f.Rating = *item.Rating
	}
	if item.Feedback != "" {
		f.Feedback = item.Feedback
	}
	return f
}

// OverallRating is the mean of the ratings rounded to one decimal, or nil when there are none.
func OverallRating(ratings []float64) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	mean := math.Round(sum/float64(len(ratings))*10) / 10
	return &mean
}
