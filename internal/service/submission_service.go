package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/lshigami/mockview/internal/repository"
	"github.com/rs/zerolog/log"
)

type SubmissionService interface {
	SubmitInterview(ctx context.Context, req dto.SubmitInterviewRequest) (*dto.SubmissionResponse, error)
	ListSubmissions(ctx context.Context, interviewID string) ([]dto.SubmissionResponse, error)
}

type submissionService struct {
	interviews     InterviewService
	submissionRepo repository.SubmissionRepository
	scoreConverter ScoreConverterService
	now            func() time.Time
}

func NewSubmissionService(interviews InterviewService, submissionRepo repository.SubmissionRepository, scoreConverter ScoreConverterService) SubmissionService {
	return &submissionService{
		interviews:     interviews,
		submissionRepo: submissionRepo,
		scoreConverter: scoreConverter,
		now:            time.Now,
	}
}

// SubmitInterview stores one attempt as a new record keyed by the interview's primary id,
// whichever id the client used.
func (s *submissionService) SubmitInterview(ctx context.Context, req dto.SubmitInterviewRequest) (*dto.SubmissionResponse, error) {
	interview, err := s.interviews.ResolveInterview(ctx, req.InterviewID)
	if err != nil {
		return nil, err
	}

	items, err := ParseQuestionPayload(interview.JSONMockResp)
	if err != nil {
		return nil, err
	}
	if len(req.Answers) > len(items) {
		return nil, fmt.Errorf("%d answers for %d questions: %w", len(req.Answers), len(items), apperrors.ErrValidation)
	}

	answers := make([]model.SubmissionAnswer, 0, len(req.Answers))
	for i, text := range req.Answers {
		answer := model.SubmissionAnswer{
			QuestionID:   strconv.Itoa(i + 1),
			QuestionText: items[i].Question,
			UserAnswer:   text,
		}
		if i < len(req.Feedback) && req.Feedback[i] != nil {
			fb := req.Feedback[i]
			answer.Rating = ClampRating(fb.Rating)
			answer.Feedback = fb.Feedback
			answer.Suggestions = fb.Suggestions
			answer.Alternatives = fb.Alternatives
			answer.Score = s.scoreConverter.Score(answer.Rating)
			answer.IsCorrect = s.scoreConverter.IsCorrect(answer.Rating)
		}
		if i < len(req.AudioURLs) {
			answer.AudioURL = req.AudioURLs[i]
		}
		answers = append(answers, answer)
	}

	answered := 0
	for _, a := range answers {
		if isAnswered(a.UserAnswer) {
			answered++
		}
	}
	total := s.scoreConverter.Total(answers)
	now := s.now().UTC()

	submission := model.InterviewSubmission{
		ID:              uuid.NewString(),
		InterviewID:     interview.ID,
		MockID:          interview.MockID,
		Answers:         answers,
		OverallFeedback: s.scoreConverter.OverallFeedback(total, answered),
		TotalScore:      total,
		SubmittedAt:     now,
		EvaluatedAt:     &now,
	}
	if err := s.submissionRepo.Create(ctx, &submission); err != nil {
		log.Error().Err(err).Str("interviewID", interview.ID).Msg("Failed to save interview submission")
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	log.Info().Str("submissionID", submission.ID).Str("interviewID", interview.ID).Float64("totalScore", total).Msg("Interview submitted")

	var resp dto.SubmissionResponse
	copier.Copy(&resp, &submission)
	return &resp, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, interviewID string) ([]dto.SubmissionResponse, error) {
	interview, err := s.interviews.ResolveInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.FindAllForInterview(ctx, interview.ID, interview.MockID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SubmissionResponse, 0, len(submissions))
	copier.Copy(&resp, &submissions)
	return resp, nil
}
