package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/lshigami/mockview/internal/repository"
	"github.com/rs/zerolog/log"
)

type InterviewService interface {
	CreateInterview(ctx context.Context, req dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	GetInterviewDetails(ctx context.Context, id string) (*dto.InterviewDetailsResponse, error)
	GetInterviewQuestions(ctx context.Context, id string) ([]dto.QuestionResponse, error)
	ListInterviews(ctx context.Context, createdBy string) ([]dto.InterviewResponse, error)
	// ResolveInterview looks the id up as a mock id first, then as a primary id.
	ResolveInterview(ctx context.Context, id string) (*model.MockInterview, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	generator     QuestionGenerator
	now           func() time.Time
}

func NewInterviewService(interviewRepo repository.InterviewRepository, generator QuestionGenerator) InterviewService {
	return &interviewService{interviewRepo: interviewRepo, generator: generator, now: time.Now}
}

func (s *interviewService) CreateInterview(ctx context.Context, req dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	input := InterviewInput{
		JobPosition:   strings.TrimSpace(req.JobPosition),
		JobDesc:       strings.TrimSpace(req.JobDesc),
		JobExperience: strings.TrimSpace(req.JobExperience),
	}
	items, err := s.generator.Generate(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("jobPosition", req.JobPosition).Msg("Failed to generate interview questions")
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode question payload: %w", err)
	}

	interview := model.MockInterview{
		ID:            uuid.NewString(),
		MockID:        uuid.NewString(),
		JSONMockResp:  string(payload),
		JobPosition:   input.JobPosition,
		JobDesc:       input.JobDesc,
		JobExperience: input.JobExperience,
		CreatedBy:     req.CreatedBy,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.interviewRepo.Create(ctx, &interview); err != nil {
		log.Error().Err(err).Msg("Failed to save interview")
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}
	log.Info().Str("interviewID", interview.ID).Str("mockID", interview.MockID).Int("questions", len(items)).Msg("Interview created")

	var resp dto.InterviewResponse
	copier.Copy(&resp, &interview)
	resp.Questions = toQuestionResponses(QuestionsFromItems(items))
	return &resp, nil
}

func (s *interviewService) ResolveInterview(ctx context.Context, id string) (*model.MockInterview, error) {
	interview, err := s.interviewRepo.FindByMockID(ctx, id)
	if err == nil {
		return interview, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.interviewRepo.FindByID(ctx, id)
}

func (s *interviewService) GetInterviewDetails(ctx context.Context, id string) (*dto.InterviewDetailsResponse, error) {
	interview, err := s.ResolveInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	var resp dto.InterviewDetailsResponse
	copier.Copy(&resp, interview)
	return &resp, nil
}

func (s *interviewService) GetInterviewQuestions(ctx context.Context, id string) ([]dto.QuestionResponse, error) {
	interview, err := s.ResolveInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := ParseQuestionPayload(interview.JSONMockResp)
	if err != nil {
		log.Error().Err(err).Str("interviewID", interview.ID).Msg("Stored question payload is unreadable")
		return nil, err
	}
	return toQuestionResponses(QuestionsFromItems(items)), nil
}

func (s *interviewService) ListInterviews(ctx context.Context, createdBy string) ([]dto.InterviewResponse, error) {
	interviews, err := s.interviewRepo.FindAllByCreator(ctx, createdBy)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InterviewResponse, 0, len(interviews))
	copier.Copy(&resp, &interviews)
	return resp, nil
}

// ParseQuestionPayload decodes a stored question payload. Payloads saved as a JSON string
// holding the encoded array are unwrapped first. Ratings stored as strings are accepted.
func ParseQuestionPayload(payload string) ([]model.QuestionItem, error) {
	data := []byte(strings.TrimSpace(payload))
	if len(data) == 0 {
		return []model.QuestionItem{}, nil
	}

	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		data = []byte(strings.TrimSpace(inner))
	}

	var raw []storedQuestionItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("question payload: %v: %w", err, apperrors.ErrValidation)
	}

	items := make([]model.QuestionItem, 0, len(raw))
	for _, r := range raw {
		item := model.QuestionItem{
			Question:     string(r.Question),
			Answer:       string(r.Answer),
			Feedback:     string(r.Feedback),
			Suggestions:  string(r.Suggestions),
			Alternatives: string(r.Alternatives),
		}
		if r.Rating != nil {
			rating := float64(*r.Rating)
			item.Rating = &rating
		}
		items = append(items, item)
	}
	return items, nil
}

type storedQuestionItem struct {
	Question     flexText    `json:"question"`
	Answer       flexText    `json:"answer"`
	Rating       *flexNumber `json:"rating"`
	Feedback     flexText    `json:"feedback"`
	Suggestions  flexText    `json:"suggestions"`
	Alternatives flexText    `json:"alternatives"`
}

// QuestionsFromItems numbers questions from 1 in payload order.
func QuestionsFromItems(items []model.QuestionItem) []model.Question {
	questions := make([]model.Question, 0, len(items))
	for i, item := range items {
		questions = append(questions, model.Question{
			Position: i + 1,
			Question: item.Question,
			Answer:   item.Answer,
		})
	}
	return questions
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp
}
