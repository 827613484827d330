package service

import (
	"context"
	"io"
	"sort"

	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, interview *model.MockInterview) error {
	args := m.Called(ctx, interview)
	return args.Error(0)
}

func (m *MockInterviewRepo) FindByID(ctx context.Context, id string) (*model.MockInterview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MockInterview), args.Error(1)
}

func (m *MockInterviewRepo) FindByMockID(ctx context.Context, mockID string) (*model.MockInterview, error) {
	args := m.Called(ctx, mockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MockInterview), args.Error(1)
}

func (m *MockInterviewRepo) FindAllByCreator(ctx context.Context, createdBy string) ([]model.MockInterview, error) {
	args := m.Called(ctx, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MockInterview), args.Error(1)
}

type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Create(ctx context.Context, submission *model.InterviewSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepo) FindLatestForInterview(ctx context.Context, interviewID, mockID string) (*model.InterviewSubmission, error) {
	args := m.Called(ctx, interviewID, mockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InterviewSubmission), args.Error(1)
}

func (m *MockSubmissionRepo) FindAllForInterview(ctx context.Context, interviewID, mockID string) ([]model.InterviewSubmission, error) {
	args := m.Called(ctx, interviewID, mockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InterviewSubmission), args.Error(1)
}

type MockFeedbackGenerator struct {
	mock.Mock
}

func (m *MockFeedbackGenerator) Generate(ctx context.Context, question, answer string) *model.Feedback {
	args := m.Called(ctx, question, answer)
	return args.Get(0).(*model.Feedback)
}

type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) Generate(ctx context.Context, input InterviewInput) ([]model.QuestionItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuestionItem), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitInterview(ctx context.Context, req dto.SubmitInterviewRequest) (*dto.SubmissionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmissionResponse), args.Error(1)
}

func (m *MockSubmissionService) ListSubmissions(ctx context.Context, interviewID string) ([]dto.SubmissionResponse, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SubmissionResponse), args.Error(1)
}

type MockAudioStore struct {
	mock.Mock
}

func (m *MockAudioStore) Save(ctx context.Context, sessionID string, index int, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, sessionID, index, filename, r)
	return args.String(0), args.Error(1)
}

// fakeSubmissionRepo keeps submissions in memory with the same matching rules as the
// real repositories.
type fakeSubmissionRepo struct {
	records []model.InterviewSubmission
}

func (f *fakeSubmissionRepo) Create(_ context.Context, submission *model.InterviewSubmission) error {
	f.records = append(f.records, *submission)
	return nil
}

func (f *fakeSubmissionRepo) matching(interviewID, mockID string) []model.InterviewSubmission {
	var out []model.InterviewSubmission
	for _, r := range f.records {
		if r.InterviewID == interviewID || (r.InterviewID == "" && r.MockID == mockID) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out
}

func (f *fakeSubmissionRepo) FindLatestForInterview(_ context.Context, interviewID, mockID string) (*model.InterviewSubmission, error) {
	found := f.matching(interviewID, mockID)
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (f *fakeSubmissionRepo) FindAllForInterview(_ context.Context, interviewID, mockID string) ([]model.InterviewSubmission, error) {
	return f.matching(interviewID, mockID), nil
}
