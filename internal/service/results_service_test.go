package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultsFixture(interview *model.MockInterview) (ResultsService, *fakeSubmissionRepo) {
	repo := new(MockInterviewRepo)
	expectInterview(repo, interview)
	submissions := &fakeSubmissionRepo{}
	return NewResultsService(NewInterviewService(repo, new(MockQuestionGenerator)), submissions), submissions
}

func scoredAnswer(text string, rating float64, feedback string) model.SubmissionAnswer {
	return model.SubmissionAnswer{UserAnswer: text, Rating: rating, Feedback: feedback, Suggestions: "s-" + text}
}

func TestResults_MockIDAndPrimaryIDAgree(t *testing.T) {
	svc, submissions := newResultsFixture(fixtureInterview("Q1", "Q2"))
	_ = submissions.Create(context.Background(), &model.InterviewSubmission{
		ID: "sub-1", InterviewID: "interview-1", MockID: "mock-1",
		Answers:     []model.SubmissionAnswer{scoredAnswer("a1", 4, "ok"), scoredAnswer("a2", 5, "great")},
		SubmittedAt: fixtureCreatedAt.Add(time.Hour),
	})

	byMock, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)
	byID, err := svc.GetInterviewResults(context.Background(), "interview-1")
	require.NoError(t, err)

	assert.Equal(t, byMock, byID)
}

func TestResults_LengthsMatchQuestionCount(t *testing.T) {
	svc, submissions := newResultsFixture(fixtureInterview("Q1", "Q2", "Q3"))
	_ = submissions.Create(context.Background(), &model.InterviewSubmission{
		ID: "sub-1", InterviewID: "interview-1",
		Answers: []model.SubmissionAnswer{
			scoredAnswer("a1", 4, "f1"), scoredAnswer("a2", 5, "f2"), scoredAnswer("a3", 3, "f3"),
		},
		SubmittedAt: fixtureCreatedAt.Add(time.Hour),
	})

	res, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)

	assert.Len(t, res.Questions, 3)
	assert.Len(t, res.Answers, 3)
	assert.Len(t, res.Feedback, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, res.Answers)
	assert.Equal(t, "f2", res.Feedback[1].Feedback)
	assert.Equal(t, "s-a2", res.Feedback[1].Suggestions)
	require.NotNil(t, res.OverallRating)
	assert.Equal(t, 4.0, *res.OverallRating)
	assert.Equal(t, fixtureCreatedAt.Add(time.Hour), res.CompletedAt)
}

func TestResults_ShortSubmissionIsPadded(t *testing.T) {
	svc, submissions := newResultsFixture(fixtureInterview("Q1", "Q2", "Q3"))
	_ = submissions.Create(context.Background(), &model.InterviewSubmission{
		ID: "sub-1", InterviewID: "interview-1",
		Answers:     []model.SubmissionAnswer{scoredAnswer("a1", 4, "f1"), {UserAnswer: "a2"}},
		SubmittedAt: fixtureCreatedAt.Add(time.Hour),
	})

	res, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "a2", model.NoAnswerProvided}, res.Answers)
	assert.Equal(t, 4.0, res.Feedback[0].Rating)
	assert.Equal(t, DefaultRating, res.Feedback[1].Rating, "unscored answers keep the baseline")
	assert.Equal(t, DefaultFeedbackText, res.Feedback[1].Feedback)
	assert.Equal(t, DefaultFeedbackText, res.Feedback[2].Feedback)
}

func TestResults_WithoutSubmission(t *testing.T) {
	svc, _ := newResultsFixture(fixtureInterview("Q1", "Q2"))

	res, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)

	assert.Empty(t, res.Answers)
	assert.NotNil(t, res.Answers)
	assert.Len(t, res.Feedback, 2)
	assert.Equal(t, DefaultRating, res.Feedback[0].Rating)
	assert.Equal(t, "", res.Feedback[0].Suggestions)
	assert.Equal(t, fixtureCreatedAt, res.CompletedAt)
	assert.Equal(t, "Backend Engineer", res.InterviewDetails.JobPosition)
	assert.Equal(t, "mock-1", res.InterviewDetails.MockID)
}

func TestResults_LatestSubmissionWins(t *testing.T) {
	svc, submissions := newResultsFixture(fixtureInterview("Q1"))
	ctx := context.Background()
	_ = submissions.Create(ctx, &model.InterviewSubmission{
		ID: "old", InterviewID: "interview-1",
		Answers:     []model.SubmissionAnswer{scoredAnswer("first try", 2, "meh")},
		SubmittedAt: fixtureCreatedAt.Add(time.Hour),
	})
	_ = submissions.Create(ctx, &model.InterviewSubmission{
		ID: "new", InterviewID: "interview-1",
		Answers:     []model.SubmissionAnswer{scoredAnswer("second try", 5, "great")},
		SubmittedAt: fixtureCreatedAt.Add(2 * time.Hour),
	})

	res, err := svc.GetInterviewResults(ctx, "mock-1")
	require.NoError(t, err)

	assert.Len(t, submissions.records, 2)
	assert.Equal(t, []string{"second try"}, res.Answers)
	assert.Equal(t, "great", res.Feedback[0].Feedback)
}

func TestResults_LegacySubmissionMatchedByMockID(t *testing.T) {
	svc, submissions := newResultsFixture(fixtureInterview("Q1"))
	_ = submissions.Create(context.Background(), &model.InterviewSubmission{
		ID: "legacy", MockID: "mock-1",
		Answers:     []model.SubmissionAnswer{scoredAnswer("legacy answer", 3, "fine")},
		SubmittedAt: fixtureCreatedAt.Add(time.Hour),
	})

	res, err := svc.GetInterviewResults(context.Background(), "interview-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy answer"}, res.Answers)
}

func TestResults_Idempotent(t *testing.T) {
	svc, submissions := newResultsFixture(fixtureInterview("Q1", "Q2"))
	_ = submissions.Create(context.Background(), &model.InterviewSubmission{
		ID: "sub-1", InterviewID: "interview-1",
		Answers:     []model.SubmissionAnswer{scoredAnswer("a1", 4, "f1")},
		SubmittedAt: fixtureCreatedAt.Add(time.Hour),
	})

	first, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)
	second, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResults_UnknownInterview(t *testing.T) {
	svc, _ := newResultsFixture(fixtureInterview("Q1"))

	_, err := svc.GetInterviewResults(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOverallRating(t *testing.T) {
	r := OverallRating([]float64{4, 5, 3})
	require.NotNil(t, r)
	assert.Equal(t, 4.0, *r)

	assert.Nil(t, OverallRating(nil))
	assert.Nil(t, OverallRating([]float64{}))
}

func TestResults_UnreadablePayloadDegradesToEmpty(t *testing.T) {
	interview := fixtureInterview()
	interview.JSONMockResp = "not json at all"
	svc, _ := newResultsFixture(interview)

	res, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)

	assert.NotNil(t, res.Questions)
	assert.Empty(t, res.Questions)
	assert.Empty(t, res.Feedback)
	assert.Nil(t, res.OverallRating)
	assert.Equal(t, "Backend Engineer", res.InterviewDetails.JobPosition)
}

func TestResults_QuestionsAreTexts(t *testing.T) {
	svc, _ := newResultsFixture(fixtureInterview("Q1", "Q2"))

	res, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, res.Questions)
}

func TestResults_ZeroStoredRatingUsesDefault(t *testing.T) {
	interview := fixtureInterview()
	interview.JSONMockResp = `[{"question":"Q1","rating":0},{"question":"Q2","rating":"4.5","feedback":"kept"}]`
	svc, _ := newResultsFixture(interview)

	res, err := svc.GetInterviewResults(context.Background(), "mock-1")
	require.NoError(t, err)

	require.Len(t, res.Feedback, 2)
	assert.Equal(t, DefaultRating, res.Feedback[0].Rating)
	assert.Equal(t, 4.5, res.Feedback[1].Rating)
	assert.Equal(t, "kept", res.Feedback[1].Feedback)
}
