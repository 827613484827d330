package repository

import (
	"context"
	"errors"

	"github.com/lshigami/mockview/database"
	"github.com/lshigami/mockview/internal/model"
	"gorm.io/gorm"
)

// SubmissionRepository stores completed attempts. Lookups match the interview's primary
// id, and the mock id only for records written without a primary id.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.InterviewSubmission) error
	// FindLatestForInterview returns nil, nil when the interview has no submission yet.
	FindLatestForInterview(ctx context.Context, interviewID, mockID string) (*model.InterviewSubmission, error)
	FindAllForInterview(ctx context.Context, interviewID, mockID string) ([]model.InterviewSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(store *database.Storage) SubmissionRepository {
	if store.Mongo != nil {
		return NewMongoSubmissionRepository(store.Mongo)
	}
	return &submissionRepository{db: store.SQL}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.InterviewSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) forInterview(ctx context.Context, interviewID, mockID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Or("(interview_id = '' OR interview_id IS NULL) AND mock_id = ?", mockID).
		Order("submitted_at DESC")
}

func (r *submissionRepository) FindLatestForInterview(ctx context.Context, interviewID, mockID string) (*model.InterviewSubmission, error) {
	var submission model.InterviewSubmission
	err := r.forInterview(ctx, interviewID, mockID).First(&submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllForInterview(ctx context.Context, interviewID, mockID string) ([]model.InterviewSubmission, error) {
	var submissions []model.InterviewSubmission
	if err := r.forInterview(ctx, interviewID, mockID).Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
