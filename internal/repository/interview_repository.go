package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/mockview/database"
	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *model.MockInterview) error
	FindByID(ctx context.Context, id string) (*model.MockInterview, error)
	FindByMockID(ctx context.Context, mockID string) (*model.MockInterview, error)
	FindAllByCreator(ctx context.Context, createdBy string) ([]model.MockInterview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository picks the implementation matching the configured storage.
func NewInterviewRepository(store *database.Storage) InterviewRepository {
	if store.Mongo != nil {
		return NewMongoInterviewRepository(store.Mongo)
	}
	return &interviewRepository{db: store.SQL}
}

func (r *interviewRepository) Create(ctx context.Context, interview *model.MockInterview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *interviewRepository) FindByID(ctx context.Context, id string) (*model.MockInterview, error) {
	var interview model.MockInterview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		return nil, translateGormError(err, "interview", id)
	}
	return &interview, nil
}

func (r *interviewRepository) FindByMockID(ctx context.Context, mockID string) (*model.MockInterview, error) {
	var interview model.MockInterview
	if err := r.db.WithContext(ctx).Where("mock_id = ?", mockID).First(&interview).Error; err != nil {
		return nil, translateGormError(err, "interview with mock id", mockID)
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByCreator(ctx context.Context, createdBy string) ([]model.MockInterview, error) {
	var interviews []model.MockInterview
	query := r.db.WithContext(ctx)
	if createdBy != "" {
		query = query.Where("created_by = ?", createdBy)
	}
	if err := query.Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

func translateGormError(err error, what, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", what, key, apperrors.ErrNotFound)
	}
	return err
}
