package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	interviewCollection  = "mock_interviews"
	submissionCollection = "interview_submissions"
)

type mongoInterviewRepository struct {
	collection *mongo.Collection
}

func NewMongoInterviewRepository(db *mongo.Database) InterviewRepository {
	return &mongoInterviewRepository{
		collection: db.Collection(interviewCollection),
	}
}

func (r *mongoInterviewRepository) Create(ctx context.Context, interview *model.MockInterview) error {
	_, err := r.collection.InsertOne(ctx, interview)
	return err
}

func (r *mongoInterviewRepository) FindByID(ctx context.Context, id string) (*model.MockInterview, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "interview", id)
}

func (r *mongoInterviewRepository) FindByMockID(ctx context.Context, mockID string) (*model.MockInterview, error) {
	return r.findOne(ctx, bson.M{"mockId": mockID}, "interview with mock id", mockID)
}

func (r *mongoInterviewRepository) findOne(ctx context.Context, filter bson.M, what, key string) (*model.MockInterview, error) {
	var interview model.MockInterview
	err := r.collection.FindOne(ctx, filter).Decode(&interview)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s %s: %w", what, key, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &interview, nil
}

func (r *mongoInterviewRepository) FindAllByCreator(ctx context.Context, createdBy string) ([]model.MockInterview, error) {
	filter := bson.M{}
	if createdBy != "" {
		filter["createdBy"] = createdBy
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	interviews := make([]model.MockInterview, 0)
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

type mongoSubmissionRepository struct {
	collection *mongo.Collection
}

func NewMongoSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepository{
		collection: db.Collection(submissionCollection),
	}
}

func (r *mongoSubmissionRepository) Create(ctx context.Context, submission *model.InterviewSubmission) error {
	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

func submissionFilter(interviewID, mockID string) bson.M {
	return bson.M{"$or": []bson.M{
		{"interviewId": interviewID},
		{"interviewId": bson.M{"$in": []interface{}{"", nil}}, "mockId": mockID},
	}}
}

func (r *mongoSubmissionRepository) FindLatestForInterview(ctx context.Context, interviewID, mockID string) (*model.InterviewSubmission, error) {
	var submission model.InterviewSubmission
	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	err := r.collection.FindOne(ctx, submissionFilter(interviewID, mockID), opts).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *mongoSubmissionRepository) FindAllForInterview(ctx context.Context, interviewID, mockID string) ([]model.InterviewSubmission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, submissionFilter(interviewID, mockID), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]model.InterviewSubmission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// EnsureMongoIndexes creates the lookup indexes used by both repositories.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(interviewCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "mockId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create interview indexes: %w", err)
	}
	_, err = db.Collection(submissionCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "interviewId", Value: 1}, {Key: "submittedAt", Value: -1}}},
		{Keys: bson.D{{Key: "mockId", Value: 1}, {Key: "submittedAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create submission indexes: %w", err)
	}
	return nil
}
