package model

import (
	"time"

	"gorm.io/datatypes"
)

// InterviewSubmission is one completed attempt. Records are inserted and never updated;
// the latest SubmittedAt wins when results are displayed.
type InterviewSubmission struct {
	ID              string                                `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	InterviewID     string                                `gorm:"type:varchar(36);index" bson:"interviewId" json:"interviewId"`
	MockID          string                                `gorm:"type:varchar(36);index" bson:"mockId" json:"mockId"`
	Answers         datatypes.JSONSlice[SubmissionAnswer] `gorm:"type:jsonb" bson:"answers" json:"answers"`
	OverallFeedback string                                `gorm:"type:text" bson:"overallFeedback" json:"overallFeedback"`
	TotalScore      float64                               `bson:"totalScore" json:"totalScore"`
	SubmittedAt     time.Time                             `gorm:"not null;index" bson:"submittedAt" json:"submittedAt"`
	EvaluatedAt     *time.Time                            `bson:"evaluatedAt,omitempty" json:"evaluatedAt,omitempty"`
}

func (InterviewSubmission) TableName() string {
	return "interview_submissions"
}
