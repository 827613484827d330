package model

import "time"

// MockInterview is an interview definition created by the setup flow. JSONMockResp keeps
// the generated question set exactly as it was stored.
type MockInterview struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	MockID        string    `gorm:"type:varchar(36);uniqueIndex;not null" bson:"mockId" json:"mockId"`
	JSONMockResp  string    `gorm:"column:json_mock_resp;type:text;not null" bson:"jsonMockResp" json:"jsonMockResp"`
	JobPosition   string    `gorm:"not null" bson:"jobPosition" json:"jobPosition"`
	JobDesc       string    `gorm:"type:text;not null" bson:"jobDesc" json:"jobDesc"`
	JobExperience string    `gorm:"not null" bson:"jobExperience" json:"jobExperience"`
	CreatedBy     string    `gorm:"not null;index" bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time `gorm:"not null" bson:"createdAt" json:"createdAt"`
}

func (MockInterview) TableName() string {
	return "mock_interviews"
}
