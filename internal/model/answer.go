package model

// SubmissionAnswer is one answered question inside a submission.
type SubmissionAnswer struct {
	QuestionID   string  `json:"questionId" bson:"questionId"`
	QuestionText string  `json:"questionText" bson:"questionText"`
	UserAnswer   string  `json:"userAnswer" bson:"userAnswer"`
	IsCorrect    bool    `json:"isCorrect" bson:"isCorrect"`
	Feedback     string  `json:"feedback" bson:"feedback"`
	Score        float64 `json:"score" bson:"score"`
	Rating       float64 `json:"rating" bson:"rating"`
	Suggestions  string  `json:"suggestions" bson:"suggestions"`
	Alternatives string  `json:"alternatives" bson:"alternatives"`
	AudioURL     string  `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
}

// HasScoring reports whether the answer carries model feedback.
func (a SubmissionAnswer) HasScoring() bool {
	return a.Rating > 0 || a.Feedback != ""
}
