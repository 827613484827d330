package model

// Feedback is the model's evaluation of one answer.
type Feedback struct {
	Rating       float64 `json:"rating" bson:"rating"`
	Feedback     string  `json:"feedback" bson:"feedback"`
	Suggestions  string  `json:"suggestions" bson:"suggestions"`
	Alternatives string  `json:"alternatives,omitempty" bson:"alternatives,omitempty"`
}
