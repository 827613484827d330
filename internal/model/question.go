package model

// QuestionItem is one entry of the stored question payload. Only Question is required;
// the scoring fields are present when the payload was enriched after generation.
type QuestionItem struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Feedback     string   `json:"feedback,omitempty"`
	Suggestions  string   `json:"suggestions,omitempty"`
	Alternatives string   `json:"alternatives,omitempty"`
}

// Question is a question as presented during a session.
type Question struct {
	Position int    `json:"position"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}
