package dto

import "time"

// Response is the envelope of every API reply.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type InterviewDetailsResponse struct {
	JobPosition   string `json:"jobPosition"`
	JobDesc       string `json:"jobDesc"`
	JobExperience string `json:"jobExperience"`
	CreatedBy     string `json:"createdBy"`
	MockID        string `json:"mockId"`
}

type QuestionResponse struct {
	Position int    `json:"position"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

type InterviewResponse struct {
	ID            string             `json:"id"`
	MockID        string             `json:"mockId"`
	JobPosition   string             `json:"jobPosition"`
	JobDesc       string             `json:"jobDesc"`
	JobExperience string             `json:"jobExperience"`
	CreatedBy     string             `json:"createdBy"`
	CreatedAt     time.Time          `json:"createdAt"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
}

type FeedbackResponse struct {
	Rating       float64 `json:"rating"`
	Feedback     string  `json:"feedback"`
	Suggestions  string  `json:"suggestions"`
	Alternatives string  `json:"alternatives"`
}

type InterviewResultsResponse struct {
	InterviewDetails InterviewDetailsResponse `json:"interviewDetails"`
	Questions        []string                 `json:"questions"`
	Answers          []string                 `json:"answers"`
	Feedback         []FeedbackResponse       `json:"feedback"`
	OverallRating    *float64                 `json:"overallRating"`
	CompletedAt      time.Time                `json:"completedAt"`
}

type SubmissionResponse struct {
	ID              string    `json:"id"`
	InterviewID     string    `json:"interviewId"`
	MockID          string    `json:"mockId"`
	TotalScore      float64   `json:"totalScore"`
	OverallFeedback string    `json:"overallFeedback"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

type RecordingResponse struct {
	StartedAt        time.Time `json:"startedAt"`
	ElapsedSeconds   int       `json:"elapsedSeconds"`
	TimeLimitSeconds int       `json:"timeLimitSeconds"`
	OverTimeLimit    bool      `json:"overTimeLimit"`
	Transcript       string    `json:"transcript"`
	RecognitionState string    `json:"recognitionState"`
	Retries          int       `json:"retries"`
}

type SessionResponse struct {
	ID              string              `json:"id"`
	InterviewID     string              `json:"interviewId"`
	MockID          string              `json:"mockId"`
	State           string              `json:"state"`
	CurrentIndex    int                 `json:"currentIndex"`
	TotalQuestions  int                 `json:"totalQuestions"`
	CurrentQuestion *QuestionResponse   `json:"currentQuestion,omitempty"`
	Answers         []string            `json:"answers"`
	Feedback        []*FeedbackResponse `json:"feedback"`
	AudioURLs       []string            `json:"audioUrls"`
	Recording       *RecordingResponse  `json:"recording,omitempty"`
	SubmissionID    string              `json:"submissionId,omitempty"`
	ResultsURL      string              `json:"resultsUrl,omitempty"`
}

type RecognitionEventResponse struct {
	Transcript       string `json:"transcript"`
	Directive        string `json:"directive"`
	RecognitionState string `json:"recognitionState"`
	Retries          int    `json:"retries"`
}

// AnswerResponse is returned when a recording stops. Feedback is nil when nothing was said.
type AnswerResponse struct {
	Index    int               `json:"index"`
	Answer   string            `json:"answer"`
	Feedback *FeedbackResponse `json:"feedback"`
}

type AudioResponse struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

type SubmitSessionResponse struct {
	SubmissionID string `json:"submissionId"`
	ResultsURL   string `json:"resultsUrl"`
}
