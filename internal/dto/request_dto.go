package dto

type CreateInterviewRequest struct {
	JobPosition   string `json:"jobPosition" binding:"required,max=200"`
	JobDesc       string `json:"jobDesc" binding:"required,max=2000"`
	JobExperience string `json:"jobExperience" binding:"required,experience"` // whole years, 0-50
	CreatedBy     string `json:"createdBy" binding:"required"`
}

type FeedbackRequest struct {
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	Feedback     string  `json:"feedback"`
	Suggestions  string  `json:"suggestions"`
	Alternatives string  `json:"alternatives"`
}

// SubmitInterviewRequest carries a finished attempt. Feedback entries are index-aligned
// with Answers and may be null for questions that were never evaluated.
type SubmitInterviewRequest struct {
	InterviewID string             `json:"interviewId" binding:"required"`
	Answers     []string           `json:"answers" binding:"required"`
	Feedback    []*FeedbackRequest `json:"feedback" binding:"omitempty,dive,omitempty"`
	AudioURLs   []string           `json:"audioUrls"`
}

type CreateSessionRequest struct {
	InterviewID string `json:"interviewId" binding:"required"`
}

// StartRecordingRequest reports what the browser can do before capture starts.
type StartRecordingRequest struct {
	SpeechSupported   bool `json:"speechSupported"`
	MicrophoneGranted bool `json:"microphoneGranted"`
}

type RecognitionEventRequest struct {
	Type    string `json:"type" binding:"required,oneof=result error end restarted"`
	Text    string `json:"text"`
	Final   bool   `json:"final"`
	Message string `json:"message"`
}

type StopRecordingRequest struct {
	Transcript string `json:"transcript"` // optional client-side display text
}
