package model

import (
	"time"

	"github.com/lshigami/mockview/internal/speech"
)

type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
	SessionSubmitted  SessionState = "submitted"
)

// NoAnswerRecorded is stored when a recording stops without any finalized speech.
const NoAnswerRecorded = "No answer recorded"

// NoAnswerProvided pads results for questions the submission has no answer for.
const NoAnswerProvided = "No answer provided"

// Recording is the active answer capture for the current question.
type Recording struct {
	StartedAt   time.Time          `json:"startedAt"`
	Transcript  speech.Transcript  `json:"transcript"`
	Recognition speech.Recognition `json:"recognition"`
}

// InterviewSession is one in-flight attempt. Answers, Feedback and AudioURLs are
// index-aligned with Questions.
type InterviewSession struct {
	ID           string       `json:"id"`
	InterviewID  string       `json:"interviewId"`
	MockID       string       `json:"mockId"`
	Questions    []Question   `json:"questions"`
	State        SessionState `json:"state"`
	CurrentIndex int          `json:"currentIndex"`
	Answers      []string     `json:"answers"`
	Feedback     []*Feedback  `json:"feedback"`
	AudioURLs    []string     `json:"audioUrls"`
	Recording    *Recording   `json:"recording,omitempty"`
	SubmissionID string       `json:"submissionId,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (s *InterviewSession) IsRecording() bool {
	return s.Recording != nil
}

// CurrentQuestion returns nil once the session has moved past the last question.
func (s *InterviewSession) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}
