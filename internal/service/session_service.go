package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mockview/config"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/lshigami/mockview/internal/repository"
	"github.com/lshigami/mockview/internal/speech"
	"github.com/rs/zerolog/log"
)

// Recognition event types accepted by RecognitionEvent.
const (
	EventResult    = "result"
	EventError     = "error"
	EventEnd       = "end"
	EventRestarted = "restarted"
)

// SessionService drives one attempt through
// not_started -> in_progress -> completed -> submitted.
// Every call loads the session, applies the change and saves it under a per-session lock.
// A call that fails leaves the stored session untouched.
type SessionService interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Begin(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	StartRecording(ctx context.Context, sessionID string, req dto.StartRecordingRequest) (*dto.SessionResponse, error)
	RecognitionEvent(ctx context.Context, sessionID string, req dto.RecognitionEventRequest) (*dto.RecognitionEventResponse, error)
	StopRecording(ctx context.Context, sessionID string, req dto.StopRecordingRequest) (*dto.AnswerResponse, error)
	AttachAudio(ctx context.Context, sessionID string, filename string, r io.Reader) (*dto.AudioResponse, error)
	Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*dto.SubmitSessionResponse, error)
	Feedback(ctx context.Context, sessionID string, index int) (*dto.FeedbackResponse, error)
}

type sessionService struct {
	store       repository.SessionStore
	interviews  InterviewService
	feedback    FeedbackGenerator
	submissions SubmissionService
	audio       AudioStore
	maxRetries  int
	timeLimit   time.Duration
	locks       *sessionLocks
	now         func() time.Time
}

func NewSessionService(
	store repository.SessionStore,
	interviews InterviewService,
	feedback FeedbackGenerator,
	submissions SubmissionService,
	audio AudioStore,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		store:       store,
		interviews:  interviews,
		feedback:    feedback,
		submissions: submissions,
		audio:       audio,
		maxRetries:  cfg.Interview.RecognitionMaxRetries,
		timeLimit:   cfg.Interview.AnswerTimeLimit,
		locks:       newSessionLocks(),
		now:         time.Now,
	}
}

func (s *sessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	interview, err := s.interviews.ResolveInterview(ctx, req.InterviewID)
	if err != nil {
		return nil, err
	}
	items, err := ParseQuestionPayload(interview.JSONMockResp)
	if err != nil {
		return nil, err
	}
	questions := QuestionsFromItems(items)
	if len(questions) == 0 {
		return nil, fmt.Errorf("interview %s has no questions: %w", interview.ID, apperrors.ErrValidation)
	}

	now := s.now().UTC()
	session := &model.InterviewSession{
		ID:          uuid.NewString(),
		InterviewID: interview.ID,
		MockID:      interview.MockID,
		Questions:   questions,
		State:       model.SessionNotStarted,
		Answers:     make([]string, len(questions)),
		Feedback:    make([]*model.Feedback, len(questions)),
		AudioURLs:   make([]string, len(questions)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		log.Error().Err(err).Str("interviewID", interview.ID).Msg("Failed to save new session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	log.Info().Str("sessionID", session.ID).Str("interviewID", interview.ID).Msg("Interview session created")
	return s.toResponse(session), nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

func (s *sessionService) Begin(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if session.State != model.SessionNotStarted {
			return invalidState(session, "begin")
		}
		session.State = model.SessionInProgress
		session.CurrentIndex = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

func (s *sessionService) StartRecording(ctx context.Context, sessionID string, req dto.StartRecordingRequest) (*dto.SessionResponse, error) {
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if session.State != model.SessionInProgress || session.IsRecording() {
			return invalidState(session, "start recording")
		}
		if !req.SpeechSupported {
			return fmt.Errorf("speech recognition is not supported by this browser: %w", apperrors.ErrDeviceUnavailable)
		}
		if !req.MicrophoneGranted {
			return fmt.Errorf("microphone access was not granted: %w", apperrors.ErrDeviceUnavailable)
		}

		recognition := speech.NewRecognition(s.maxRetries)
		recognition.Start()
		session.Recording = &model.Recording{
			StartedAt:   s.now().UTC(),
			Recognition: recognition,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

func (s *sessionService) RecognitionEvent(ctx context.Context, sessionID string, req dto.RecognitionEventRequest) (*dto.RecognitionEventResponse, error) {
	directive := speech.DirectiveNone
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if !session.IsRecording() {
			return invalidState(session, "apply recognition event")
		}
		rec := session.Recording
		switch req.Type {
		case EventResult:
			rec.Transcript.Apply(req.Text, req.Final)
			rec.Recognition.Result()
		case EventError:
			rec.Recognition.Error(req.Message)
			log.Warn().Str("sessionID", session.ID).Str("error", req.Message).Msg("Speech recognition error")
		case EventEnd:
			directive = rec.Recognition.End()
			if directive == speech.DirectiveFailed {
				log.Warn().Str("sessionID", session.ID).Int("retries", rec.Recognition.Retries).Msg("Speech recognition gave up after retries")
			}
		case EventRestarted:
			rec.Recognition.Restarted()
		default:
			return fmt.Errorf("unknown recognition event %q: %w", req.Type, apperrors.ErrValidation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rec := session.Recording
	return &dto.RecognitionEventResponse{
		Transcript:       rec.Transcript.Display(),
		Directive:        string(directive),
		RecognitionState: string(rec.Recognition.State),
		Retries:          rec.Recognition.Retries,
	}, nil
}

func (s *sessionService) StopRecording(ctx context.Context, sessionID string, req dto.StopRecordingRequest) (*dto.AnswerResponse, error) {
	var index int
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if !session.IsRecording() {
			return invalidState(session, "stop recording")
		}
		index = session.CurrentIndex
		s.finishRecording(ctx, session, req.Transcript)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AnswerResponse{
		Index:    index,
		Answer:   session.Answers[index],
		Feedback: toFeedbackResponse(session.Feedback[index]),
	}, nil
}

// finishRecording stores the answer for the current question and requests feedback when
// something was said. The recording is closed either way.
func (s *sessionService) finishRecording(ctx context.Context, session *model.InterviewSession, clientTranscript string) {
	rec := session.Recording
	rec.Recognition.Cancel()

	text := rec.Transcript.Finalize()
	if clientTranscript = strings.TrimSpace(clientTranscript); clientTranscript != "" {
		text = speech.StripInterim(clientTranscript)
	}

	index := session.CurrentIndex
	session.Recording = nil
	if text == "" {
		session.Answers[index] = model.NoAnswerRecorded
		session.Feedback[index] = nil
		log.Info().Str("sessionID", session.ID).Int("index", index).Msg("Recording stopped without speech")
		return
	}

	session.Answers[index] = text
	question := session.Questions[index].Question
	session.Feedback[index] = s.feedback.Generate(ctx, question, text)
	log.Info().Str("sessionID", session.ID).Int("index", index).Float64("rating", session.Feedback[index].Rating).Msg("Answer recorded")
}

func (s *sessionService) AttachAudio(ctx context.Context, sessionID string, filename string, r io.Reader) (*dto.AudioResponse, error) {
	var index int
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if session.State != model.SessionInProgress {
			return invalidState(session, "attach audio")
		}
		index = session.CurrentIndex
		url, err := s.audio.Save(ctx, session.ID, index, filename, r)
		if err != nil {
			return err
		}
		session.AudioURLs[index] = url
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AudioResponse{Index: index, URL: session.AudioURLs[index]}, nil
}

func (s *sessionService) Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if session.State != model.SessionInProgress {
			return invalidState(session, "advance")
		}
		if session.IsRecording() {
			s.finishRecording(ctx, session, "")
		}
		session.CurrentIndex++
		if session.CurrentIndex >= len(session.Questions) {
			session.CurrentIndex = len(session.Questions)
			session.State = model.SessionCompleted
			log.Info().Str("sessionID", session.ID).Msg("Interview session completed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

func (s *sessionService) Submit(ctx context.Context, sessionID string) (*dto.SubmitSessionResponse, error) {
	session, err := s.mutate(ctx, sessionID, func(session *model.InterviewSession) error {
		if session.State != model.SessionCompleted {
			return invalidState(session, "submit")
		}

		req := dto.SubmitInterviewRequest{
			InterviewID: session.InterviewID,
			Answers:     session.Answers,
			Feedback:    make([]*dto.FeedbackRequest, len(session.Feedback)),
			AudioURLs:   session.AudioURLs,
		}
		for i, f := range session.Feedback {
			if f == nil {
				continue
			}
			req.Feedback[i] = &dto.FeedbackRequest{
				Rating:       f.Rating,
				Feedback:     f.Feedback,
				Suggestions:  f.Suggestions,
				Alternatives: f.Alternatives,
			}
		}

		submission, err := s.submissions.SubmitInterview(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("sessionID", session.ID).Msg("Session submission failed")
			return err
		}
		session.SubmissionID = submission.ID
		session.State = model.SessionSubmitted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SubmitSessionResponse{
		SubmissionID: session.SubmissionID,
		ResultsURL:   resultsURL(session),
	}, nil
}

func (s *sessionService) Feedback(ctx context.Context, sessionID string, index int) (*dto.FeedbackResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Feedback) || session.Feedback[index] == nil {
		return nil, fmt.Errorf("feedback for question %d of session %s: %w", index, sessionID, apperrors.ErrNotFound)
	}
	return toFeedbackResponse(session.Feedback[index]), nil
}

func (s *sessionService) mutate(ctx context.Context, sessionID string, fn func(*model.InterviewSession) error) (*model.InterviewSession, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to save session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

func invalidState(session *model.InterviewSession, action string) error {
	return fmt.Errorf("cannot %s in state %s (recording=%t): %w", action, session.State, session.IsRecording(), apperrors.ErrInvalidState)
}

func resultsURL(session *model.InterviewSession) string {
	return "/api/v1/interview-results/" + session.MockID
}

func (s *sessionService) toResponse(session *model.InterviewSession) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:             session.ID,
		InterviewID:    session.InterviewID,
		MockID:         session.MockID,
		State:          string(session.State),
		CurrentIndex:   session.CurrentIndex,
		TotalQuestions: len(session.Questions),
		Answers:        session.Answers,
		Feedback:       make([]*dto.FeedbackResponse, len(session.Feedback)),
		AudioURLs:      session.AudioURLs,
		SubmissionID:   session.SubmissionID,
	}
	for i, f := range session.Feedback {
		resp.Feedback[i] = toFeedbackResponse(f)
	}
	if q := session.CurrentQuestion(); q != nil && session.State == model.SessionInProgress {
		resp.CurrentQuestion = &dto.QuestionResponse{Position: q.Position, Question: q.Question}
	}
	if session.State == model.SessionSubmitted {
		resp.ResultsURL = resultsURL(session)
	}
	if rec := session.Recording; rec != nil {
		elapsed := ElapsedSeconds(rec.StartedAt, s.now())
		resp.Recording = &dto.RecordingResponse{
			StartedAt:        rec.StartedAt,
			ElapsedSeconds:   elapsed,
			TimeLimitSeconds: int(s.timeLimit / time.Second),
			OverTimeLimit:    s.timeLimit > 0 && time.Duration(elapsed)*time.Second > s.timeLimit,
			Transcript:       rec.Transcript.Display(),
			RecognitionState: string(rec.Recognition.State),
			Retries:          rec.Recognition.Retries,
		}
	}
	return resp
}

// ElapsedSeconds is the whole number of seconds since start, never negative.
func ElapsedSeconds(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

func toFeedbackResponse(f *model.Feedback) *dto.FeedbackResponse {
	if f == nil {
		return nil
	}
	return &dto.FeedbackResponse{
		Rating:       f.Rating,
		Feedback:     f.Feedback,
		Suggestions:  f.Suggestions,
		Alternatives: f.Alternatives,
	}
}
