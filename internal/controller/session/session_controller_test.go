package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lshigami/mockview/config"
	"github.com/lshigami/mockview/internal/dto"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) session(args mock.Arguments) (*dto.SessionResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionResponse), args.Error(1)
}

func (m *MockSessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	return m.session(m.Called(ctx, req))
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return m.session(m.Called(ctx, sessionID))
}

func (m *MockSessionService) Begin(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return m.session(m.Called(ctx, sessionID))
}

func (m *MockSessionService) StartRecording(ctx context.Context, sessionID string, req dto.StartRecordingRequest) (*dto.SessionResponse, error) {
	return m.session(m.Called(ctx, sessionID, req))
}

func (m *MockSessionService) RecognitionEvent(ctx context.Context, sessionID string, req dto.RecognitionEventRequest) (*dto.RecognitionEventResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecognitionEventResponse), args.Error(1)
}

func (m *MockSessionService) StopRecording(ctx context.Context, sessionID string, req dto.StopRecordingRequest) (*dto.AnswerResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnswerResponse), args.Error(1)
}

func (m *MockSessionService) AttachAudio(ctx context.Context, sessionID string, filename string, r io.Reader) (*dto.AudioResponse, error) {
	args := m.Called(ctx, sessionID, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AudioResponse), args.Error(1)
}

func (m *MockSessionService) Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return m.session(m.Called(ctx, sessionID))
}

func (m *MockSessionService) Submit(ctx context.Context, sessionID string) (*dto.SubmitSessionResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitSessionResponse), args.Error(1)
}

func (m *MockSessionService) Feedback(ctx context.Context, sessionID string, index int) (*dto.FeedbackResponse, error) {
	args := m.Called(ctx, sessionID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FeedbackResponse), args.Error(1)
}

func newRouter(svc *MockSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSessionController(svc, &config.Config{Server: config.Server{Env: "development"}}).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, dto.Response) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCreateSession(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Create", mock.Anything, dto.CreateSessionRequest{InterviewID: "mock-1"}).
		Return(&dto.SessionResponse{ID: "s1", State: "not_started"}, nil)

	w, resp := doJSON(newRouter(svc), http.MethodPost, "/api/v1/sessions", map[string]string{"interviewId": "mock-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "s1", resp.Data.(map[string]interface{})["id"])
}

func TestStartRecording_DeviceUnavailable(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("StartRecording", mock.Anything, "s1", dto.StartRecordingRequest{SpeechSupported: false, MicrophoneGranted: true}).
		Return(nil, fmt.Errorf("no speech api: %w", apperrors.ErrDeviceUnavailable))

	w, resp := doJSON(newRouter(svc), http.MethodPost, "/api/v1/sessions/s1/recording/start",
		map[string]bool{"speechSupported": false, "microphoneGranted": true})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "no speech api")
}

func TestStopRecording_WithoutBody(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("StopRecording", mock.Anything, "s1", dto.StopRecordingRequest{}).
		Return(&dto.AnswerResponse{Index: 0, Answer: "No answer recorded"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/recording/stop", nil)
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"feedback":null`)
}

func TestNext_InvalidState(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Next", mock.Anything, "s1").Return(nil, fmt.Errorf("completed: %w", apperrors.ErrInvalidState))

	w, _ := doJSON(newRouter(svc), http.MethodPost, "/api/v1/sessions/s1/next", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmit(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Submit", mock.Anything, "s1").
		Return(&dto.SubmitSessionResponse{SubmissionID: "sub-1", ResultsURL: "/api/v1/interview-results/mock-1"}, nil)

	w, resp := doJSON(newRouter(svc), http.MethodPost, "/api/v1/sessions/s1/submit", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v1/interview-results/mock-1", resp.Data.(map[string]interface{})["resultsUrl"])
}

func TestGetFeedback(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Feedback", mock.Anything, "s1", 1).Return(nil, fmt.Errorf("none: %w", apperrors.ErrNotFound))
	r := newRouter(svc)

	w, resp := doJSON(r, http.MethodGet, "/api/v1/sessions/s1/feedback/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Feedback not found", resp.Message)

	w, _ = doJSON(r, http.MethodGet, "/api/v1/sessions/s1/feedback/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttachAudio(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("AttachAudio", mock.Anything, "s1", "answer.webm", mock.Anything).
		Return(&dto.AudioResponse{Index: 0, URL: "/audio/s1_q1.webm"}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("audio", "answer.webm")
	require.NoError(t, err)
	_, _ = part.Write([]byte("fake audio"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/recording/audio", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAttachAudio_MissingFile(t *testing.T) {
	svc := new(MockSessionService)
	w, _ := doJSON(newRouter(svc), http.MethodPost, "/api/v1/sessions/s1/recording/audio", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStream_RelaysEventsAndStop(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Get", mock.Anything, "s1").Return(&dto.SessionResponse{ID: "s1"}, nil)
	svc.On("RecognitionEvent", mock.Anything, "s1", dto.RecognitionEventRequest{Type: "end"}).
		Return(&dto.RecognitionEventResponse{Directive: "restart", RecognitionState: "retrying", Retries: 1}, nil)
	svc.On("StopRecording", mock.Anything, "s1", dto.StopRecordingRequest{Transcript: "hello [wor]"}).
		Return(&dto.AnswerResponse{Index: 0, Answer: "hello"}, nil)

	server := httptest.NewServer(newRouter(svc))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/sessions/s1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "end"}))
	var reply struct {
		Type string                       `json:"type"`
		Data dto.RecognitionEventResponse `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "recognition", reply.Type)
	assert.Equal(t, "restart", reply.Data.Directive)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "stop", "transcript": "hello [wor]"}))
	var answer struct {
		Type string             `json:"type"`
		Data dto.AnswerResponse `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&answer))
	assert.Equal(t, "answer", answer.Type)
	assert.Equal(t, "hello", answer.Data.Answer)
}

func TestStream_UnknownSession(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Get", mock.Anything, "nope").Return(nil, fmt.Errorf("nope: %w", apperrors.ErrNotFound))

	w, resp := doJSON(newRouter(svc), http.MethodGet, "/api/v1/sessions/nope/ws", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Session not found", resp.Message)
}

func TestStream_DisconnectCancelsInFlightStop(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan error, 1)

	svc := new(MockSessionService)
	svc.On("Get", mock.Anything, "s1").Return(&dto.SessionResponse{ID: "s1"}, nil)
	svc.On("StopRecording", mock.Anything, "s1", dto.StopRecordingRequest{}).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			close(started)
			select {
			case <-ctx.Done():
				finished <- ctx.Err()
			case <-time.After(5 * time.Second):
				finished <- nil
			}
		}).
		Return(nil, context.Canceled)

	server := httptest.NewServer(newRouter(svc))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/sessions/s1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "stop"}))
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("stop was never dispatched")
	}
	require.NoError(t, conn.Close())

	select {
	case err := <-finished:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("stop kept running after the client disconnected")
	}
}
