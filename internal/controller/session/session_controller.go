package session

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockview/config"
	"github.com/lshigami/mockview/internal/controller"
	"github.com/lshigami/mockview/internal/dto"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/lshigami/mockview/internal/service"
)

const sessionNotFound = "Session not found"

// maxAudioBytes bounds a single answer recording upload.
const maxAudioBytes = 25 << 20

type SessionController struct {
	sessionService service.SessionService
	respond        controller.Responder
}

func NewSessionController(ss service.SessionService, cfg *config.Config) *SessionController {
	return &SessionController{
		sessionService: ss,
		respond:        controller.Responder{Production: cfg.Server.IsProduction()},
	}
}

func (c *SessionController) RegisterRoutes(api *gin.RouterGroup) {
	sessions := api.Group("/sessions")
	sessions.POST("", c.CreateSession)
	sessions.GET("/:session_id", c.GetSession)
	sessions.POST("/:session_id/begin", c.Begin)
	sessions.POST("/:session_id/recording/start", c.StartRecording)
	sessions.POST("/:session_id/recording/events", c.RecognitionEvent)
	sessions.POST("/:session_id/recording/stop", c.StopRecording)
	sessions.POST("/:session_id/recording/audio", c.AttachAudio)
	sessions.POST("/:session_id/next", c.Next)
	sessions.POST("/:session_id/submit", c.Submit)
	sessions.GET("/:session_id/feedback/:index", c.GetFeedback)
	sessions.GET("/:session_id/ws", c.Stream)
}

// CreateSession godoc
// @Summary Start an interview attempt
// @Description Creates a session for the interview in state not_started.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Mock id or interview id"
// @Success 201 {object} dto.Response{data=dto.SessionResponse}
// @Failure 400 {object} dto.Response "Invalid input or interview without questions"
// @Failure 404 {object} dto.Response "Interview not found"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	session, err := c.sessionService.Create(ctx.Request.Context(), req)
	if err != nil {
		c.respond.Error(ctx, err, "Failed to create session", "Interview not found")
		return
	}
	c.respond.Created(ctx, session, "Session created")
}

// GetSession godoc
// @Summary Get session state
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 404 {object} dto.Response "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := c.sessionService.Get(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		c.respond.Error(ctx, err, "Failed to load session", sessionNotFound)
		return
	}
	c.respond.OK(ctx, session)
}

// Begin godoc
// @Summary Begin the interview
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 404 {object} dto.Response "Session not found"
// @Failure 409 {object} dto.Response "Session already started"
// @Router /sessions/{session_id}/begin [post]
func (c *SessionController) Begin(ctx *gin.Context) {
	session, err := c.sessionService.Begin(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		c.respond.Error(ctx, err, "Cannot begin session", sessionNotFound)
		return
	}
	c.respond.OK(ctx, session)
}

// StartRecording godoc
// @Summary Start recording an answer
// @Description The client reports speech recognition support and microphone permission.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param capabilities body dto.StartRecordingRequest true "Client capture capabilities"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 409 {object} dto.Response "Not in progress or already recording"
// @Failure 422 {object} dto.Response "Speech recognition or microphone unavailable"
// @Router /sessions/{session_id}/recording/start [post]
func (c *SessionController) StartRecording(ctx *gin.Context) {
	var req dto.StartRecordingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	session, err := c.sessionService.StartRecording(ctx.Request.Context(), ctx.Param("session_id"), req)
	if err != nil {
		c.respond.Error(ctx, err, "Cannot start recording", sessionNotFound)
		return
	}
	c.respond.OK(ctx, session)
}

// RecognitionEvent godoc
// @Summary Report a speech recognition event
// @Description Applies result, error, end or restarted events and returns the live transcript and a restart directive.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param event body dto.RecognitionEventRequest true "Recognition event"
// @Success 200 {object} dto.Response{data=dto.RecognitionEventResponse}
// @Failure 409 {object} dto.Response "No active recording"
// @Router /sessions/{session_id}/recording/events [post]
func (c *SessionController) RecognitionEvent(ctx *gin.Context) {
	var req dto.RecognitionEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.sessionService.RecognitionEvent(ctx.Request.Context(), ctx.Param("session_id"), req)
	if err != nil {
		c.respond.Error(ctx, err, "Cannot apply recognition event", sessionNotFound)
		return
	}
	c.respond.OK(ctx, resp)
}

// StopRecording godoc
// @Summary Stop recording and evaluate the answer
// @Description Stores the transcript and returns the generated feedback. Feedback is null when nothing was said.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param transcript body dto.StopRecordingRequest false "Optional client transcript"
// @Success 200 {object} dto.Response{data=dto.AnswerResponse}
// @Failure 409 {object} dto.Response "No active recording"
// @Router /sessions/{session_id}/recording/stop [post]
func (c *SessionController) StopRecording(ctx *gin.Context) {
	var req dto.StopRecordingRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			c.respond.BadRequest(ctx, "Invalid request body", err)
			return
		}
	}
	resp, err := c.sessionService.StopRecording(ctx.Request.Context(), ctx.Param("session_id"), req)
	if err != nil {
		c.respond.Error(ctx, err, "Cannot stop recording", sessionNotFound)
		return
	}
	c.respond.OK(ctx, resp)
}

// AttachAudio godoc
// @Summary Upload the recording of the current answer
// @Tags Sessions
// @Accept multipart/form-data
// @Produce json
// @Param session_id path string true "Session ID"
// @Param audio formData file true "Recorded audio"
// @Success 200 {object} dto.Response{data=dto.AudioResponse}
// @Failure 400 {object} dto.Response "Missing audio file"
// @Failure 409 {object} dto.Response "Session not in progress"
// @Router /sessions/{session_id}/recording/audio [post]
func (c *SessionController) AttachAudio(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxAudioBytes)
	header, err := ctx.FormFile("audio")
	if err != nil {
		c.respond.BadRequest(ctx, "Audio file is required", err)
		return
	}
	file, err := header.Open()
	if err != nil {
		c.respond.BadRequest(ctx, "Audio file is unreadable", err)
		return
	}
	defer file.Close()

	resp, err := c.sessionService.AttachAudio(ctx.Request.Context(), ctx.Param("session_id"), header.Filename, file)
	if err != nil {
		c.respond.Error(ctx, err, "Failed to store recording", sessionNotFound)
		return
	}
	c.respond.OK(ctx, resp)
}

// Next godoc
// @Summary Move to the next question
// @Description Stops an active recording first. After the last question the session is completed.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SessionResponse}
// @Failure 409 {object} dto.Response "Session not in progress"
// @Router /sessions/{session_id}/next [post]
func (c *SessionController) Next(ctx *gin.Context) {
	session, err := c.sessionService.Next(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		c.respond.Error(ctx, err, "Cannot advance session", sessionNotFound)
		return
	}
	c.respond.OK(ctx, session)
}

// Submit godoc
// @Summary Submit the completed session
// @Description Persists the answers and feedback. On failure the session stays completed and can be resubmitted.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.Response{data=dto.SubmitSessionResponse}
// @Failure 409 {object} dto.Response "Session not completed"
// @Failure 500 {object} dto.Response "Submission failed"
// @Router /sessions/{session_id}/submit [post]
func (c *SessionController) Submit(ctx *gin.Context) {
	resp, err := c.sessionService.Submit(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		c.respond.Error(ctx, err, "Failed to submit interview", sessionNotFound)
		return
	}
	c.respond.OKWithMessage(ctx, resp, "Interview submitted successfully")
}

// GetFeedback godoc
// @Summary Get feedback for an answered question
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Param index path int true "Zero-based question index"
// @Success 200 {object} dto.Response{data=dto.FeedbackResponse}
// @Failure 400 {object} dto.Response "Invalid index"
// @Failure 404 {object} dto.Response "No feedback for this question"
// @Router /sessions/{session_id}/feedback/{index} [get]
func (c *SessionController) GetFeedback(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		c.respond.BadRequest(ctx, "Invalid question index", fmt.Errorf("%q: %w", ctx.Param("index"), apperrors.ErrValidation))
		return
	}
	fb, err := c.sessionService.Feedback(ctx.Request.Context(), ctx.Param("session_id"), index)
	if err != nil {
		c.respond.Error(ctx, err, "Failed to load feedback", "Feedback not found")
		return
	}
	c.respond.OK(ctx, fb)
}
