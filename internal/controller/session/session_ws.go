package session

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lshigami/mockview/internal/controller"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 10
	inboxSize      = 16
	handleTimeout  = 60 * time.Second

	// messageStop ends the current recording. Every other type is a recognition event.
	messageStop = "stop"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamMessage is one client frame: a recognition event or a stop request.
type streamMessage struct {
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
	Final      bool   `json:"final,omitempty"`
	Message    string `json:"message,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// streamReply wraps every server frame.
type streamReply struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status,omitempty"`
}

// Stream godoc
// @Summary Stream recognition events over a websocket
// @Description Client frames: {"type":"result|error|end|restarted",...} and {"type":"stop","transcript":"..."}.
// @Description Server frames: {"type":"recognition"|"answer"|"error","data":...}.
// @Tags Sessions
// @Param session_id path string true "Session ID"
// @Success 101 "Switching Protocols"
// @Failure 404 {object} dto.Response "Session not found"
// @Router /sessions/{session_id}/ws [get]
func (c *SessionController) Stream(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	if _, err := c.sessionService.Get(ctx.Request.Context(), sessionID); err != nil {
		c.respond.Error(ctx, err, "Failed to load session", sessionNotFound)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("WebSocket upgrade error")
		return
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	s := &stream{
		conn:       conn,
		sessionID:  sessionID,
		sessions:   c.sessionService,
		production: c.respond.Production,
		ctx:        streamCtx,
		cancel:     cancel,
		inbox:      make(chan streamMessage, inboxSize),
	}
	go s.pingLoop()
	go s.processLoop()
	s.readLoop()
}

// stream serves one websocket. readLoop owns the connection's lifetime: when it exits,
// ctx is cancelled so in-flight service calls stop with the client.
type stream struct {
	conn       *websocket.Conn
	sessionID  string
	sessions   service.SessionService
	production bool
	writeMu    sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	inbox      chan streamMessage
}

func (s *stream) readLoop() {
	defer func() {
		s.cancel()
		close(s.inbox)
		s.conn.Close()
		log.Info().Str("sessionID", s.sessionID).Msg("Session stream closed")
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("sessionID", s.sessionID).Msg("Session stream read error")
			}
			return
		}

		var msg streamMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.write(streamReply{Type: "error", Message: "Malformed message", Status: http.StatusBadRequest})
			continue
		}
		s.inbox <- msg
	}
}

// processLoop applies messages in arrival order, one at a time.
func (s *stream) processLoop() {
	for msg := range s.inbox {
		reply := s.handle(msg)
		if s.ctx.Err() != nil {
			continue
		}
		if err := s.write(reply); err != nil {
			log.Warn().Err(err).Str("sessionID", s.sessionID).Msg("Session stream write error")
			s.conn.Close()
		}
	}
}

func (s *stream) handle(msg streamMessage) streamReply {
	ctx, cancel := context.WithTimeout(s.ctx, handleTimeout)
	defer cancel()

	if msg.Type == messageStop {
		answer, err := s.sessions.StopRecording(ctx, s.sessionID, dto.StopRecordingRequest{Transcript: msg.Transcript})
		if err != nil {
			return s.errorReply(err)
		}
		return streamReply{Type: "answer", Data: answer}
	}

	resp, err := s.sessions.RecognitionEvent(ctx, s.sessionID, dto.RecognitionEventRequest{
		Type:    msg.Type,
		Text:    msg.Text,
		Final:   msg.Final,
		Message: msg.Message,
	})
	if err != nil {
		return s.errorReply(err)
	}
	return streamReply{Type: "recognition", Data: resp}
}

func (s *stream) errorReply(err error) streamReply {
	status := controller.StatusFor(err)
	reply := streamReply{Type: "error", Message: err.Error(), Status: status}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("sessionID", s.sessionID).Msg("Session stream operation failed")
		if s.production {
			reply.Message = "Internal server error"
		}
	}
	return reply
}

func (s *stream) write(reply streamReply) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(reply)
}

func (s *stream) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		case <-s.ctx.Done():
			return
		}
	}
}
