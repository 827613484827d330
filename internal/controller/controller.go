package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockview/internal/dto"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/rs/zerolog/log"
)

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDeviceUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Responder writes the API envelope. Error details for server faults are only exposed
// outside production.
type Responder struct {
	Production bool
}

func (r Responder) OK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{Success: true, Data: data})
}

func (r Responder) OKWithMessage(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusOK, dto.Response{Success: true, Data: data, Message: message})
}

func (r Responder) Created(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusCreated, dto.Response{Success: true, Data: data, Message: message})
}

func (r Responder) BadRequest(ctx *gin.Context, message string, err error) {
	resp := dto.Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// Error logs err and replies with the status it maps to. notFoundMessage is used for 404s.
func (r Responder) Error(ctx *gin.Context, err error, message, notFoundMessage string) {
	status := StatusFor(err)
	resp := dto.Response{Success: false, Message: message}

	switch status {
	case http.StatusNotFound:
		resp.Message = notFoundMessage
		log.Warn().Err(err).Str("path", ctx.Request.URL.Path).Msg(notFoundMessage)
	case http.StatusInternalServerError:
		log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg(message)
		if !r.Production {
			resp.Error = err.Error()
		}
	default:
		resp.Error = err.Error()
		log.Warn().Err(err).Str("path", ctx.Request.URL.Path).Int("status", status).Msg(message)
	}
	ctx.JSON(status, resp)
}
