package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("context: %w", err) }

	assert.Equal(t, http.StatusNotFound, StatusFor(wrap(apperrors.ErrNotFound)))
	assert.Equal(t, http.StatusBadRequest, StatusFor(wrap(apperrors.ErrValidation)))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(wrap(apperrors.ErrDeviceUnavailable)))
	assert.Equal(t, http.StatusConflict, StatusFor(wrap(apperrors.ErrInvalidState)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(wrap(apperrors.ErrUpstream)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}
