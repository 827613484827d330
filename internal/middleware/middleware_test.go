package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func panicRouter(production bool) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(production))
	r.GET("/boom", func(ctx *gin.Context) {
		panic("kaboom")
	})
	return r
}

func TestRecovery_DevelopmentIncludesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	panicRouter(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "kaboom")
}

func TestRecovery_ProductionHidesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	panicRouter(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Message)
}

type experienceForm struct {
	Years string `json:"years" binding:"required,experience"`
}

func TestExperienceValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())

	cases := map[string]bool{"0": true, " 3 ": true, "50": true, "51": false, "-1": false, "three": false}
	for input, ok := range cases {
		err := binding.Validator.ValidateStruct(experienceForm{Years: input})
		if ok {
			assert.NoError(t, err, input)
		} else {
			assert.Error(t, err, input)
		}
	}
}
