package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into the 500 envelope. The panic value and stack are only
// included in the body outside production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		stack := string(debug.Stack())
		log.Error().
			Str("path", ctx.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", stack).
			Msg("Recovered from panic")

		resp := dto.Response{Success: false, Message: "Internal server error"}
		if !production {
			resp.Error = fmt.Sprintf("%v\n%s", recovered, stack)
		}
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}
