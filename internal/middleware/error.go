package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/holidaypulse/internal/domain/dto"
	"github.com/guttosm/holidaypulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON response
// when the handler chain did not write one itself.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If nothing was written and c.Errors is non-empty, responds with the
//     last error. A dto.ErrorResponse passes through with status 400;
//     anything else becomes a 500 with a generic message.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	var resp dto.ErrorResponse
	if errors.As(err, &resp) {
		c.AbortWithStatusJSON(http.StatusBadRequest, resp)
		return
	}

	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with status.
//
// Parameters:
//   - c: the request context.
//   - status: HTTP status code to send.
//   - message: client-facing description.
//   - err: underlying error, recorded in ErrorDetails and in c.Errors.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
