package middleware

import (
	"github.com/gin-gonic/gin"

	"warebill/internal/core/apperror"
	"warebill/internal/infrastructure/http/v1/dto"
	"warebill/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			// Log internal error if present
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, dto.NewErrorEnvelope(appErr.Code, appErr.Message, appErr.Details))
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(500, dto.NewErrorEnvelope(apperror.CodeInternal, "Internal server error", map[string]any{
			"request_id": c.GetString("request_id"),
		}))
	}
}
