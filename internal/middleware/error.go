package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "hucha/internal/errors"
	"hucha/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the API's JSON error envelope. AppErrors keep their status
// and Spanish message; unexpected errors are logged and return a generic
// internal error so no detail leaks.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			body := gin.H{
				"status":  "error",
				"message": appErr.Message,
			}
			if len(appErr.Fields) > 0 {
				body["errors"] = appErr.Fields
			}
			c.JSON(appErr.StatusCode, body)
			return
		}

		// Unexpected error: log full details, return generic message
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"status":  "error",
			"message": apperrors.ErrInternalServer.Message,
		})
	}
}
