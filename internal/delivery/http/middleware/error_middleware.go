package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matching-service/internal/delivery/http/response"
	"go-matching-service/pkg/apperror"
	"go-matching-service/pkg/logger"
)

// ErrorHandler translates errors attached to the context into the standard
// JSON error envelope. Unknown errors are logged server-side and reported to
// the client as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && logger.Log != nil {
				logger.Log.Error("request failed",
					"error", err.Error(),
					"cause", errString(appErr.Err),
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		if logger.Log != nil {
			logger.Log.Error("unhandled error",
				"error", err.Error(),
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
