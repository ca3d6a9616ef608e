package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"bengkel-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers attached with c.Error but did not
// write themselves. Public errors carry their response; private ones are
// classified through the errs taxonomy.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if last := c.Errors.Last(); last != nil {
			status := httperr.StatusOf(last.Err)
			resp := httperr.Response{Status: status}
			resp.Error.Message = last.Err.Error()
			if status == http.StatusInternalServerError {
				resp.Error.Message = "Internal server error"
				resp.Detail = gin.H{"request_id": GetRequestID(c)}
				logger.LogAttrs(context.Background(), slog.LevelError, "Unhandled error",
					append(requestAttrs(c), slog.String("error", last.Err.Error()))...)
			}
			c.JSON(status, resp)
			return
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// CustomRecovery turns a panic into a 500 that carries the request id.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.LogAttrs(context.Background(), slog.LevelError, "Recovered from panic",
				append(requestAttrs(c), slog.Any("panic", rec))...)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			resp.Detail = gin.H{"request_id": GetRequestID(c)}
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
