package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware tags every request with an id that shows up in the
// X-Request-Id response header and in error log lines.
func RequestIDMiddleware(c *gin.Context) {
	id := uuid.NewString()
	c.Set(RequestIDKey, id)
	c.Header("X-Request-Id", id)
	c.Next()
}

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[DEBUG ERROR] request %s: status %d, body: %s", w.gc.GetString(RequestIDKey), status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
