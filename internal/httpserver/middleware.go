package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"telegram-info-bot/pkg/log"
)

// RequestIDHeader is echoed on every response and attached to logs.
const RequestIDHeader = "X-Request-ID"

// requestID tags each request with an id, preferring one supplied by an
// upstream proxy.
func (srv *HTTPServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(RequestIDHeader, id)
		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
