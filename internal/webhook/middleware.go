package webhook

import (
	"github.com/gin-gonic/gin"

	pkgLog "telegram-info-bot/pkg/log"
	pkgResponse "telegram-info-bot/pkg/response"
)

// Middleware returns a gin middleware enforcing the configured checks in
// front of the webhook route: IP allowlist, secret token, rate limit.
func (v *SecurityValidator) Middleware(l pkgLog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v.config.Enabled {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		if err := v.ValidateIPAddress(c.Request); err != nil {
			l.Warnf(ctx, "webhook security: %v", err)
			pkgResponse.Forbidden(c)
			c.Abort()
			return
		}

		if err := v.ValidateSecretToken(c.GetHeader(SecretTokenHeader)); err != nil {
			l.Warnf(ctx, "webhook security: %v", err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}

		if err := v.CheckRateLimit(extractIP(c.Request)); err != nil {
			l.Warnf(ctx, "webhook security: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
