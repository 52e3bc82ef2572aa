package middleware

import (
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestContext assigns a request ID and propagates the caller's account ID
// from the X-Account-ID header into the request context.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
		}
		ctx = types.SetRequestID(ctx, requestID)

		if accountID := c.GetHeader("X-Account-ID"); accountID != "" {
			ctx = types.SetAccountID(ctx, accountID)
		}

		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
