package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"ecoavobot/pkg/response"
)

// Recovery logs a panic with the request context and answers 500.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
