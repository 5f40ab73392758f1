package http

import (
	"github.com/gin-gonic/gin"

	"ecoavobot/internal/middleware"
)

// RegisterRoutes maps the versioned API under rg. Chat is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	intents := rg.Group("/intents")
	{
		intents.GET("", h.ListIntents)
		intents.POST("/reload", h.Reload)
	}
}

// RegisterLegacyRoutes maps the unversioned widget endpoints at the root.
func RegisterLegacyRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.LegacyChat)
	r.GET("/test", h.Status)
}
