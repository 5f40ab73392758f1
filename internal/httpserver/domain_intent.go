package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "ecoavobot/internal/intent/delivery/http"
	intentWS "ecoavobot/internal/intent/delivery/websocket"
)

// setupIntentDomain registers the chat routes:
//   - /api/v1/chat, /api/v1/intents, /api/v1/intents/reload
//   - /chat and /test for the web widget
//   - /ws/chat
func (srv *HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := intentHTTP.New(srv.l, srv.intentUC, srv.messages)
	intentHTTP.RegisterRoutes(api, h, srv.mw)
	intentHTTP.RegisterLegacyRoutes(srv.gin, h, srv.mw)

	ws := intentWS.New(srv.l, srv.intentUC, srv.mwConfig.AllowedOrigins)
	srv.gin.GET("/ws/chat", srv.mw.RateLimit(), gin.WrapF(ws.Chat))

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
