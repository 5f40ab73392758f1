package websocket

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/log"
)

const (
	readLimit    = 4096
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

// Handler serves the chat protocol over a WebSocket.
type Handler interface {
	Chat(w http.ResponseWriter, r *http.Request)
}

type handler struct {
	l        log.Logger
	uc       intent.UseCase
	upgrader websocket.Upgrader
}

// New creates a WebSocket chat handler. Browsers are accepted from
// allowedOrigins, or from anywhere when the list is empty or contains "*".
func New(l log.Logger, uc intent.UseCase, allowedOrigins []string) *handler {
	return &handler{
		l:  l,
		uc: uc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	allowAll := len(allowed) == 0
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
		}
		set[o] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if allowAll || origin == "" {
			return true
		}
		if _, ok := set[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && u.Host == r.Host
	}
}
