package http

import (
	"github.com/gin-gonic/gin"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/log"
)

// Handler is the public interface for the intent HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	LegacyChat(c *gin.Context)
	ListIntents(c *gin.Context)
	Reload(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       intent.UseCase
	messages intent.Messages
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the intent domain. messages supplies the
// replies used when a request never reaches the use case.
func New(l log.Logger, uc intent.UseCase, messages intent.Messages) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		messages: messages.WithDefaults(),
	}
}
