package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	pkgErrors "ecoavobot/pkg/errors"
)

// processChatReq binds the chat request body. A missing message field is an
// empty message, not a binding error.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, fmt.Sprintf("invalid request body: %v", err))
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, fmt.Sprintf("invalid query: %v", err))
	}
	return req, nil
}
