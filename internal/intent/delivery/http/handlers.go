package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ecoavobot/pkg/errors"
	"ecoavobot/pkg/response"
)

// Chat godoc
// @Summary     Classify a chat message
// @Description Resolves a free-text message to an intent and returns a canned reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Classify: %v", LogPrefixChat, err)
		response.Error(c, h.mapError(err), map[string]interface{}{"outcome": string(output.Outcome)})
		return
	}

	response.OK(c, h.newChatResp(output))
}

// LegacyChat godoc
// @Summary     Classify a chat message (widget contract)
// @Description Same as /api/v1/chat with the flat body the web widget expects.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Chat message"
// @Success     200  {object} legacyChatResp
// @Failure     400  {object} legacyChatResp "Malformed body"
// @Failure     500  {object} legacyChatResp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) LegacyChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixLegacyChat, err)
		c.JSON(http.StatusBadRequest, legacyChatResp{Answer: h.messages.Empty})
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Classify: %v", LogPrefixLegacyChat, err)
		status := http.StatusInternalServerError
		var httpErr *pkgErrors.HTTPError
		if errors.As(h.mapError(err), &httpErr) {
			status = httpErr.StatusCode
		}
		c.JSON(status, legacyChatResp{Answer: output.Answer})
		return
	}

	c.JSON(http.StatusOK, h.newLegacyChatResp(output))
}

// ListIntents godoc
// @Summary     List intents
// @Description Summarizes the loaded catalog, optionally fuzzy-filtered by tag.
// @Tags        Intents
// @Produce     json
// @Param       q   query    string false "Fuzzy tag filter"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents [GET]
func (h *handler) ListIntents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListIntents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.ListIntents: %v", LogPrefixList, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Reload godoc
// @Summary     Reload the catalog
// @Description Reloads the intent catalog from its source. The running catalog is kept on failure.
// @Tags        Intents
// @Produce     json
// @Success     200 {object} reloadResp
// @Failure     404 {object} response.Resp "Catalog source not found"
// @Failure     422 {object} response.Resp "Invalid catalog"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Reload(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Reload: %v", LogPrefixReload, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReloadResp(output))
}

// Status godoc
// @Summary     Bot status
// @Description Legacy liveness probe used by the web widget.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /test [GET]
func (h *handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, statusResp{Status: StatusOK, Message: StatusMessage})
}
