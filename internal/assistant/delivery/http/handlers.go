package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-connect/internal/middleware"
	"campus-connect/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Sends one user message to the assistant and returns its reply. The assistant may execute platform actions before answering.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         true "Caller user ID"
// @Param       body      body   sendMessageReq true "Message to send, with an optional conversation to continue"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Conversation not found"
// @Failure     429 {object} response.Resp "Per-user message limit exceeded"
// @Failure     502 {object} response.Resp "Model failure"
// @Failure     503 {object} response.Resp "No model provider configured"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// ListConversations godoc
// @Summary     List conversations
// @Description Returns the caller's conversations, most recently active first.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Success     200 {object} listConversationsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/conversations [GET]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	output, err := h.uc.ListConversations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListConversations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListConversationsResp(output))
}

// GetConversation godoc
// @Summary     Get conversation detail
// @Description Returns one conversation with its full ordered message history.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Conversation ID"
// @Success     200 {object} detailConversationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/conversations/{id} [GET]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.GetConversation(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetConversation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailConversationResp(output))
}

// DeleteConversation godoc
// @Summary     Delete a conversation
// @Description Permanently removes a conversation, its messages and its action log.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Conversation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/conversations/{id} [DELETE]
func (h *handler) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeleteConversation(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteConversation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
