package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/model"
	"todo-chat-api/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Parses a natural-language task command and returns the assistant's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message payload"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{
		UserID:         c.ClientIP(),
		ConversationID: req.ConversationID,
	}

	output, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// GetConversation godoc
// @Summary     Get a conversation transcript
// @Description Returns the message history for a conversation, if it has not expired.
// @Tags        Chat
// @Produce     json
// @Param       conversationId path string true "Conversation ID"
// @Success     200 {object} conversationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/chat/{conversationId} [GET]
func (h *handler) GetConversation(c *gin.Context) {
	id := c.Param("conversationId")

	conv, ok := h.convs.Get(id)
	if !ok {
		response.NotFound(c, "conversation not found")
		return
	}

	response.OK(c, h.newConversationResp(conv))
}

// DeleteConversation godoc
// @Summary     Delete a conversation
// @Description Removes a conversation transcript from the store.
// @Tags        Chat
// @Produce     json
// @Param       conversationId path string true "Conversation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/chat/{conversationId} [DELETE]
func (h *handler) DeleteConversation(c *gin.Context) {
	id := c.Param("conversationId")

	if !h.convs.Delete(id) {
		response.NotFound(c, "conversation not found")
		return
	}

	response.OK(c, nil)
}
