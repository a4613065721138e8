package handlers

import (
	"net/http"

	chatService "routinely/services/chat"
	"routinely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler bundles assistant endpoints around the chat service.
type ChatHandler struct {
	ChatService chatService.ChatService
}

func NewChatHandler(svc chatService.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: svc}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.ChatService.Chat(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		logger.Error("Chat failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// History handles GET /api/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.ChatService.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

// ClearContext handles DELETE /api/chat/context.
func (h *ChatHandler) ClearContext(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.ChatService.ClearContext(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation context cleared"})
}
