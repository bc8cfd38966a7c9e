package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/internal/app"
	"portfolio/internal/transport/http/flash"
	"portfolio/internal/transport/http/response"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type chatRequest struct {
	Message string `json:"message"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Page renders the chatbot with the last ten exchanges, oldest first.
func (h *ChatHandler) Page(c *gin.Context) {
	messages, err := h.chatService.RecentExchanges(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}
	c.HTML(http.StatusOK, "chatbot.html", gin.H{
		"Messages": messages,
		"Flashes":  flash.Take(c),
	})
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No data provided")
		return
	}

	result, err := h.chatService.Ask(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMessageEmpty):
			response.Error(c, http.StatusBadRequest, "Message is required")
		case errors.Is(err, app.ErrUpstream):
			response.Error(c, http.StatusServiceUnavailable, "Error communicating with AI service")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  result.Response,
		"timestamp": result.Timestamp.UTC().Format(time.RFC3339),
	})
}

func (h *ChatHandler) Clear(c *gin.Context) {
	if err := h.chatService.ClearHistory(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to clear chat history")
		return
	}
	response.Message(c, "Chat history cleared successfully")
}
