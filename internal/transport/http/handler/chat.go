package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legalens/internal/ai"
	"legalens/internal/app"
	"legalens/internal/transport/http/response"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type WireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages        []WireMessage `json:"messages"`
	DocumentContext string        `json:"documentContext"`
	SessionID       uint          `json:"sessionId"`
	DocumentID      uint          `json:"documentId"`
}

type DocumentChatRequest struct {
	Messages        []WireMessage `json:"messages"`
	DocumentContext string        `json:"documentContext"`
	ProcessingLevel string        `json:"processingLevel"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat streams the assistant reply as plain text chunks, not SSE frames.
// Errors after the first byte can only be logged; the status line is gone.
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		response.Error(c, http.StatusBadRequest, "Messages array is required")
		return
	}

	flusher, streamed := beginTextStream(c)
	if !streamed {
		return
	}

	_, err := h.chatService.StreamChat(c.Request.Context(), app.StreamChatInput{
		UserID:          userID,
		Messages:        toAIMessages(req.Messages),
		DocumentContext: req.DocumentContext,
		SessionID:       req.SessionID,
		DocumentID:      req.DocumentID,
	}, func(chunk string) error {
		if _, writeErr := c.Writer.WriteString(chunk); writeErr != nil {
			return writeErr
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		writeStreamError(c, flusher, err)
	}
}

func (h *ChatHandler) ChatDocument(c *gin.Context) {
	var req DocumentChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		response.Error(c, http.StatusBadRequest, "Messages array is required")
		return
	}

	flusher, streamed := beginTextStream(c)
	if !streamed {
		return
	}

	_, err := h.chatService.StreamDocumentChat(c.Request.Context(), app.DocumentChatInput{
		Messages:        toAIMessages(req.Messages),
		DocumentContext: req.DocumentContext,
		ProcessingLevel: req.ProcessingLevel,
	}, func(chunk string) error {
		if _, writeErr := c.Writer.WriteString(chunk); writeErr != nil {
			return writeErr
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		writeStreamError(c, flusher, err)
	}
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	sessionID64, err := strconv.ParseUint(c.Query("session_id"), 10, 64)
	if err != nil || sessionID64 == 0 {
		response.Error(c, http.StatusBadRequest, "invalid session_id")
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil {
			limit = parsed
		}
	}

	history, err := h.chatService.GetHistory(c.Request.Context(), userID, uint(sessionID64), limit)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrSessionNotFound):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "get history failed")
		}
		return
	}

	response.OK(c, gin.H{"messages": history})
}

func beginTextStream(c *gin.Context) (http.Flusher, bool) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "stream not supported")
		return nil, false
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	return flusher, true
}

// writeStreamError reports a failure that happened before or during the
// stream. If nothing was written yet the normal error object still fits;
// otherwise the truncated body is all the client gets.
func writeStreamError(c *gin.Context, flusher http.Flusher, err error) {
	if c.Writer.Written() {
		flusher.Flush()
		return
	}

	switch {
	case errors.Is(err, app.ErrMessagesRequired):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrSessionNotFound):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to process chat request")
	}
}

func toAIMessages(messages []WireMessage) []ai.ChatMessage {
	out := make([]ai.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, ai.ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	return out
}
