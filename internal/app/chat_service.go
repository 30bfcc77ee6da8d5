package app

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"legalens/internal/ai"
	"legalens/internal/model"
	"legalens/internal/repository"
)

var (
	ErrMessagesRequired = errors.New("messages array is required")
	ErrSessionNotFound  = errors.New("chat session not found")
)

// AsyncMessagePublisher enqueues a chat message for background persistence.
type AsyncMessagePublisher interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
}

// ChatHistoryCache is the read-side cache for persisted transcripts.
type ChatHistoryCache interface {
	GetHistory(ctx context.Context, sessionID uint) ([]model.ChatMessage, bool, error)
	SetHistory(ctx context.Context, sessionID uint, messages []model.ChatMessage) error
	DeleteHistory(ctx context.Context, sessionID uint) error
	MarkDirty(ctx context.Context, sessionID uint) error
	IsDirty(ctx context.Context, sessionID uint) (bool, error)
}

type ChatService struct {
	sessionRepo  *repository.SessionRepository
	messageRepo  *repository.MessageRepository
	publisher    AsyncMessagePublisher
	historyCache ChatHistoryCache
	llmClient    *ai.OpenAICompatibleClient
	chatLLM      ai.ChatConfig
	maxContext   int
}

func NewChatService(
	sessionRepo *repository.SessionRepository,
	messageRepo *repository.MessageRepository,
	publisher AsyncMessagePublisher,
	historyCache ChatHistoryCache,
	llmClient *ai.OpenAICompatibleClient,
	chatLLM ai.ChatConfig,
	maxContext int,
) *ChatService {
	if maxContext <= 0 {
		maxContext = 20
	}
	return &ChatService{
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		publisher:    publisher,
		historyCache: historyCache,
		llmClient:    llmClient,
		chatLLM:      chatLLM,
		maxContext:   maxContext,
	}
}

type StreamChatInput struct {
	UserID          uint
	Messages        []ai.ChatMessage
	DocumentContext string
	SessionID       uint
	DocumentID      uint
}

// StreamChat forwards the transcript to the model and streams tokens back
// through onChunk. When a session applies, the trailing user message is
// written before the model call and the assistant reply is enqueued for
// background persistence once the stream completes; an enqueue failure is
// logged, never surfaced, since the caller already has the text.
func (s *ChatService) StreamChat(
	ctx context.Context,
	input StreamChatInput,
	onChunk func(chunk string) error,
) (*ai.StreamResult, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if len(input.Messages) == 0 {
		return nil, ErrMessagesRequired
	}

	sessionID := input.SessionID
	if sessionID != 0 {
		session, err := s.sessionRepo.GetByIDAndUserID(sessionID, input.UserID)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}
	} else if input.DocumentID != 0 {
		session := &model.ChatSession{
			DocumentID: input.DocumentID,
			UserID:     input.UserID,
		}
		if err := s.sessionRepo.Create(session); err != nil {
			return nil, err
		}
		sessionID = session.ID
	}

	lastMessage := input.Messages[len(input.Messages)-1]
	if sessionID != 0 && lastMessage.Role == "user" {
		if err := s.messageRepo.Create(&model.ChatMessage{
			SessionID: sessionID,
			Role:      "user",
			Content:   lastMessage.Content,
		}); err != nil {
			return nil, err
		}
		if s.historyCache != nil {
			_ = s.historyCache.MarkDirty(ctx, sessionID)
			_ = s.historyCache.DeleteHistory(ctx, sessionID)
		}
	}

	promptMessages := s.buildPromptMessages(ai.BuildChatSystemPrompt(input.DocumentContext), input.Messages)

	result, err := s.llmClient.StreamComplete(ctx, s.chatLLM, promptMessages, onChunk)
	if err != nil {
		return nil, err
	}
	log.Printf("chat finished: session=%d finish_reason=%s", sessionID, result.FinishReason)

	if sessionID != 0 {
		metadata, _ := json.Marshal(map[string]interface{}{
			"usage":        result.Usage,
			"finishReason": result.FinishReason,
			"sessionId":    sessionID,
		})
		assistant := model.ChatMessage{
			SessionID: sessionID,
			Role:      "assistant",
			Content:   result.Text,
			Metadata:  metadata,
		}
		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, assistant); err != nil {
				log.Printf("enqueue assistant message failed: %v", err)
			}
		}
	}

	return result, nil
}

type DocumentChatInput struct {
	Messages        []ai.ChatMessage
	DocumentContext string
	ProcessingLevel string
}

// StreamDocumentChat is the stateless variant: no session, no persistence,
// a level-phrased system prompt around the supplied document context.
func (s *ChatService) StreamDocumentChat(
	ctx context.Context,
	input DocumentChatInput,
	onChunk func(chunk string) error,
) (*ai.StreamResult, error) {
	if len(input.Messages) == 0 {
		return nil, ErrMessagesRequired
	}

	system := ai.BuildDocumentChatSystemPrompt(input.DocumentContext, input.ProcessingLevel)
	promptMessages := s.buildPromptMessages(system, input.Messages)

	return s.llmClient.StreamComplete(ctx, s.chatLLM, promptMessages, onChunk)
}

// GetHistory serves the persisted transcript, preferring the Redis cache
// when it is populated and not marked dirty.
func (s *ChatService) GetHistory(ctx context.Context, userID, sessionID uint, limit int) ([]model.ChatMessage, error) {
	if userID == 0 || sessionID == 0 {
		return nil, ErrInvalidInput
	}

	session, err := s.sessionRepo.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if s.historyCache != nil {
		dirty, err := s.historyCache.IsDirty(ctx, sessionID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.historyCache.GetHistory(ctx, sessionID); cacheErr == nil && hit {
				return trimMessages(cached, limit), nil
			}
		}
	}

	messages, err := s.messageRepo.ListBySessionID(sessionID, limit)
	if err != nil {
		return nil, err
	}
	if s.historyCache != nil {
		if dirty, dirtyErr := s.historyCache.IsDirty(ctx, sessionID); dirtyErr == nil && !dirty {
			_ = s.historyCache.SetHistory(ctx, sessionID, messages)
		}
	}
	return messages, nil
}

func (s *ChatService) buildPromptMessages(system string, transcript []ai.ChatMessage) []ai.ChatMessage {
	recent := transcript
	if len(recent) > s.maxContext {
		recent = recent[len(recent)-s.maxContext:]
	}

	messages := make([]ai.ChatMessage, 0, len(recent)+1)
	messages = append(messages, ai.ChatMessage{Role: "system", Content: system})
	for _, item := range recent {
		role := item.Role
		if role == "" {
			role = "user"
		}
		messages = append(messages, ai.ChatMessage{Role: role, Content: item.Content})
	}
	return messages
}

func trimMessages(messages []model.ChatMessage, limit int) []model.ChatMessage {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}
