package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/ai"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var (
	ErrMessageEmpty = errors.New("message is required")
	ErrUpstream     = errors.New("completion service unavailable")
)

// systemPrompt frames the assistant for portfolio visitors.
const systemPrompt = `You are an AI assistant for a portfolio website. You can help visitors learn about:
- The website owner's skills and experience
- Projects and work samples
- Professional background and achievements
- How to get in contact
Be professional, friendly, and concise in your responses.`

const chatHistoryLimit = 10

// Completer is the chat completion dependency; satisfied by *ai.Client.
type Completer interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage) (string, error)
}

// HistoryCache keeps the recent-exchange listing warm; nil disables caching.
type HistoryCache interface {
	Get(ctx context.Context) ([]model.ChatMessage, bool, error)
	Set(ctx context.Context, messages []model.ChatMessage) error
	Invalidate(ctx context.Context) error
}

type ChatService struct {
	messageRepo  *repository.ChatMessageRepository
	completer    Completer
	historyCache HistoryCache
	llm          ai.ChatConfig
	logger       *zap.Logger
}

type AskResult struct {
	Response  string
	Timestamp time.Time
}

func NewChatService(
	messageRepo *repository.ChatMessageRepository,
	completer Completer,
	historyCache HistoryCache,
	llm ai.ChatConfig,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		messageRepo:  messageRepo,
		completer:    completer,
		historyCache: historyCache,
		llm:          llm,
		logger:       logger,
	}
}

// Ask forwards the message to the completion API and persists the exchange.
// Nothing is written when the upstream call fails, so no partial pair ever
// exists.
func (s *ChatService) Ask(ctx context.Context, message string) (*AskResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageEmpty
	}

	response, err := s.completer.Complete(ctx, s.llm, []ai.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	})
	if err != nil {
		s.logger.Error("completion call failed", zap.Error(err))
		return nil, ErrUpstream
	}

	exchange := &model.ChatMessage{
		UserMessage: message,
		BotResponse: response,
	}
	if err := s.messageRepo.Create(exchange); err != nil {
		return nil, err
	}
	if s.historyCache != nil {
		_ = s.historyCache.Invalidate(ctx)
	}

	return &AskResult{
		Response:  response,
		Timestamp: exchange.CreatedAt,
	}, nil
}

// RecentExchanges returns the last ten exchanges in chronological order for
// display.
func (s *ChatService) RecentExchanges(ctx context.Context) ([]model.ChatMessage, error) {
	if s.historyCache != nil {
		if cached, hit, err := s.historyCache.Get(ctx); err == nil && hit {
			return cached, nil
		}
	}

	messages, err := s.messageRepo.ListRecent(chatHistoryLimit)
	if err != nil {
		return nil, err
	}
	// Repository returns newest first; reverse for oldest-first display.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	if s.historyCache != nil {
		_ = s.historyCache.Set(ctx, messages)
	}
	return messages, nil
}

// ClearHistory removes every stored exchange.
func (s *ChatService) ClearHistory(ctx context.Context) error {
	if err := s.messageRepo.DeleteAll(); err != nil {
		return err
	}
	if s.historyCache != nil {
		_ = s.historyCache.Invalidate(ctx)
	}
	return nil
}
