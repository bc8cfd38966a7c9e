package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"portfolio/internal/model"
)

const historyKey = "chat:recent"

// ChatHistoryCache keeps the recent-exchange listing warm in redis so the
// chatbot page does not hit the database on every render.
type ChatHistoryCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewChatHistoryCache(client *redisv9.Client, ttl time.Duration) *ChatHistoryCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ChatHistoryCache{client: client, ttl: ttl}
}

func (c *ChatHistoryCache) Get(ctx context.Context) ([]model.ChatMessage, bool, error) {
	raw, err := c.client.Get(ctx, historyKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get chat history failed: %w", err)
	}

	var messages []model.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached chat history failed: %w", err)
	}
	return messages, true, nil
}

func (c *ChatHistoryCache) Set(ctx context.Context, messages []model.ChatMessage) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal chat history failed: %w", err)
	}
	if err := c.client.Set(ctx, historyKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set chat history failed: %w", err)
	}
	return nil
}

func (c *ChatHistoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, historyKey).Err(); err != nil {
		return fmt.Errorf("redis delete chat history failed: %w", err)
	}
	return nil
}
