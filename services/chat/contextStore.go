// File: services/chat/contextStore.go
package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// maxContextTurns caps how many recent exchanges are replayed into the
// prompt.
const maxContextTurns = 10

// ConversationContext is the short-lived rolling window of recent exchanges.
type ConversationContext struct {
	Turns []Turn `json:"turns"`
}

// Turn is one prompt/reply pair.
type Turn struct {
	Prompt string `json:"prompt"`
	Reply  string `json:"reply"`
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*ConversationContext, error) {
	key := chatContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &ConversationContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var convCtx ConversationContext
	if err := json.Unmarshal([]byte(data), &convCtx); err != nil {
		return nil, err
	}
	return &convCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, convCtx *ConversationContext) error {
	if len(convCtx.Turns) > maxContextTurns {
		convCtx.Turns = convCtx.Turns[len(convCtx.Turns)-maxContextTurns:]
	}
	key := chatContextPrefix + userID
	b, err := json.Marshal(convCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := chatContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}
