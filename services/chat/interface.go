// File: services/chat/interface.go
package chat

import (
	"context"

	userRepo "routinely/database/repository/user"
	"routinely/models"
)

// ChatService is the assistant surface: one prompt in, one reply out, with
// the exchange appended to the user's persisted history.
type ChatService interface {
	Chat(ctx context.Context, userID, prompt string) (*models.ChatRecord, error)
	History(userID string) ([]models.ChatRecord, error)
	ClearContext(ctx context.Context, userID string) error
}

// Generator produces a reply for a fully assembled prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo      userRepo.UserRepository
	Generator Generator
	CtxStore  *RedisContextStore
}
