// File: services/chat/chat.go
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"routinely/models"
	"routinely/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Chat assembles the prompt with recent conversation context, generates a
// reply and persists the exchange on the user's history.
func (s *DefaultChatService) Chat(ctx context.Context, userID, prompt string) (*models.ChatRecord, error) {
	if s.Generator == nil {
		return nil, fmt.Errorf("assistant is not configured")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	convCtx, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load chat context", zap.String("userID", userID), zap.Error(err))
		convCtx = &ConversationContext{}
	}

	reply, err := s.Generator.GenerateContent(ctx, buildPrompt(convCtx, prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	record := models.ChatRecord{
		Date:   time.Now().Format(time.RFC3339),
		Prompt: prompt,
		Reply:  reply,
	}
	if err := s.Repo.AppendHistory(userID, record); err != nil {
		utils.GetLogger().Error("Failed to persist chat record", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to save chat: %w", err)
	}

	convCtx.Turns = append(convCtx.Turns, Turn{Prompt: prompt, Reply: reply})
	if err := s.CtxStore.Set(ctx, userID, convCtx); err != nil {
		utils.GetLogger().Warn("Failed to save chat context", zap.String("userID", userID), zap.Error(err))
	}

	return &record, nil
}

// History returns the user's persisted chat records.
func (s *DefaultChatService) History(userID string) ([]models.ChatRecord, error) {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"history": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return usr.History, nil
}

// ClearContext drops the rolling conversation window, leaving persisted
// history intact.
func (s *DefaultChatService) ClearContext(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}

func buildPrompt(convCtx *ConversationContext, prompt string) string {
	if len(convCtx.Turns) == 0 {
		return prompt
	}
	var sb strings.Builder
	sb.WriteString("Previous conversation:\n")
	for _, turn := range convCtx.Turns {
		sb.WriteString("User: " + turn.Prompt + "\n")
		sb.WriteString("Assistant: " + turn.Reply + "\n")
	}
	sb.WriteString("\nUser: " + prompt)
	return sb.String()
}
