package user

import (
	"context"
	"fmt"
	"time"

	"routinely/models"
	"routinely/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// safeProjection excludes credential material from reads handed to clients.
var safeProjection = bson.M{"passwordHash": 0, "tokenHash": 0}

// UpdateUser updates non-empty profile fields using a partial update.
func (s *DefaultUserService) UpdateUser(user models.User) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}

	if user.Name != "" {
		updateFields["name"] = user.Name
	}
	if user.Photo != "" {
		updateFields["photo"] = user.Photo
	}
	if user.Money.Banks != nil || user.Money.Months != nil || user.Money.InCash != 0 {
		updateFields["money"] = user.Money
	}

	if len(updateFields) == 1 {
		logger.Warn("No updatable fields provided")
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if user.ID == "" {
		logger.Error("User ID is required for update")
		return nil, fmt.Errorf("user ID is required for update")
	}

	if err := s.Repo.UpdateWithDocument(user.ID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.Repo.GetByIDWithProjection(user.ID, safeProjection)
}

// MarkFirstLoginDone flips the first-time flag after onboarding.
func (s *DefaultUserService) MarkFirstLoginDone(userID string) error {
	update := bson.M{"$set": bson.M{
		"firstTimeLogin": false,
		"updatedAt":      time.Now(),
	}}
	return s.Repo.UpdateWithDocument(userID, update)
}

// UpdateUserPassword verifies the current password and stores a new hash.
// The session token is rotated out: the caller must sign in again.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) (*models.User, error) {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return nil, fmt.Errorf("current password is incorrect")
	}

	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return nil, err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash new password: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"passwordHash": string(newHash),
		"tokenHash":    "",
		"updatedAt":    time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + userID
	_ = utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()

	return s.Repo.GetByIDWithProjection(userID, safeProjection)
}

// GetUserByID retrieves a user by ID, excluding sensitive fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	user, err := s.Repo.GetByIDWithProjection(userID, safeProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, excluding sensitive fields.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.Repo.GetByEmailWithProjection(email, safeProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user by ID and purges cached state.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", userID, err)
	}

	ctx := context.Background()
	_ = utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err()
	_ = utils.GetCacheClient().Del(ctx, utils.RoutineCachePrefix+userID).Err()
	return nil
}
