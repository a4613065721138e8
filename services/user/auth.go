package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"routinely/models"
	"routinely/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// primeAuthCache stores the token hash so the auth middleware can verify
// without a DB roundtrip. Best effort; the middleware falls back to the
// user document.
func primeAuthCache(userID, tokenHash string) {
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to prime auth cache", zap.String("userID", userID), zap.Error(err))
	}
}

// RegisterUser creates the account with an empty week and a free trial.
func (s *DefaultUserService) RegisterUser(name, email, password string) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	if err := VerifyPasswordComplexity(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	trial, _ := models.PlanDuration(models.PlanFreeWeek)
	now := time.Now()

	userObj := models.User{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		PasswordHash:   string(hashed),
		FirstTimeLogin: true,
		PaymentType:    models.PlanFreeWeek,
		ExpiredAt:      now.Add(trial),
		Routine:        models.WeekRoutine{}, // all seven buckets start empty
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	primeAuthCache(userObj.ID, userObj.TokenHash)

	return &AuthResponse{
		ID:             userObj.ID,
		Token:          token,
		Name:           userObj.Name,
		Email:          userObj.Email,
		Photo:          userObj.Photo,
		FirstTimeLogin: userObj.FirstTimeLogin,
		PaymentType:    userObj.PaymentType,
		ExpiredAt:      userObj.ExpiredAt,
	}, nil
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	update := bson.M{"$set": bson.M{
		"tokenHash": tokenHash,
		"updatedAt": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(usr.ID, update); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	primeAuthCache(usr.ID, tokenHash)

	return &AuthResponse{
		ID:             usr.ID,
		Token:          token,
		Name:           usr.Name,
		Email:          usr.Email,
		Photo:          usr.Photo,
		FirstTimeLogin: usr.FirstTimeLogin,
		PaymentType:    usr.PaymentType,
		ExpiredAt:      usr.ExpiredAt,
	}, nil
}

// RevokeUserAuthToken clears the stored token hash and purges the cache.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	update := bson.M{"$set": bson.M{
		"tokenHash": "",
		"updatedAt": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		utils.GetLogger().Error("Failed to revoke user auth token", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}

	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache on logout", zap.Error(err))
	}
	return nil
}
