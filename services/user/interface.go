package user

import (
	"time"

	userRepo "routinely/database/repository/user"
	"routinely/models"
)

// AuthResponse is what login and registration hand back to the client.
type AuthResponse struct {
	ID             string    `json:"id"`
	Token          string    `json:"token"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Photo          string    `json:"photo"`
	FirstTimeLogin bool      `json:"firstTimeLogin"`
	PaymentType    string    `json:"paymentType"`
	ExpiredAt      time.Time `json:"expiredAt"`
}

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser creates a new account with an empty weekly routine and a
	// free trial plan, and signs the caller in.
	RegisterUser(name, email, password string) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns ID and token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// GetUserByEmail retrieves a user (safe view) by its email.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateUser updates an existing user's profile.
	UpdateUser(user models.User) (*models.User, error)
	// UpdateUserPassword verifies the current password and updates it.
	UpdateUserPassword(userID, currentPassword, newPassword string) (*models.User, error)
	// MarkFirstLoginDone flips the first-time flag after onboarding.
	MarkFirstLoginDone(userID string) error
	// DeleteUser removes a user record.
	DeleteUser(userID string) error
	// RevokeUserAuthToken revokes the user's authentication token (logout).
	RevokeUserAuthToken(userID string) error
	// ChangePlan switches the billing-simulation plan and recomputes expiry.
	ChangePlan(userID, plan string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
