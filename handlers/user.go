package handlers

import (
	"net/http"

	"routinely/models"
	userService "routinely/services/user"
	"routinely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler bundles account endpoints around the user service.
type UserHandler struct {
	UserService userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// currentUserID pulls the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		utils.GetLogger().Error("Invalid user ID type", zap.Any("userID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return idStr, true
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name  string        `json:"name"`
		Photo string        `json:"photo"`
		Money *models.Money `json:"money"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	update := models.User{ID: userID, Name: req.Name, Photo: req.Photo}
	if req.Money != nil {
		update.Money = *req.Money
	}
	usr, err := h.UserService.UpdateUser(update)
	if err != nil {
		logger.Error("Update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePasswordHandler handles PUT /api/users/me/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid password update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.UpdateUserPassword(userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		logger.Warn("Password update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// MarkFirstLoginDoneHandler handles POST /api/users/me/first-login-done.
func (h *UserHandler) MarkFirstLoginDoneHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.MarkFirstLoginDone(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "First login recorded"})
}

// DeleteUserHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.DeleteUser(userID); err != nil {
		logger.Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// LogoutHandler handles POST /api/users/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.RevokeUserAuthToken(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePlanHandler handles PUT /api/users/me/plan.
func (h *UserHandler) ChangePlanHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Plan string `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.ChangePlan(userID, req.Plan)
	if err != nil {
		logger.Warn("Plan change failed", zap.String("id", userID), zap.String("plan", req.Plan), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}
